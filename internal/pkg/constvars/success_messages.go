package constvars

const (
	ResponseUnknown = "unknown"

	// Auth
	RegisterSuccess     = "user registered successfully"
	LoginSuccess        = "successfully login"
	RefreshTokenSuccess = "token refreshed successfully"
	UserUpdatedSuccess  = "user updated successfully"
	UserDeletedSuccess  = "user deleted successfully"
	GetUserSuccess      = "get user successfully"
	GetUsersSuccess     = "get users successfully"

	// Clinic visits
	VisitCreatedSuccess      = "clinic visit created successfully"
	VisitUpdatedSuccess      = "clinic visit updated successfully"
	VisitDeletedSuccess      = "clinic visit deleted successfully"
	GetVisitSuccess          = "get clinic visit successfully"
	GetVisitsSuccess         = "get clinic visits successfully"
	GetEmployeeSummarySuccess = "get employee summary successfully"
	ExportVisitsSuccess      = "visits exported successfully"
	AttachmentUploadSuccess  = "attachment uploaded successfully"

	// Hospital
	HospitalCreatedSuccess = "hospital record created successfully"
	HospitalUpdatedSuccess = "hospital record updated successfully"
	HospitalDeletedSuccess = "hospital record deleted successfully"
	GetHospitalSuccess     = "get hospital record successfully"
	GetHospitalsSuccess    = "get hospital records successfully"

	// Isolation
	IsolationCreatedSuccess = "isolation record created successfully"
	IsolationUpdatedSuccess = "isolation record updated successfully"
	IsolationDeletedSuccess = "isolation record deleted successfully"
	GetIsolationSuccess     = "get isolation record successfully"
	GetIsolationsSuccess    = "get isolation records successfully"

	// Admin
	GetSystemInfoSuccess = "get system info successfully"
	GetStatsSuccess      = "get stats successfully"
)
