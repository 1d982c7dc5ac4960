package requests

type FollowUpEntry struct {
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Remarks string `json:"remarks"`
}

type CreateHospital struct {
	ClinicVisitID string `json:"clinicVisitId" validate:"required"`

	EmpNo        string `json:"empNo" validate:"required"`
	EmployeeName string `json:"employeeName" validate:"required"`
	EmiratesID   string `json:"emiratesId" validate:"required"`
	InsuranceID  string `json:"insuranceId"`
	TrLocation   string `json:"trLocation"`
	MobileNumber string `json:"mobileNumber"`

	HospitalName    string `json:"hospitalName"`
	DateOfAdmission string `json:"dateOfAdmission" validate:"omitempty,datetime=2006-01-02"`

	NatureOfCase string `json:"natureOfCase"`
	CaseCategory string `json:"caseCategory"`

	PrimaryDiagnosis   string   `json:"primaryDiagnosis"`
	SecondaryDiagnosis []string `json:"secondaryDiagnosis"`

	Status                   string `json:"status"`
	DischargeSummaryReceived bool   `json:"dischargeSummaryReceived"`
	DateOfDischarge          string `json:"dateOfDischarge" validate:"omitempty,datetime=2006-01-02"`
	DaysHospitalized         int    `json:"daysHospitalized"`

	FollowUp []FollowUpEntry `json:"followUp" validate:"dive"`

	FitnessStatus     string `json:"fitnessStatus"`
	IsolationRequired bool   `json:"isolationRequired"`
	FinalRemarks      string `json:"finalRemarks"`
}

// UpdateHospital never carries clinicVisitId: the foreign key is immutable
// after creation.
type UpdateHospital struct {
	EmpNo        *string `json:"empNo"`
	EmployeeName *string `json:"employeeName"`
	EmiratesID   *string `json:"emiratesId"`
	InsuranceID  *string `json:"insuranceId"`
	TrLocation   *string `json:"trLocation"`
	MobileNumber *string `json:"mobileNumber"`

	HospitalName    *string `json:"hospitalName"`
	DateOfAdmission *string `json:"dateOfAdmission" validate:"omitempty,datetime=2006-01-02"`

	NatureOfCase *string `json:"natureOfCase"`
	CaseCategory *string `json:"caseCategory"`

	PrimaryDiagnosis   *string   `json:"primaryDiagnosis"`
	SecondaryDiagnosis *[]string `json:"secondaryDiagnosis"`

	Status                   *string `json:"status"`
	DischargeSummaryReceived *bool   `json:"dischargeSummaryReceived"`
	DateOfDischarge          *string `json:"dateOfDischarge" validate:"omitempty,datetime=2006-01-02"`
	DaysHospitalized         *int    `json:"daysHospitalized"`

	FollowUp *[]FollowUpEntry `json:"followUp" validate:"omitempty,dive"`

	FitnessStatus     *string `json:"fitnessStatus"`
	IsolationRequired *bool   `json:"isolationRequired"`
	FinalRemarks      *string `json:"finalRemarks"`
}
