package requests

type CreateIsolation struct {
	ClinicVisitID string `json:"clinicVisitId" validate:"required"`

	EmpNo        string `json:"empNo" validate:"required"`
	Type         string `json:"type"`
	EmployeeName string `json:"employeeName" validate:"required"`
	EmiratesID   string `json:"emiratesId" validate:"required"`
	InsuranceID  string `json:"insuranceId"`
	MobileNumber string `json:"mobileNumber"`
	TrLocation   string `json:"trLocation"`

	IsolatedIn      string `json:"isolatedIn"`
	IsolationReason string `json:"isolationReason"`
	Nationality     string `json:"nationality"`

	SlUpto   string `json:"slUpto" validate:"omitempty,datetime=2006-01-02"`
	DateFrom string `json:"dateFrom" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `json:"dateTo" validate:"omitempty,datetime=2006-01-02"`

	CurrentStatus string `json:"currentStatus"`
	Remarks       string `json:"remarks"`
}

type UpdateIsolation struct {
	EmpNo        *string `json:"empNo"`
	Type         *string `json:"type"`
	EmployeeName *string `json:"employeeName"`
	EmiratesID   *string `json:"emiratesId"`
	InsuranceID  *string `json:"insuranceId"`
	MobileNumber *string `json:"mobileNumber"`
	TrLocation   *string `json:"trLocation"`

	IsolatedIn      *string `json:"isolatedIn"`
	IsolationReason *string `json:"isolationReason"`
	Nationality     *string `json:"nationality"`

	SlUpto   *string `json:"slUpto" validate:"omitempty,datetime=2006-01-02"`
	DateFrom *string `json:"dateFrom" validate:"omitempty,datetime=2006-01-02"`
	DateTo   *string `json:"dateTo" validate:"omitempty,datetime=2006-01-02"`

	CurrentStatus *string `json:"currentStatus"`
	Remarks       *string `json:"remarks"`
}
