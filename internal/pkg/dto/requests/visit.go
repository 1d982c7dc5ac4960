package requests

type MedicineEntry struct {
	Name       string `json:"name"`
	Course     string `json:"course"`
	ExpiryDate string `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
}

type FollowUpVisitEntry struct {
	VisitDate    string `json:"visitDate" validate:"omitempty,datetime=2006-01-02"`
	VisitRemarks string `json:"visitRemarks"`
}

type ReferralEntry struct {
	ReferralCode               string               `json:"referralCode"`
	ReferralType               string               `json:"referralType"`
	ReferredToHospital         string               `json:"referredToHospital"`
	VisitDateReferral          string               `json:"visitDateReferral" validate:"omitempty,datetime=2006-01-02"`
	SpecialistType             string               `json:"specialistType"`
	DoctorName                 string               `json:"doctorName"`
	InvestigationReports       string               `json:"investigationReports"`
	PrimaryDiagnosisReferral   string               `json:"primaryDiagnosisReferral"`
	SecondaryDiagnosisReferral []string             `json:"secondaryDiagnosisReferral"`
	NurseRemarksReferral       string               `json:"nurseRemarksReferral"`
	InsuranceApprovalRequested bool                 `json:"insuranceApprovalRequested"`
	FollowUpRequired           bool                 `json:"followUpRequired"`
	FollowUpVisits             []FollowUpVisitEntry `json:"followUpVisits" validate:"dive"`
}

type CreateVisit struct {
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" validate:"required"`
	EmpNo        string `json:"empNo" validate:"required"`
	EmployeeName string `json:"employeeName" validate:"required"`
	EmiratesID   string `json:"emiratesId" validate:"required"`
	InsuranceID  string `json:"insuranceId"`
	TrLocation   string `json:"trLocation" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required"`

	NatureOfCase string `json:"natureOfCase" validate:"required"`
	CaseCategory string `json:"caseCategory" validate:"required"`

	NurseAssessment []string `json:"nurseAssessment"`
	SymptomDuration string   `json:"symptomDuration"`

	Temperature   *float64 `json:"temperature"`
	BloodPressure string   `json:"bloodPressure"`
	HeartRate     *int     `json:"heartRate"`

	Others string `json:"others"`

	// Optional client override; generated when absent.
	TokenNo      string `json:"tokenNo"`
	SentTo       string `json:"sentTo"`
	ProviderName string `json:"providerName"`
	DoctorName   string `json:"doctorName"`

	PrimaryDiagnosis   string   `json:"primaryDiagnosis"`
	SecondaryDiagnosis []string `json:"secondaryDiagnosis"`

	Medicines []MedicineEntry `json:"medicines" validate:"dive"`

	SickLeaveStatus    string `json:"sickLeaveStatus" validate:"omitempty,oneof=Approved 'Not Approved'"`
	SickLeaveStartDate string `json:"sickLeaveStartDate" validate:"omitempty,datetime=2006-01-02"`
	SickLeaveEndDate   string `json:"sickLeaveEndDate" validate:"omitempty,datetime=2006-01-02"`
	TotalSickLeaveDays int    `json:"totalSickLeaveDays"`
	Remarks            string `json:"remarks"`

	Referrals []ReferralEntry `json:"referrals" validate:"dive"`

	VisitStatus string `json:"visitStatus" validate:"omitempty,oneof=Open Closed Referred Other"`

	FinalRemarks        string `json:"finalRemarks"`
	IPAdmissionRequired bool   `json:"ipAdmissionRequired"`
}

// UpdateVisit carries a partial patch; nil fields are left untouched.
type UpdateVisit struct {
	Date         *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time         *string `json:"time"`
	EmpNo        *string `json:"empNo"`
	EmployeeName *string `json:"employeeName"`
	EmiratesID   *string `json:"emiratesId"`
	InsuranceID  *string `json:"insuranceId"`
	TrLocation   *string `json:"trLocation"`
	MobileNumber *string `json:"mobileNumber"`

	NatureOfCase *string `json:"natureOfCase"`
	CaseCategory *string `json:"caseCategory"`

	NurseAssessment *[]string `json:"nurseAssessment"`
	SymptomDuration *string   `json:"symptomDuration"`

	Temperature   *float64 `json:"temperature"`
	BloodPressure *string  `json:"bloodPressure"`
	HeartRate     *int     `json:"heartRate"`

	Others *string `json:"others"`

	SentTo       *string `json:"sentTo"`
	ProviderName *string `json:"providerName"`
	DoctorName   *string `json:"doctorName"`

	PrimaryDiagnosis   *string   `json:"primaryDiagnosis"`
	SecondaryDiagnosis *[]string `json:"secondaryDiagnosis"`

	Medicines *[]MedicineEntry `json:"medicines" validate:"omitempty,dive"`

	SickLeaveStatus    *string `json:"sickLeaveStatus" validate:"omitempty,oneof=Approved 'Not Approved'"`
	SickLeaveStartDate *string `json:"sickLeaveStartDate" validate:"omitempty,datetime=2006-01-02"`
	SickLeaveEndDate   *string `json:"sickLeaveEndDate" validate:"omitempty,datetime=2006-01-02"`
	TotalSickLeaveDays *int    `json:"totalSickLeaveDays"`
	Remarks            *string `json:"remarks"`

	Referrals *[]ReferralEntry `json:"referrals" validate:"omitempty,dive"`

	VisitStatus *string `json:"visitStatus" validate:"omitempty,oneof=Open Closed Referred Other"`

	FinalRemarks        *string `json:"finalRemarks"`
	IPAdmissionRequired *bool   `json:"ipAdmissionRequired"`
}
