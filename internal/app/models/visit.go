package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Medicine struct {
	Name       string     `json:"name" bson:"name"`
	Course     string     `json:"course" bson:"course"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
}

type FollowUpVisit struct {
	VisitDate    *time.Time `json:"visitDate,omitempty" bson:"visitDate,omitempty"`
	VisitRemarks string     `json:"visitRemarks" bson:"visitRemarks"`
}

type Referral struct {
	ReferralCode               string          `json:"referralCode" bson:"referralCode"`
	ReferralType               string          `json:"referralType" bson:"referralType"`
	ReferredToHospital         string          `json:"referredToHospital" bson:"referredToHospital"`
	VisitDateReferral          *time.Time      `json:"visitDateReferral,omitempty" bson:"visitDateReferral,omitempty"`
	SpecialistType             string          `json:"specialistType" bson:"specialistType"`
	DoctorName                 string          `json:"doctorName" bson:"doctorName"`
	InvestigationReports       string          `json:"investigationReports" bson:"investigationReports"`
	PrimaryDiagnosisReferral   string          `json:"primaryDiagnosisReferral" bson:"primaryDiagnosisReferral"`
	SecondaryDiagnosisReferral []string        `json:"secondaryDiagnosisReferral,omitempty" bson:"secondaryDiagnosisReferral,omitempty"`
	NurseRemarksReferral       string          `json:"nurseRemarksReferral" bson:"nurseRemarksReferral"`
	InsuranceApprovalRequested bool            `json:"insuranceApprovalRequested" bson:"insuranceApprovalRequested"`
	FollowUpRequired           bool            `json:"followUpRequired" bson:"followUpRequired"`
	FollowUpVisits             []FollowUpVisit `json:"followUpVisits,omitempty" bson:"followUpVisits,omitempty"`
}

type Attachment struct {
	ObjectName  string    `json:"objectName" bson:"objectName"`
	FileName    string    `json:"fileName" bson:"fileName"`
	ContentType string    `json:"contentType" bson:"contentType"`
	Size        int64     `json:"size" bson:"size"`
	UploadedAt  time.Time `json:"uploadedAt" bson:"uploadedAt"`
}

// Visit is one encounter at a clinic location. Hospitalizations and
// Isolations are back-references maintained by the hospital/isolation
// services, never written from client input.
type Visit struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	LocationID string             `json:"locationId" bson:"locationId"`

	Date time.Time `json:"date" bson:"date"`
	Time string    `json:"time" bson:"time"`

	EmpNo        string `json:"empNo" bson:"empNo"`
	EmployeeName string `json:"employeeName" bson:"employeeName"`
	EmiratesID   string `json:"emiratesId" bson:"emiratesId"`
	InsuranceID  string `json:"insuranceId" bson:"insuranceId"`
	TrLocation   string `json:"trLocation" bson:"trLocation"`
	MobileNumber string `json:"mobileNumber" bson:"mobileNumber"`

	NatureOfCase string `json:"natureOfCase" bson:"natureOfCase"`
	CaseCategory string `json:"caseCategory" bson:"caseCategory"`

	NurseAssessment []string `json:"nurseAssessment,omitempty" bson:"nurseAssessment,omitempty"`
	SymptomDuration string   `json:"symptomDuration" bson:"symptomDuration"`

	Temperature   *float64 `json:"temperature,omitempty" bson:"temperature,omitempty"`
	BloodPressure string   `json:"bloodPressure" bson:"bloodPressure"`
	HeartRate     *int     `json:"heartRate,omitempty" bson:"heartRate,omitempty"`

	Others string `json:"others" bson:"others"`

	TokenNo      string `json:"tokenNo" bson:"tokenNo"`
	SentTo       string `json:"sentTo" bson:"sentTo"`
	ProviderName string `json:"providerName" bson:"providerName"`
	DoctorName   string `json:"doctorName" bson:"doctorName"`

	PrimaryDiagnosis   string   `json:"primaryDiagnosis" bson:"primaryDiagnosis"`
	SecondaryDiagnosis []string `json:"secondaryDiagnosis,omitempty" bson:"secondaryDiagnosis,omitempty"`

	Medicines []Medicine `json:"medicines,omitempty" bson:"medicines,omitempty"`

	SickLeaveStatus    string     `json:"sickLeaveStatus" bson:"sickLeaveStatus"`
	SickLeaveStartDate *time.Time `json:"sickLeaveStartDate,omitempty" bson:"sickLeaveStartDate,omitempty"`
	SickLeaveEndDate   *time.Time `json:"sickLeaveEndDate,omitempty" bson:"sickLeaveEndDate,omitempty"`
	TotalSickLeaveDays int        `json:"totalSickLeaveDays" bson:"totalSickLeaveDays"`
	Remarks            string     `json:"remarks" bson:"remarks"`

	Referrals []Referral `json:"referrals,omitempty" bson:"referrals,omitempty"`

	VisitStatus string `json:"visitStatus" bson:"visitStatus"`

	FinalRemarks        string `json:"finalRemarks" bson:"finalRemarks"`
	IPAdmissionRequired bool   `json:"ipAdmissionRequired" bson:"ipAdmissionRequired"`

	Hospitalizations []primitive.ObjectID `json:"hospitalizations" bson:"hospitalizations"`
	Isolations       []primitive.ObjectID `json:"isolations" bson:"isolations"`

	Attachments []Attachment `json:"attachments,omitempty" bson:"attachments,omitempty"`

	CreatedBy     primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedByName string             `json:"createdByName,omitempty" bson:"-"`

	TimeModel `bson:",inline"`
}
