package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FollowUp struct {
	Date    *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Remarks string     `json:"remarks" bson:"remarks"`
}

// Hospital is one admission, always tied to exactly one Visit. The
// ClinicVisitID foreign key is immutable after creation.
type Hospital struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	LocationID    string             `json:"locationId" bson:"locationId"`
	ClinicVisitID primitive.ObjectID `json:"clinicVisitId" bson:"clinicVisitId"`

	EmpNo        string `json:"empNo" bson:"empNo"`
	EmployeeName string `json:"employeeName" bson:"employeeName"`
	EmiratesID   string `json:"emiratesId" bson:"emiratesId"`
	InsuranceID  string `json:"insuranceId" bson:"insuranceId"`
	TrLocation   string `json:"trLocation" bson:"trLocation"`
	MobileNumber string `json:"mobileNumber" bson:"mobileNumber"`

	HospitalName    string     `json:"hospitalName" bson:"hospitalName"`
	DateOfAdmission *time.Time `json:"dateOfAdmission,omitempty" bson:"dateOfAdmission,omitempty"`

	NatureOfCase string `json:"natureOfCase" bson:"natureOfCase"`
	CaseCategory string `json:"caseCategory" bson:"caseCategory"`

	PrimaryDiagnosis   string   `json:"primaryDiagnosis" bson:"primaryDiagnosis"`
	SecondaryDiagnosis []string `json:"secondaryDiagnosis,omitempty" bson:"secondaryDiagnosis,omitempty"`

	Status                   string     `json:"status" bson:"status"`
	DischargeSummaryReceived bool       `json:"dischargeSummaryReceived" bson:"dischargeSummaryReceived"`
	DateOfDischarge          *time.Time `json:"dateOfDischarge,omitempty" bson:"dateOfDischarge,omitempty"`
	DaysHospitalized         int        `json:"daysHospitalized" bson:"daysHospitalized"`

	FollowUp []FollowUp `json:"followUp,omitempty" bson:"followUp,omitempty"`

	FitnessStatus     string `json:"fitnessStatus" bson:"fitnessStatus"`
	IsolationRequired bool   `json:"isolationRequired" bson:"isolationRequired"`
	FinalRemarks      string `json:"finalRemarks" bson:"finalRemarks"`

	CreatedBy     primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedByName string             `json:"createdByName,omitempty" bson:"-"`

	// Denormalized parent fields resolved on reads.
	VisitTokenNo string `json:"visitTokenNo,omitempty" bson:"-"`

	TimeModel `bson:",inline"`
}
