package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Isolation is one isolation/quarantine period, always tied to exactly one
// Visit. The ClinicVisitID foreign key is immutable after creation.
type Isolation struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	LocationID    string             `json:"locationId" bson:"locationId"`
	ClinicVisitID primitive.ObjectID `json:"clinicVisitId" bson:"clinicVisitId"`

	EmpNo        string `json:"empNo" bson:"empNo"`
	Type         string `json:"type" bson:"type"`
	EmployeeName string `json:"employeeName" bson:"employeeName"`
	EmiratesID   string `json:"emiratesId" bson:"emiratesId"`
	InsuranceID  string `json:"insuranceId" bson:"insuranceId"`
	MobileNumber string `json:"mobileNumber" bson:"mobileNumber"`
	TrLocation   string `json:"trLocation" bson:"trLocation"`

	IsolatedIn      string `json:"isolatedIn" bson:"isolatedIn"`
	IsolationReason string `json:"isolationReason" bson:"isolationReason"`
	Nationality     string `json:"nationality" bson:"nationality"`

	SlUpto   *time.Time `json:"slUpto,omitempty" bson:"slUpto,omitempty"`
	DateFrom *time.Time `json:"dateFrom,omitempty" bson:"dateFrom,omitempty"`
	DateTo   *time.Time `json:"dateTo,omitempty" bson:"dateTo,omitempty"`

	CurrentStatus string `json:"currentStatus" bson:"currentStatus"`
	Remarks       string `json:"remarks" bson:"remarks"`

	CreatedBy     primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedByName string             `json:"createdByName,omitempty" bson:"-"`

	VisitTokenNo string `json:"visitTokenNo,omitempty" bson:"-"`

	TimeModel `bson:",inline"`
}
