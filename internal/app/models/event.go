package models

import "time"

// RecordEvent is published to the record-events queue on create/delete of
// visits, hospital records and isolation records. Best effort: publishing
// failures never fail the originating request.
type RecordEvent struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	RecordID   string    `json:"recordId"`
	TokenNo    string    `json:"tokenNo,omitempty"`
	EmpNo      string    `json:"empNo,omitempty"`
	LocationID string    `json:"locationId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
