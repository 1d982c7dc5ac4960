package responses

import "time"

// EmployeeSummary aggregates one employee's visit history. The five figures
// are independent cuts over the same records, not mutually exclusive filters.
type EmployeeSummary struct {
	EmpNo                  string     `json:"empNo"`
	AllTimeTotalVisits     int        `json:"allTimeTotalVisits"`
	Last90Days             Last90Days `json:"last90Days"`
	SickLeaveApprovedCount int        `json:"sickLeaveApprovedCount"`
	TotalReferrals         int        `json:"totalReferrals"`
	OpenReferrals          int        `json:"openReferrals"`
}

type Last90Days struct {
	Count  int            `json:"count"`
	Visits []SummaryVisit `json:"visits"`
}

type SummaryVisit struct {
	Date     time.Time `json:"date"`
	Provider *string   `json:"provider"`
}
