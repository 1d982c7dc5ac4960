package requests

type Pagination struct {
	Page     int
	PageSize int
}

type VisitListFilter struct {
	EmiratesID  string
	EmpNo       string
	VisitStatus string
	LocationID  string
	TokenNo     string
	StartDate   string
	EndDate     string
}

type HospitalListFilter struct {
	LocationID string
	EmpNo      string
	EmiratesID string
	Status     string
	StartDate  string
	EndDate    string
}

type IsolationListFilter struct {
	LocationID string
	EmpNo      string
	EmiratesID string
	DateFrom   string
	DateTo     string
}

type UserListFilter struct {
	EmpID      string
	Email      string
	Role       string
	LocationID string
}
