package utils

import (
	"net/http"
	"strconv"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/requests"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")
	if pageSizeStr == "" {
		// the legacy dashboard still sends ?limit=
		pageSizeStr = r.URL.Query().Get("limit")
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 20
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func BuildVisitListFilter(r *http.Request) *requests.VisitListFilter {
	q := r.URL.Query()
	return &requests.VisitListFilter{
		EmiratesID:  q.Get("emiratesId"),
		EmpNo:       q.Get("empNo"),
		VisitStatus: q.Get("visitStatus"),
		LocationID:  q.Get("locationId"),
		TokenNo:     q.Get("tokenNo"),
		StartDate:   q.Get("startDate"),
		EndDate:     q.Get("endDate"),
	}
}

func BuildHospitalListFilter(r *http.Request) *requests.HospitalListFilter {
	q := r.URL.Query()
	return &requests.HospitalListFilter{
		LocationID: q.Get("locationId"),
		EmpNo:      q.Get("empNo"),
		EmiratesID: q.Get("emiratesId"),
		Status:     q.Get("status"),
		StartDate:  q.Get("startDate"),
		EndDate:    q.Get("endDate"),
	}
}

func BuildIsolationListFilter(r *http.Request) *requests.IsolationListFilter {
	q := r.URL.Query()
	return &requests.IsolationListFilter{
		LocationID: q.Get("locationId"),
		EmpNo:      q.Get("empNo"),
		EmiratesID: q.Get("emiratesId"),
		DateFrom:   q.Get("dateFrom"),
		DateTo:     q.Get("dateTo"),
	}
}

func BuildUserListFilter(r *http.Request) *requests.UserListFilter {
	q := r.URL.Query()
	return &requests.UserListFilter{
		EmpID:      q.Get("empId"),
		Email:      q.Get("email"),
		Role:       q.Get("role"),
		LocationID: q.Get("locationId"),
	}
}
