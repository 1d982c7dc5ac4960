package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationRequest(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/visits", nil)

		pagination := BuildPaginationRequest(r)

		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 20, pagination.PageSize)
	})

	t.Run("Explicit Values", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/visits?page=3&page_size=50", nil)

		pagination := BuildPaginationRequest(r)

		assert.Equal(t, 3, pagination.Page)
		assert.Equal(t, 50, pagination.PageSize)
	})

	t.Run("Legacy Limit Parameter", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/visits?limit=15", nil)

		pagination := BuildPaginationRequest(r)

		assert.Equal(t, 15, pagination.PageSize)
	})

	t.Run("Garbage Falls Back To Defaults", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/visits?page=-2&page_size=abc", nil)

		pagination := BuildPaginationRequest(r)

		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 20, pagination.PageSize)
	})
}

func TestBuildVisitListFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/visits?empNo=EMP-1&visitStatus=Open&startDate=2026-01-01", nil)

	filter := BuildVisitListFilter(r)

	assert.Equal(t, "EMP-1", filter.EmpNo)
	assert.Equal(t, "Open", filter.VisitStatus)
	assert.Equal(t, "2026-01-01", filter.StartDate)
	assert.Empty(t, filter.TokenNo)
}
