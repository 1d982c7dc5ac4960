package visits

import (
	"testing"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestBuildEmployeeSummary(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Independent Figures", func(t *testing.T) {
		visits := []models.Visit{
			{
				Date:            now.AddDate(0, 0, -5),
				SickLeaveStatus: constvars.SickLeaveApproved,
				Referrals: []models.Referral{
					{ReferredToHospital: "City Hospital", FollowUpRequired: true},
					{ReferredToHospital: "Specialist Clinic"},
				},
			},
			{
				Date: now.AddDate(0, 0, -60),
			},
			{
				Date:            now.AddDate(0, 0, -120),
				SickLeaveStatus: "Rejected",
				Referrals: []models.Referral{
					{ReferredToHospital: "City Hospital"},
				},
			},
			{
				Date: now.AddDate(0, 0, -200),
			},
			{
				Date: now.AddDate(0, 0, -300),
			},
		}

		summary := BuildEmployeeSummary("EMP-42", visits, now)

		assert.Equal(t, "EMP-42", summary.EmpNo)
		assert.Equal(t, 5, summary.AllTimeTotalVisits)
		assert.Equal(t, 2, summary.Last90Days.Count)
		assert.Equal(t, 1, summary.SickLeaveApprovedCount)
		assert.Equal(t, 3, summary.TotalReferrals)
		assert.Equal(t, 1, summary.OpenReferrals)
	})

	t.Run("Window Visits Sorted Newest First", func(t *testing.T) {
		visits := []models.Visit{
			{Date: now.AddDate(0, 0, -30), ProviderName: "Dr. Older"},
			{Date: now.AddDate(0, 0, -2), ProviderName: "Dr. Newer"},
		}

		summary := BuildEmployeeSummary("EMP-42", visits, now)

		assert.Len(t, summary.Last90Days.Visits, 2)
		assert.Equal(t, "Dr. Newer", *summary.Last90Days.Visits[0].Provider)
		assert.Equal(t, "Dr. Older", *summary.Last90Days.Visits[1].Provider)
	})

	t.Run("Provider Fallback Order", func(t *testing.T) {
		visits := []models.Visit{
			{Date: now, ProviderName: "Provider A", DoctorName: "Doctor B"},
			{Date: now.Add(-1 * time.Hour), DoctorName: "Doctor B", SentTo: "Hospital C"},
			{Date: now.Add(-2 * time.Hour), SentTo: "Hospital C"},
			{Date: now.Add(-3 * time.Hour)},
		}

		summary := BuildEmployeeSummary("EMP-42", visits, now)

		assert.Equal(t, "Provider A", *summary.Last90Days.Visits[0].Provider)
		assert.Equal(t, "Doctor B", *summary.Last90Days.Visits[1].Provider)
		assert.Equal(t, "Hospital C", *summary.Last90Days.Visits[2].Provider)
		assert.Nil(t, summary.Last90Days.Visits[3].Provider, "a visit without any provider field reports nil")
	})

	t.Run("Boundary Day Included", func(t *testing.T) {
		visits := []models.Visit{
			{Date: now.AddDate(0, 0, -90)},
		}

		summary := BuildEmployeeSummary("EMP-42", visits, now)

		assert.Equal(t, 1, summary.Last90Days.Count, "a visit exactly 90 days old is inside the window")
	})

	t.Run("No Visits", func(t *testing.T) {
		summary := BuildEmployeeSummary("EMP-42", nil, now)

		assert.Equal(t, 0, summary.AllTimeTotalVisits)
		assert.Equal(t, 0, summary.Last90Days.Count)
		assert.NotNil(t, summary.Last90Days.Visits, "window slice serializes as an empty array, not null")
	})
}
