package access

import (
	"testing"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCanAccess(t *testing.T) {
	testCases := []struct {
		name             string
		session          *models.Session
		recordLocationID string
		expected         bool
	}{
		{
			name:     "Nil Session Denied",
			session:  nil,
			expected: false,
		},
		{
			name:             "Superadmin Any Location",
			session:          &models.Session{Role: constvars.RoleSuperadmin, LocationID: "dic-2"},
			recordLocationID: "al-qouz",
			expected:         true,
		},
		{
			name:             "Staff Own Location",
			session:          &models.Session{Role: constvars.RoleStaff, LocationID: "dic-2"},
			recordLocationID: "dic-2",
			expected:         true,
		},
		{
			name:             "Staff Other Location Denied",
			session:          &models.Session{Role: constvars.RoleStaff, LocationID: "dic-2"},
			recordLocationID: "al-qouz",
			expected:         false,
		},
		{
			name:             "Manager Own Location",
			session:          &models.Session{Role: constvars.RoleManager, LocationID: "dic-2"},
			recordLocationID: "dic-2",
			expected:         true,
		},
		{
			name: "Manager Assigned Location",
			session: &models.Session{
				Role:            constvars.RoleManager,
				LocationID:      "dic-2",
				ManagerLocation: []string{"al-qouz", "sajja"},
			},
			recordLocationID: "sajja",
			expected:         true,
		},
		{
			name: "Manager Unassigned Location Denied",
			session: &models.Session{
				Role:            constvars.RoleManager,
				LocationID:      "dic-2",
				ManagerLocation: []string{"al-qouz"},
			},
			recordLocationID: "sajja",
			expected:         false,
		},
		{
			name:             "Unknown Role Denied",
			session:          &models.Session{Role: "auditor", LocationID: "dic-2"},
			recordLocationID: "dic-2",
			expected:         false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CanAccess(tc.session, tc.recordLocationID))
		})
	}
}

func TestLocationFilter(t *testing.T) {
	t.Run("Superadmin Unrestricted", func(t *testing.T) {
		session := &models.Session{Role: constvars.RoleSuperadmin}

		assert.Nil(t, LocationFilter(session, "locationId"))
	})

	t.Run("Manager Gets In Filter", func(t *testing.T) {
		session := &models.Session{
			Role:            constvars.RoleManager,
			LocationID:      "dic-2",
			ManagerLocation: []string{"al-qouz"},
		}

		filter := LocationFilter(session, "locationId")

		inner, ok := filter["locationId"].(bson.M)
		assert.True(t, ok)
		assert.ElementsMatch(t, []string{"dic-2", "al-qouz"}, inner["$in"])
	})

	t.Run("Staff Gets Exact Match", func(t *testing.T) {
		session := &models.Session{Role: constvars.RoleStaff, LocationID: "dic-2"}

		filter := LocationFilter(session, "locationId")

		assert.Equal(t, "dic-2", filter["locationId"])
	})

	t.Run("Nil Session Matches Nothing", func(t *testing.T) {
		filter := LocationFilter(nil, "locationId")

		assert.Equal(t, "", filter["locationId"], "a missing session must not widen the query")
	})
}
