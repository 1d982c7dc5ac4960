package access

import (
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
)

// CanAccess reports whether the session may read or mutate a record that
// belongs to recordLocationID. Staff are scoped to their own location,
// managers to their assigned location list, superadmins to everything.
func CanAccess(session *models.Session, recordLocationID string) bool {
	if session == nil {
		return false
	}
	switch session.Role {
	case constvars.RoleSuperadmin:
		return true
	case constvars.RoleManager:
		if session.LocationID == recordLocationID {
			return true
		}
		for _, locationID := range session.ManagerLocation {
			if locationID == recordLocationID {
				return true
			}
		}
		return false
	case constvars.RoleStaff:
		return session.LocationID == recordLocationID
	default:
		return false
	}
}

// LocationFilter builds the Mongo filter limiting a list query to the
// locations the session may see. A nil result means no restriction.
func LocationFilter(session *models.Session, locationField string) bson.M {
	if session == nil {
		return bson.M{locationField: ""}
	}
	switch session.Role {
	case constvars.RoleSuperadmin:
		return nil
	case constvars.RoleManager:
		locations := append([]string{session.LocationID}, session.ManagerLocation...)
		return bson.M{locationField: bson.M{"$in": locations}}
	default:
		return bson.M{locationField: session.LocationID}
	}
}
