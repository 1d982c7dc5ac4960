package models

// Session is the payload stored in Redis under the session id carried by the
// JWT. Handlers trust UserID and LocationID from here over client input.
type Session struct {
	UserID          string   `json:"userId"`
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	LocationID      string   `json:"locationId"`
	ManagerLocation []string `json:"managerLocation,omitempty"`
}
