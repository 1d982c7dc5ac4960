package responses

import "time"

// User is the password-free projection returned by auth and admin endpoints.
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	EmpID           string    `json:"empId"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	LocationID      string    `json:"locationId"`
	ManagerLocation []string  `json:"managerLocation,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Auth struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
