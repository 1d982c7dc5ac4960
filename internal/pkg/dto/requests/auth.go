package requests

type Register struct {
	Name            string   `json:"name"`
	EmpID           string   `json:"empId" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=8"`
	Role            string   `json:"role" validate:"omitempty,oneof=staff manager superadmin"`
	LocationID      string   `json:"locationId" validate:"required"`
	ManagerLocation []string `json:"managerLocation"`
}

// Login accepts either email or empId.
type Login struct {
	Email    string `json:"email" validate:"omitempty,email"`
	EmpID    string `json:"empId"`
	Password string `json:"password" validate:"required"`
}

type UpdateUser struct {
	Name            *string   `json:"name"`
	Email           *string   `json:"email" validate:"omitempty,email"`
	Password        *string   `json:"password" validate:"omitempty,min=8"`
	Role            *string   `json:"role" validate:"omitempty,oneof=staff manager superadmin"`
	LocationID      *string   `json:"locationId"`
	ManagerLocation *[]string `json:"managerLocation"`
}
