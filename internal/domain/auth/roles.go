package auth

const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

var Roles = []string{RoleAdmin, RoleManager, RoleEmployee}

type UserContext struct {
	UserID     int64
	Email      string
	Role       string
	EmployeeID string
}
