package employee

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "Single"
	MaritalMarried  MaritalStatus = "Married"
	MaritalDivorced MaritalStatus = "Divorced"
	MaritalWidowed  MaritalStatus = "Widowed"
)

func (m MaritalStatus) Valid() bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed:
		return true
	}
	return false
}

type EmploymentStatus string

const (
	StatusActive     EmploymentStatus = "Active"
	StatusOnLeave    EmploymentStatus = "On Leave"
	StatusTerminated EmploymentStatus = "Terminated"
)

func (s EmploymentStatus) Valid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return true
	}
	return false
}

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

var (
	Genders            = []string{string(GenderMale), string(GenderFemale), string(GenderOther)}
	MaritalStatuses    = []string{string(MaritalSingle), string(MaritalMarried), string(MaritalDivorced), string(MaritalWidowed)}
	EmploymentStatuses = []string{string(StatusActive), string(StatusOnLeave), string(StatusTerminated)}
	Roles              = []string{string(RoleAdmin), string(RoleManager), string(RoleEmployee)}
)

const maxEmployeeIDLength = 50
