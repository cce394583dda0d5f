package employee

import (
	"time"

	"hris/internal/platform/optional"
)

type Department struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateDepartmentInput struct {
	Name        string
	Description *string
}

type UpdateDepartmentInput struct {
	Name        optional.Value[string] `json:"name"`
	Description optional.Value[string] `json:"description"`
}

type Employee struct {
	ID                int64            `json:"id"`
	FullName          string           `json:"fullName"`
	EmployeeID        string           `json:"employeeId"`
	DateOfBirth       time.Time        `json:"dateOfBirth"`
	Gender            Gender           `json:"gender"`
	MaritalStatus     MaritalStatus    `json:"maritalStatus"`
	Address           *string          `json:"address"`
	PhoneNumber       *string          `json:"phoneNumber"`
	Email             string           `json:"email"`
	Position          *string          `json:"position"`
	Department        *string          `json:"department"`
	ManagerID         *string          `json:"managerId"`
	StartDate         time.Time        `json:"startDate"`
	EmploymentStatus  EmploymentStatus `json:"employmentStatus"`
	BankName          *string          `json:"bankName"`
	BankAccountNumber *string          `json:"bankAccountNumber"`
	Role              Role             `json:"role"`
	StatusChangedAt   time.Time        `json:"statusChangedAt"`
	CreatedAt         time.Time        `json:"createdAt"`
}

type CreateEmployeeInput struct {
	FullName          string
	EmployeeID        string
	DateOfBirth       time.Time
	Gender            Gender
	MaritalStatus     MaritalStatus
	Address           *string
	PhoneNumber       *string
	Email             string
	Position          *string
	Department        *string
	ManagerID         *string
	StartDate         time.Time
	EmploymentStatus  EmploymentStatus
	BankName          *string
	BankAccountNumber *string
	Role              Role
}

// UpdateEmployeeInput only touches fields that are Set; Null clears nullable columns.
type UpdateEmployeeInput struct {
	FullName          optional.Value[string]
	EmployeeID        optional.Value[string]
	DateOfBirth       optional.Value[time.Time]
	Gender            optional.Value[Gender]
	MaritalStatus     optional.Value[MaritalStatus]
	Address           optional.Value[string]
	PhoneNumber       optional.Value[string]
	Email             optional.Value[string]
	Position          optional.Value[string]
	Department        optional.Value[string]
	ManagerID         optional.Value[string]
	StartDate         optional.Value[time.Time]
	EmploymentStatus  optional.Value[EmploymentStatus]
	BankName          optional.Value[string]
	BankAccountNumber optional.Value[string]
	Role              optional.Value[Role]
}

type Document struct {
	ID           int64     `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	DocumentName string    `json:"documentName"`
	DocumentType string    `json:"documentType"`
	FileURL      string    `json:"fileUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateDocumentInput struct {
	EmployeeID   string
	DocumentName string
	DocumentType string
	FileURL      string
}
