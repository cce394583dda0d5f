package employee

import "context"

type StoreAPI interface {
	CreateDepartment(ctx context.Context, in CreateDepartmentInput) (Department, error)
	ListDepartments(ctx context.Context) ([]Department, error)
	GetDepartment(ctx context.Context, id int64) (*Department, error)
	UpdateDepartment(ctx context.Context, id int64, in UpdateDepartmentInput) (*Department, error)
	DeleteDepartment(ctx context.Context, id int64) (bool, error)

	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	GetEmployeeByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	UpdateEmployee(ctx context.Context, id int64, in UpdateEmployeeInput) (*Employee, error)
	DeleteEmployee(ctx context.Context, id int64) (bool, error)

	CreateDocument(ctx context.Context, in CreateDocumentInput) (Document, error)
	ListDocuments(ctx context.Context, employeeID string) ([]Document, error)
	DeleteDocument(ctx context.Context, id int64) (bool, error)
}
