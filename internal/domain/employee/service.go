package employee

import (
	"context"
	"strings"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) CreateDepartment(ctx context.Context, in CreateDepartmentInput) (Department, error) {
	return s.store.CreateDepartment(ctx, in)
}

func (s *Service) ListDepartments(ctx context.Context) ([]Department, error) {
	return s.store.ListDepartments(ctx)
}

func (s *Service) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	return s.store.GetDepartment(ctx, id)
}

func (s *Service) UpdateDepartment(ctx context.Context, id int64, in UpdateDepartmentInput) (Department, error) {
	updated, err := s.store.UpdateDepartment(ctx, id, in)
	if err != nil {
		return Department{}, err
	}
	if updated == nil {
		return Department{}, ErrDepartmentNotFound
	}
	return *updated, nil
}

func (s *Service) DeleteDepartment(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteDepartment(ctx, id)
}

func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (Employee, error) {
	if in.EmploymentStatus == "" {
		in.EmploymentStatus = StatusActive
	}
	if in.Role == "" {
		in.Role = RoleEmployee
	}
	if err := validateEnums(in.Gender, in.MaritalStatus, in.EmploymentStatus, in.Role); err != nil {
		return Employee{}, err
	}
	if len(in.EmployeeID) > maxEmployeeIDLength {
		return Employee{}, ErrEmployeeIDTooLong
	}
	if in.ManagerID != nil {
		if *in.ManagerID == in.EmployeeID {
			return Employee{}, ErrSelfManaged
		}
		if err := s.requireManager(ctx, *in.ManagerID); err != nil {
			return Employee{}, err
		}
	}
	in.Email = strings.TrimSpace(in.Email)
	return s.store.CreateEmployee(ctx, in)
}

func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	return s.store.ListEmployees(ctx)
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	return s.store.GetEmployee(ctx, id)
}

func (s *Service) GetEmployeeByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	return s.store.GetEmployeeByEmployeeID(ctx, employeeID)
}

func (s *Service) UpdateEmployee(ctx context.Context, id int64, in UpdateEmployeeInput) (Employee, error) {
	current, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	if current == nil {
		return Employee{}, ErrEmployeeNotFound
	}

	if in.Gender.Set && !in.Gender.Value.Valid() {
		return Employee{}, ErrInvalidGender
	}
	if in.MaritalStatus.Set && !in.MaritalStatus.Value.Valid() {
		return Employee{}, ErrInvalidMaritalStatus
	}
	if in.EmploymentStatus.Set && !in.EmploymentStatus.Value.Valid() {
		return Employee{}, ErrInvalidStatus
	}
	if in.Role.Set && !in.Role.Value.Valid() {
		return Employee{}, ErrInvalidRole
	}
	if in.EmployeeID.Set && len(in.EmployeeID.Value) > maxEmployeeIDLength {
		return Employee{}, ErrEmployeeIDTooLong
	}

	if manager := in.ManagerID.Ptr(); manager != nil {
		businessKey := current.EmployeeID
		if in.EmployeeID.Set {
			businessKey = in.EmployeeID.Value
		}
		if *manager == businessKey {
			return Employee{}, ErrSelfManaged
		}
		if err := s.requireManager(ctx, *manager); err != nil {
			return Employee{}, err
		}
	}

	updated, err := s.store.UpdateEmployee(ctx, id, in)
	if err != nil {
		return Employee{}, err
	}
	if updated == nil {
		return Employee{}, ErrEmployeeNotFound
	}
	return *updated, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteEmployee(ctx, id)
}

func (s *Service) CreateDocument(ctx context.Context, in CreateDocumentInput) (Document, error) {
	if err := s.RequireEmployee(ctx, in.EmployeeID); err != nil {
		return Document{}, err
	}
	return s.store.CreateDocument(ctx, in)
}

func (s *Service) ListDocuments(ctx context.Context, employeeID string) ([]Document, error) {
	return s.store.ListDocuments(ctx, employeeID)
}

func (s *Service) DeleteDocument(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteDocument(ctx, id)
}

// RequireEmployee returns ErrEmployeeNotFound when no employee carries the business key.
func (s *Service) RequireEmployee(ctx context.Context, employeeID string) error {
	found, err := s.store.GetEmployeeByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}
	if found == nil {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Service) requireManager(ctx context.Context, managerID string) error {
	found, err := s.store.GetEmployeeByEmployeeID(ctx, managerID)
	if err != nil {
		return err
	}
	if found == nil {
		return ErrManagerNotFound
	}
	return nil
}

func validateEnums(gender Gender, marital MaritalStatus, status EmploymentStatus, role Role) error {
	switch {
	case !gender.Valid():
		return ErrInvalidGender
	case !marital.Valid():
		return ErrInvalidMaritalStatus
	case !status.Valid():
		return ErrInvalidStatus
	case !role.Valid():
		return ErrInvalidRole
	}
	return nil
}
