package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hris/internal/apperr"
	"hris/internal/platform/optional"
)

type fakeStore struct {
	StoreAPI
	employees map[int64]Employee
	nextID    int64
	updates   int
}

func newFakeStore(seed ...Employee) *fakeStore {
	f := &fakeStore{employees: map[int64]Employee{}}
	for _, e := range seed {
		f.nextID++
		e.ID = f.nextID
		f.employees[e.ID] = e
	}
	return f
}

func (f *fakeStore) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeID == in.EmployeeID {
			return Employee{}, ErrEmployeeIDTaken
		}
	}
	f.nextID++
	e := Employee{
		ID: f.nextID, FullName: in.FullName, EmployeeID: in.EmployeeID, Email: in.Email,
		Gender: in.Gender, MaritalStatus: in.MaritalStatus, EmploymentStatus: in.EmploymentStatus,
		Role: in.Role, ManagerID: in.ManagerID, CreatedAt: time.Now(),
	}
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeStore) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (f *fakeStore) GetEmployeeByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeID == employeeID {
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateEmployee(ctx context.Context, id int64, in UpdateEmployeeInput) (*Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, nil
	}
	f.updates++
	if in.FullName.Set {
		e.FullName = in.FullName.Value
	}
	if in.ManagerID.Set {
		e.ManagerID = in.ManagerID.Ptr()
	}
	f.employees[id] = e
	return &e, nil
}

func validCreate(employeeID string) CreateEmployeeInput {
	return CreateEmployeeInput{
		FullName:      "Ada Lovelace",
		EmployeeID:    employeeID,
		DateOfBirth:   time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC),
		Gender:        GenderFemale,
		MaritalStatus: MaritalSingle,
		Email:         " ada@example.com ",
		StartDate:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateEmployeeAppliesDefaults(t *testing.T) {
	svc := NewService(newFakeStore())

	created, err := svc.CreateEmployee(context.Background(), validCreate("EMP001"))
	require.NoError(t, err)
	assert.Equal(t, StatusActive, created.EmploymentStatus)
	assert.Equal(t, RoleEmployee, created.Role)
	assert.Equal(t, "ada@example.com", created.Email)
}

func TestCreateEmployeeRejectsUnknownManager(t *testing.T) {
	svc := NewService(newFakeStore())
	in := validCreate("EMP001")
	manager := "EMP999"
	in.ManagerID = &manager

	_, err := svc.CreateEmployee(context.Background(), in)
	require.ErrorIs(t, err, ErrManagerNotFound)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateEmployeeRejectsSelfManagement(t *testing.T) {
	svc := NewService(newFakeStore())
	in := validCreate("EMP001")
	self := "EMP001"
	in.ManagerID = &self

	_, err := svc.CreateEmployee(context.Background(), in)
	require.ErrorIs(t, err, ErrSelfManaged)
}

func TestCreateEmployeeValidatesEnumsAndKeyLength(t *testing.T) {
	svc := NewService(newFakeStore())

	in := validCreate("EMP001")
	in.Gender = "Unknown"
	_, err := svc.CreateEmployee(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidGender)

	in = validCreate("EMP001")
	in.EmploymentStatus = "Retired"
	_, err = svc.CreateEmployee(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidStatus)

	long := make([]byte, maxEmployeeIDLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err = svc.CreateEmployee(context.Background(), validCreate(string(long)))
	require.ErrorIs(t, err, ErrEmployeeIDTooLong)
}

func TestCreateEmployeeSurfacesDuplicateKey(t *testing.T) {
	store := newFakeStore(Employee{EmployeeID: "EMP001"})
	svc := NewService(store)

	_, err := svc.CreateEmployee(context.Background(), validCreate("EMP001"))
	require.ErrorIs(t, err, ErrEmployeeIDTaken)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUpdateEmployeeMissingIDIsNotFound(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	_, err := svc.UpdateEmployee(context.Background(), 42, UpdateEmployeeInput{FullName: optional.Of("New")})
	require.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.Zero(t, store.updates)
}

func TestUpdateEmployeeChecksManagerReference(t *testing.T) {
	store := newFakeStore(
		Employee{EmployeeID: "EMP001", FullName: "Boss"},
		Employee{EmployeeID: "EMP002", FullName: "Report"},
	)
	svc := NewService(store)

	_, err := svc.UpdateEmployee(context.Background(), 2, UpdateEmployeeInput{ManagerID: optional.Of("EMP404")})
	require.ErrorIs(t, err, ErrManagerNotFound)

	_, err = svc.UpdateEmployee(context.Background(), 2, UpdateEmployeeInput{ManagerID: optional.Of("EMP002")})
	require.ErrorIs(t, err, ErrSelfManaged)

	updated, err := svc.UpdateEmployee(context.Background(), 2, UpdateEmployeeInput{ManagerID: optional.Of("EMP001")})
	require.NoError(t, err)
	require.NotNil(t, updated.ManagerID)
	assert.Equal(t, "EMP001", *updated.ManagerID)

	cleared, err := svc.UpdateEmployee(context.Background(), 2, UpdateEmployeeInput{ManagerID: optional.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.ManagerID)
}

func TestCreateDocumentRequiresEmployee(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.CreateDocument(context.Background(), CreateDocumentInput{EmployeeID: "EMP404", DocumentName: "Contract"})
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}
