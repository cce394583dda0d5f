package leave

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hris/internal/domain/employee"
)

type fakeStore struct {
	requests map[int64]Request
	balances map[string]Balance
	nextID   int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{requests: map[int64]Request{}, balances: map[string]Balance{}}
}

func (f *fakeStore) WithTx(ctx context.Context, fn func(StoreAPI) error) error {
	return fn(f)
}

func (f *fakeStore) CreateRequest(ctx context.Context, in CreateRequestInput) (Request, error) {
	f.nextID++
	r := Request{ID: f.nextID, EmployeeID: in.EmployeeID, LeaveType: in.LeaveType, StartDate: in.StartDate, EndDate: in.EndDate, Reason: in.Reason, Status: StatusPending}
	f.requests[r.ID] = r
	return r, nil
}

func (f *fakeStore) ListRequests(ctx context.Context) ([]Request, error) { return nil, nil }

func (f *fakeStore) ListRequestsByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	return nil, nil
}

func (f *fakeStore) ListRequestsByStatus(ctx context.Context, status Status) ([]Request, error) {
	var out []Request
	for _, r := range f.requests {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) GetRequest(ctx context.Context, id int64) (*Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeStore) SetRequestStatus(ctx context.Context, id int64, from, to Status) (*Request, error) {
	r, ok := f.requests[id]
	if !ok || r.Status != from {
		return nil, nil
	}
	r.Status = to
	f.requests[id] = r
	return &r, nil
}

func (f *fakeStore) DeleteRequest(ctx context.Context, id int64) (bool, error) {
	_, ok := f.requests[id]
	delete(f.requests, id)
	return ok, nil
}

func (f *fakeStore) CreateBalance(ctx context.Context, in CreateBalanceInput) (Balance, error) {
	if _, ok := f.balances[in.EmployeeID]; ok {
		return Balance{}, ErrBalanceExists
	}
	b := Balance{EmployeeID: in.EmployeeID, AnnualLeaveBalance: in.AnnualLeaveBalance, SickLeaveBalance: in.SickLeaveBalance, PersonalLeaveBalance: in.PersonalLeaveBalance}
	f.balances[in.EmployeeID] = b
	return b, nil
}

func (f *fakeStore) GetBalance(ctx context.Context, employeeID string) (*Balance, error) {
	b, ok := f.balances[employeeID]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (f *fakeStore) LockBalance(ctx context.Context, employeeID string) (*Balance, error) {
	return f.GetBalance(ctx, employeeID)
}

func (f *fakeStore) SetBalanceCounter(ctx context.Context, employeeID string, counter Counter, value int) (Balance, error) {
	b, ok := f.balances[employeeID]
	if !ok {
		return Balance{}, ErrBalanceNotFound
	}
	b.set(counter, value)
	f.balances[employeeID] = b
	return b, nil
}

type fakeEmployees map[string]employee.Employee

func (f fakeEmployees) GetEmployeeByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	e, ok := f[employeeID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

type sentMail struct {
	to, subject string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *recordingMailer) Send(ctx context.Context, from, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject})
	return nil
}

func newTestService(store *fakeStore, mailer *recordingMailer) *Service {
	employees := fakeEmployees{"EMP001": {EmployeeID: "EMP001", FullName: "Ada", Email: "ada@example.com"}}
	return NewService(store, employees, mailer, "hr@example.com")
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestApprovalDeductsInclusiveDays(t *testing.T) {
	store := newFakeStore()
	store.balances["EMP001"] = Balance{EmployeeID: "EMP001", AnnualLeaveBalance: 10, SickLeaveBalance: 5}
	mailer := &recordingMailer{}
	svc := newTestService(store, mailer)
	ctx := context.Background()

	req, err := svc.CreateRequest(ctx, CreateRequestInput{EmployeeID: "EMP001", LeaveType: TypeAnnual, StartDate: day(2), EndDate: day(4), Reason: "trip"})
	require.NoError(t, err)

	decided, err := svc.UpdateStatus(ctx, req.ID, StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, decided.Status)
	assert.Equal(t, 7, store.balances["EMP001"].AnnualLeaveBalance)
	assert.Equal(t, 5, store.balances["EMP001"].SickLeaveBalance)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ada@example.com", mailer.sent[0].to)
	assert.Equal(t, "Leave request Approved", mailer.sent[0].subject)
}

func TestApprovalClampsAtZero(t *testing.T) {
	store := newFakeStore()
	store.balances["EMP001"] = Balance{EmployeeID: "EMP001", SickLeaveBalance: 1}
	svc := newTestService(store, &recordingMailer{})
	ctx := context.Background()

	req, err := svc.CreateRequest(ctx, CreateRequestInput{EmployeeID: "EMP001", LeaveType: TypeSick, StartDate: day(2), EndDate: day(6), Reason: "flu"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, req.ID, StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, 0, store.balances["EMP001"].SickLeaveBalance)
}

func TestApprovalWithoutBalanceRowStillSucceeds(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &recordingMailer{})
	ctx := context.Background()

	req, err := svc.CreateRequest(ctx, CreateRequestInput{EmployeeID: "EMP001", LeaveType: TypeMaternity, StartDate: day(1), EndDate: day(30), Reason: "newborn"})
	require.NoError(t, err)
	decided, err := svc.UpdateStatus(ctx, req.ID, StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, decided.Status)
	assert.Empty(t, store.balances)
}

func TestRejectionLeavesBalanceAlone(t *testing.T) {
	store := newFakeStore()
	store.balances["EMP001"] = Balance{EmployeeID: "EMP001", PersonalLeaveBalance: 3}
	svc := newTestService(store, &recordingMailer{})
	ctx := context.Background()

	req, err := svc.CreateRequest(ctx, CreateRequestInput{EmployeeID: "EMP001", LeaveType: TypePersonal, StartDate: day(2), EndDate: day(2), Reason: "errand"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, req.ID, StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, 3, store.balances["EMP001"].PersonalLeaveBalance)
}

func TestDecidedRequestCannotChangeAgain(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &recordingMailer{})
	ctx := context.Background()

	req, err := svc.CreateRequest(ctx, CreateRequestInput{EmployeeID: "EMP001", LeaveType: TypeAnnual, StartDate: day(2), EndDate: day(2), Reason: "x"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, req.ID, StatusRejected)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, req.ID, StatusApproved)
	require.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.UpdateStatus(ctx, req.ID, StatusPending)
	require.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.UpdateStatus(ctx, 404, StatusApproved)
	require.ErrorIs(t, err, ErrRequestNotFound)
}

func TestCreateRequestValidation(t *testing.T) {
	svc := newTestService(newFakeStore(), &recordingMailer{})
	ctx := context.Background()

	_, err := svc.CreateRequest(ctx, CreateRequestInput{EmployeeID: "EMP001", LeaveType: "Gardening", StartDate: day(2), EndDate: day(2), Reason: "x"})
	require.ErrorIs(t, err, ErrInvalidLeaveType)
	_, err = svc.CreateRequest(ctx, CreateRequestInput{EmployeeID: "EMP001", LeaveType: TypeAnnual, StartDate: day(5), EndDate: day(2), Reason: "x"})
	require.ErrorIs(t, err, ErrInvalidDateRange)
	_, err = svc.CreateRequest(ctx, CreateRequestInput{EmployeeID: "EMP404", LeaveType: TypeAnnual, StartDate: day(2), EndDate: day(2), Reason: "x"})
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeductBalance(t *testing.T) {
	store := newFakeStore()
	store.balances["EMP001"] = Balance{EmployeeID: "EMP001", AnnualLeaveBalance: 4}
	svc := newTestService(store, &recordingMailer{})
	ctx := context.Background()

	b, err := svc.DeductBalance(ctx, "EMP001", "annual", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, b.AnnualLeaveBalance)

	b, err = svc.DeductBalance(ctx, "EMP001", "Annual Leave", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, b.AnnualLeaveBalance)

	_, err = svc.DeductBalance(ctx, "EMP001", "Paternity Leave", 1)
	require.ErrorIs(t, err, ErrInvalidLeaveType)
	_, err = svc.DeductBalance(ctx, "EMP404", "sick", 1)
	require.ErrorIs(t, err, ErrBalanceNotFound)
	_, err = svc.DeductBalance(ctx, "EMP001", "sick", -1)
	require.ErrorIs(t, err, ErrNegativeDays)
}
