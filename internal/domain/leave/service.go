package leave

import (
	"context"
	"fmt"
	"log/slog"

	"hris/internal/domain/employee"
	"hris/internal/platform/calendar"
	"hris/internal/platform/email"
)

// Employees is satisfied by employee.Service.
type Employees interface {
	GetEmployeeByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error)
}

type Service struct {
	store     StoreAPI
	employees Employees
	mailer    email.Mailer
	emailFrom string
}

func NewService(store StoreAPI, employees Employees, mailer email.Mailer, emailFrom string) *Service {
	return &Service{store: store, employees: employees, mailer: mailer, emailFrom: emailFrom}
}

func (s *Service) CreateRequest(ctx context.Context, in CreateRequestInput) (Request, error) {
	if !in.LeaveType.Valid() {
		return Request{}, ErrInvalidLeaveType
	}
	if in.EndDate.Before(in.StartDate) {
		return Request{}, ErrInvalidDateRange
	}
	if _, err := s.requireEmployee(ctx, in.EmployeeID); err != nil {
		return Request{}, err
	}
	return s.store.CreateRequest(ctx, in)
}

func (s *Service) ListRequests(ctx context.Context) ([]Request, error) {
	return s.store.ListRequests(ctx)
}

func (s *Service) ListRequestsByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	return s.store.ListRequestsByEmployee(ctx, employeeID)
}

func (s *Service) ListPending(ctx context.Context) ([]Request, error) {
	return s.store.ListRequestsByStatus(ctx, StatusPending)
}

func (s *Service) DeleteRequest(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteRequest(ctx, id)
}

// UpdateStatus decides a pending request. Approval draws the inclusive day count from the
// matching balance when the leave type is tracked and the employee has a balance row.
func (s *Service) UpdateStatus(ctx context.Context, id int64, next Status) (Request, error) {
	if !next.Valid() {
		return Request{}, ErrInvalidStatus
	}
	current, err := s.store.GetRequest(ctx, id)
	if err != nil {
		return Request{}, err
	}
	if current == nil {
		return Request{}, ErrRequestNotFound
	}
	if !CanTransition(current.Status, next) {
		return Request{}, ErrInvalidTransition
	}

	var decided Request
	err = s.store.WithTx(ctx, func(tx StoreAPI) error {
		updated, err := tx.SetRequestStatus(ctx, id, StatusPending, next)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrInvalidTransition
		}
		decided = *updated
		if next != StatusApproved {
			return nil
		}
		return s.deductApproved(ctx, tx, decided)
	})
	if err != nil {
		return Request{}, err
	}

	s.notifyDecision(ctx, decided)
	return decided, nil
}

func (s *Service) deductApproved(ctx context.Context, tx StoreAPI, req Request) error {
	counter, err := CounterFor(string(req.LeaveType))
	if err != nil {
		slog.Info("leave type has no balance, skipping deduction", "requestId", req.ID, "leaveType", req.LeaveType)
		return nil
	}
	balance, err := tx.LockBalance(ctx, req.EmployeeID)
	if err != nil {
		return err
	}
	if balance == nil {
		slog.Warn("no leave balance for employee, skipping deduction", "requestId", req.ID, "employeeId", req.EmployeeID)
		return nil
	}
	days, err := CalculateDays(req.StartDate, req.EndDate)
	if err != nil {
		return err
	}
	_, err = tx.SetBalanceCounter(ctx, req.EmployeeID, counter, ClampDeduct(balance.value(counter), days))
	return err
}

func (s *Service) notifyDecision(ctx context.Context, req Request) {
	if s.mailer == nil || s.employees == nil {
		return
	}
	emp, err := s.employees.GetEmployeeByEmployeeID(ctx, req.EmployeeID)
	if err != nil || emp == nil {
		slog.Warn("leave decision recipient lookup failed", "requestId", req.ID, "employeeId", req.EmployeeID, "err", err)
		return
	}
	subject := fmt.Sprintf("Leave request %s", req.Status)
	body := fmt.Sprintf("Hello %s,\n\nYour %s request for %s to %s has been %s.\n",
		emp.FullName, req.LeaveType,
		req.StartDate.Format(calendar.DateLayout), req.EndDate.Format(calendar.DateLayout),
		req.Status)
	if err := s.mailer.Send(ctx, s.emailFrom, emp.Email, subject, body); err != nil {
		slog.Warn("leave decision email failed", "requestId", req.ID, "err", err)
	}
}

func (s *Service) CreateBalance(ctx context.Context, in CreateBalanceInput) (Balance, error) {
	if in.AnnualLeaveBalance < 0 || in.SickLeaveBalance < 0 || in.PersonalLeaveBalance < 0 {
		return Balance{}, ErrNegativeBalance
	}
	if _, err := s.requireEmployee(ctx, in.EmployeeID); err != nil {
		return Balance{}, err
	}
	return s.store.CreateBalance(ctx, in)
}

func (s *Service) GetBalance(ctx context.Context, employeeID string) (*Balance, error) {
	return s.store.GetBalance(ctx, employeeID)
}

// DeductBalance subtracts days from the counter named by leaveType, stopping at zero.
func (s *Service) DeductBalance(ctx context.Context, employeeID, leaveType string, days int) (Balance, error) {
	if days < 0 {
		return Balance{}, ErrNegativeDays
	}
	counter, err := CounterFor(leaveType)
	if err != nil {
		return Balance{}, err
	}

	var out Balance
	err = s.store.WithTx(ctx, func(tx StoreAPI) error {
		balance, err := tx.LockBalance(ctx, employeeID)
		if err != nil {
			return err
		}
		if balance == nil {
			return ErrBalanceNotFound
		}
		out, err = tx.SetBalanceCounter(ctx, employeeID, counter, ClampDeduct(balance.value(counter), days))
		return err
	})
	return out, err
}

func (s *Service) requireEmployee(ctx context.Context, employeeID string) (*employee.Employee, error) {
	emp, err := s.employees.GetEmployeeByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, employee.ErrEmployeeNotFound
	}
	return emp, nil
}
