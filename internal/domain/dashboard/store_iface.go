package dashboard

import (
	"context"
	"time"

	"hris/internal/domain/leave"
	"hris/internal/domain/payroll"
	"hris/internal/domain/performance"
)

// StoreAPI loads the rows the dashboard reducers work on. A nil employeeIDs slice means every employee.
type StoreAPI interface {
	Counts(ctx context.Context) (Counts, error)
	CountCheckIns(ctx context.Context, from, to time.Time) (int, error)
	ListCheckIns(ctx context.Context, employeeIDs []string, from, to time.Time) ([]CheckIn, error)
	ListOpenGoals(ctx context.Context, employeeIDs []string) ([]performance.Goal, error)
	ListRatings(ctx context.Context, employeeIDs []string) ([]int, error)
	CountGoalsByStatus(ctx context.Context, employeeID string) (map[performance.GoalStatus]int, error)
	PendingLeaveByEmployee(ctx context.Context, employeeIDs []string) (map[string]int, error)

	GetPerson(ctx context.Context, employeeID string) (*Person, error)
	ListPeople(ctx context.Context) ([]Person, error)
	ListActivePeople(ctx context.Context) ([]Person, error)
	ListDirectReports(ctx context.Context, managerID string) ([]Person, error)

	GetLeaveBalance(ctx context.Context, employeeID string) (*leave.Balance, error)
	LatestPayslip(ctx context.Context, employeeID string) (*payroll.Payslip, error)
	ListPayslipRows(ctx context.Context, start, end time.Time) ([]PayslipRow, error)
}
