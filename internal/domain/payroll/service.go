package payroll

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hris/internal/domain/employee"
	"hris/internal/platform/calendar"
	"hris/internal/platform/jobs"
)

// Employees is satisfied by employee.Service.
type Employees interface {
	GetEmployeeByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error)
}

// JobRunner is satisfied by jobs.Service.
type JobRunner interface {
	RunNow(ctx context.Context, jobType string, run jobs.RunFunc) (any, error)
}

type Service struct {
	store     StoreAPI
	employees Employees
	jobs      JobRunner
	tracer    trace.Tracer
}

func NewService(store StoreAPI, employees Employees, runner JobRunner) *Service {
	return &Service{store: store, employees: employees, jobs: runner, tracer: otel.Tracer(tracerName)}
}

func (s *Service) CreateComponent(ctx context.Context, in CreateComponentInput) (Component, error) {
	if !in.Type.Valid() {
		return Component{}, ErrInvalidComponentType
	}
	if in.Amount < 0 {
		return Component{}, ErrNegativeAmount
	}
	in.Amount = Round2(in.Amount)
	return s.store.CreateComponent(ctx, in)
}

func (s *Service) ListComponents(ctx context.Context) ([]Component, error) {
	return s.store.ListComponents(ctx)
}

func (s *Service) GetComponent(ctx context.Context, id int64) (*Component, error) {
	return s.store.GetComponent(ctx, id)
}

func (s *Service) UpdateComponent(ctx context.Context, id int64, in UpdateComponentInput) (Component, error) {
	if in.Type.Set && !in.Type.Value.Valid() {
		return Component{}, ErrInvalidComponentType
	}
	if in.Amount.Set {
		if in.Amount.Value < 0 {
			return Component{}, ErrNegativeAmount
		}
		in.Amount.Value = Round2(in.Amount.Value)
	}
	updated, err := s.store.UpdateComponent(ctx, id, in)
	if err != nil {
		return Component{}, err
	}
	if updated == nil {
		return Component{}, ErrComponentNotFound
	}
	return *updated, nil
}

func (s *Service) DeleteComponent(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteComponent(ctx, id)
}

func (s *Service) CreateSalaryLine(ctx context.Context, in CreateSalaryLineInput) (SalaryLine, error) {
	if in.Amount < 0 {
		return SalaryLine{}, ErrNegativeAmount
	}
	if err := s.requireEmployee(ctx, in.EmployeeID); err != nil {
		return SalaryLine{}, err
	}
	component, err := s.store.GetComponent(ctx, in.ComponentID)
	if err != nil {
		return SalaryLine{}, err
	}
	if component == nil {
		return SalaryLine{}, ErrComponentNotFound
	}
	in.Amount = Round2(in.Amount)
	return s.store.CreateSalaryLine(ctx, in)
}

func (s *Service) ListSalaryLines(ctx context.Context, employeeID string) ([]SalaryLine, error) {
	return s.store.ListSalaryLines(ctx, employeeID)
}

func (s *Service) UpdateSalaryLine(ctx context.Context, id int64, amount float64) (SalaryLine, error) {
	if amount < 0 {
		return SalaryLine{}, ErrNegativeAmount
	}
	updated, err := s.store.UpdateSalaryLineAmount(ctx, id, Round2(amount))
	if err != nil {
		return SalaryLine{}, err
	}
	if updated == nil {
		return SalaryLine{}, ErrSalaryLineNotFound
	}
	return *updated, nil
}

func (s *Service) DeleteSalaryLine(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteSalaryLine(ctx, id)
}

// CreatePayslip stores a manually prepared payslip as given.
func (s *Service) CreatePayslip(ctx context.Context, in CreatePayslipInput) (Payslip, error) {
	if in.PayPeriodEnd.Before(in.PayPeriodStart) {
		return Payslip{}, ErrInvalidPeriod
	}
	if err := s.requireEmployee(ctx, in.EmployeeID); err != nil {
		return Payslip{}, err
	}
	in.GrossSalary = Round2(in.GrossSalary)
	in.TotalAllowances = Round2(in.TotalAllowances)
	in.TotalDeductions = Round2(in.TotalDeductions)
	in.NetSalary = Round2(in.NetSalary)
	return s.store.CreatePayslip(ctx, in)
}

func (s *Service) ListPayslips(ctx context.Context) ([]Payslip, error) {
	return s.store.ListPayslips(ctx)
}

func (s *Service) ListPayslipsByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	return s.store.ListPayslipsByEmployee(ctx, employeeID)
}

func (s *Service) GetPayslip(ctx context.Context, id int64) (*Payslip, error) {
	return s.store.GetPayslip(ctx, id)
}

// GeneratePayslip returns the stored payslip for the period when there is one, and otherwise
// computes it from the employee's salary structure.
func (s *Service) GeneratePayslip(ctx context.Context, employeeID string, start, end time.Time) (Payslip, error) {
	payslip, _, err := s.generate(ctx, employeeID, start, end)
	return payslip, err
}

func (s *Service) generate(ctx context.Context, employeeID string, start, end time.Time) (Payslip, bool, error) {
	if end.Before(start) {
		return Payslip{}, false, ErrInvalidPeriod
	}
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return Payslip{}, false, err
	}
	existing, err := s.store.FindPayslip(ctx, employeeID, start, end)
	if err != nil {
		return Payslip{}, false, err
	}
	if existing != nil {
		return *existing, false, nil
	}

	lines, err := s.store.ListStructureLines(ctx, employeeID)
	if err != nil {
		return Payslip{}, false, err
	}
	if len(lines) == 0 {
		return Payslip{}, false, ErrNoSalaryStructure
	}
	totals := ComputeTotals(lines)
	return s.store.InsertPayslipIfAbsent(ctx, CreatePayslipInput{
		EmployeeID:      employeeID,
		PayPeriodStart:  start,
		PayPeriodEnd:    end,
		GrossSalary:     totals.GrossSalary,
		TotalAllowances: totals.TotalAllowances,
		TotalDeductions: totals.TotalDeductions,
		NetSalary:       totals.NetSalary,
	})
}

// GenerateMonthly runs the monthly batch as a recorded job.
func (s *Service) GenerateMonthly(ctx context.Context, year, month int) (MonthlyResult, error) {
	if month < 1 || month > 12 {
		return MonthlyResult{}, ErrInvalidMonth
	}
	run := s.MonthlyJob(year, time.Month(month))
	if s.jobs == nil {
		out, err := run(ctx)
		if err != nil {
			return MonthlyResult{}, err
		}
		return out.(MonthlyResult), nil
	}
	out, err := s.jobs.RunNow(ctx, jobs.JobPayrollMonthly, run)
	if err != nil {
		return MonthlyResult{}, err
	}
	return out.(MonthlyResult), nil
}

// MonthlyJob builds the batch for the scheduler and for GenerateMonthly.
func (s *Service) MonthlyJob(year int, month time.Month) jobs.RunFunc {
	return func(ctx context.Context) (any, error) {
		return s.generateMonthly(ctx, year, month)
	}
}

func (s *Service) generateMonthly(ctx context.Context, year int, month time.Month) (MonthlyResult, error) {
	ctx, span := s.tracer.Start(ctx, spanGenerateMonthly, trace.WithAttributes(
		attribute.Int("payroll.year", year),
		attribute.Int("payroll.month", int(month)),
	))
	defer span.End()

	result := MonthlyResult{Year: year, Month: int(month), Payslips: []Payslip{}, Failures: []MonthlyFailure{}}
	ids, err := s.store.ListActiveEmployeeIDs(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing active employees")
		return MonthlyResult{}, err
	}

	start, end := calendar.MonthBounds(year, month, time.UTC)
	for _, id := range ids {
		payslip, created, err := s.generate(ctx, id, start, end)
		if err != nil {
			slog.Warn("monthly payslip generation failed", "employeeId", id, "year", year, "month", int(month), "err", err)
			result.Failed++
			result.Failures = append(result.Failures, MonthlyFailure{EmployeeID: id, Error: err.Error()})
			continue
		}
		if created {
			result.Generated++
		} else {
			result.Existing++
		}
		result.Payslips = append(result.Payslips, payslip)
	}

	span.SetAttributes(
		attribute.Int("payroll.generated", result.Generated),
		attribute.Int("payroll.existing", result.Existing),
		attribute.Int("payroll.failed", result.Failed),
	)
	return result, nil
}

func (s *Service) requireEmployee(ctx context.Context, employeeID string) error {
	emp, err := s.employees.GetEmployeeByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}
	if emp == nil {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
