package dashboard

import (
	"context"
	"time"

	"hris/internal/domain/performance"
	"hris/internal/platform/calendar"
)

type Service struct {
	store StoreAPI
	loc   *time.Location
	now   func() time.Time
}

func NewService(store StoreAPI, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{store: store, loc: loc, now: time.Now}
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	now := s.now()
	counts, err := s.store.Counts(ctx)
	if err != nil {
		return Overview{}, err
	}
	from, to := calendar.DayBounds(now, s.loc)
	todayAttendance, err := s.store.CountCheckIns(ctx, from, to)
	if err != nil {
		return Overview{}, err
	}
	goals, err := s.store.ListOpenGoals(ctx, nil)
	if err != nil {
		return Overview{}, err
	}
	ratings, err := s.store.ListRatings(ctx, nil)
	if err != nil {
		return Overview{}, err
	}
	return BuildOverview(counts, todayAttendance, goals, ratings, calendar.DateOf(now, s.loc)), nil
}

func (s *Service) EmployeeDashboard(ctx context.Context, employeeID string) (EmployeeDashboard, error) {
	person, err := s.store.GetPerson(ctx, employeeID)
	if err != nil {
		return EmployeeDashboard{}, err
	}
	if person == nil {
		return EmployeeDashboard{}, ErrEmployeeNotFound
	}

	out := EmployeeDashboard{
		Employee: Profile{
			FullName:         person.FullName,
			Position:         valueOrEmpty(person.Position),
			Department:       valueOrEmpty(person.Department),
			EmploymentStatus: person.EmploymentStatus,
		},
	}

	balance, err := s.store.GetLeaveBalance(ctx, employeeID)
	if err != nil {
		return EmployeeDashboard{}, err
	}
	if balance != nil {
		out.LeaveBalance = LeaveBalance{
			AnnualLeaveBalance:   balance.AnnualLeaveBalance,
			SickLeaveBalance:     balance.SickLeaveBalance,
			PersonalLeaveBalance: balance.PersonalLeaveBalance,
		}
	}

	now := s.now()
	since := now.AddDate(0, 0, -recentDays)
	_, endOfToday := calendar.DayBounds(now, s.loc)
	checkIns, err := s.store.ListCheckIns(ctx, []string{employeeID}, since, endOfToday)
	if err != nil {
		return EmployeeDashboard{}, err
	}
	out.RecentAttendance = RecentAttendance(checkIns, since, s.loc)

	pending, err := s.store.PendingLeaveByEmployee(ctx, []string{employeeID})
	if err != nil {
		return EmployeeDashboard{}, err
	}
	out.PendingLeaveRequests = pending[employeeID]

	goals, err := s.store.CountGoalsByStatus(ctx, employeeID)
	if err != nil {
		return EmployeeDashboard{}, err
	}
	out.ActiveGoals = goals[performance.GoalInProgress]
	out.CompletedGoals = goals[performance.GoalCompleted]

	payslip, err := s.store.LatestPayslip(ctx, employeeID)
	if err != nil {
		return EmployeeDashboard{}, err
	}
	if payslip != nil {
		out.LastPayslip = &PayslipSummary{
			PayPeriod: PayPeriodLabel(payslip.PayPeriodStart, payslip.PayPeriodEnd),
			NetSalary: payslip.NetSalary,
		}
	}
	return out, nil
}

// ManagerDashboard covers direct reports only. An unknown id is not an error; it has no reports.
func (s *Service) ManagerDashboard(ctx context.Context, employeeID string) (ManagerDashboard, error) {
	reports, err := s.store.ListDirectReports(ctx, employeeID)
	if err != nil {
		return ManagerDashboard{}, err
	}
	if len(reports) == 0 {
		return BuildManagerDashboard(nil, nil, nil, nil, nil, time.Time{}), nil
	}
	ids := make([]string, 0, len(reports))
	for _, p := range reports {
		ids = append(ids, p.EmployeeID)
	}

	now := s.now()
	from, to := calendar.DayBounds(now, s.loc)
	checkIns, err := s.store.ListCheckIns(ctx, ids, from, to)
	if err != nil {
		return ManagerDashboard{}, err
	}
	pending, err := s.store.PendingLeaveByEmployee(ctx, ids)
	if err != nil {
		return ManagerDashboard{}, err
	}
	goals, err := s.store.ListOpenGoals(ctx, ids)
	if err != nil {
		return ManagerDashboard{}, err
	}
	ratings, err := s.store.ListRatings(ctx, ids)
	if err != nil {
		return ManagerDashboard{}, err
	}
	return BuildManagerDashboard(reports, checkIns, pending, goals, ratings, calendar.DateOf(now, s.loc)), nil
}

// AttendanceStats takes calendar days; the range is inclusive on both ends.
func (s *Service) AttendanceStats(ctx context.Context, startDate, endDate time.Time) (AttendanceStats, error) {
	if calendar.InclusiveDays(startDate, endDate) == 0 {
		return AttendanceStats{}, ErrInvalidRange
	}
	active, err := s.store.ListActivePeople(ctx)
	if err != nil {
		return AttendanceStats{}, err
	}
	from, to := calendar.RangeBounds(startDate, endDate, s.loc)
	checkIns, err := s.store.ListCheckIns(ctx, nil, from, to)
	if err != nil {
		return AttendanceStats{}, err
	}
	return BuildAttendanceStats(startDate, endDate, active, checkIns, s.loc), nil
}

func (s *Service) PayrollStats(ctx context.Context, year, month int) (PayrollStats, error) {
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return PayrollStats{}, ErrInvalidPeriod
	}
	start, end := calendar.MonthBounds(year, time.Month(month), time.UTC)
	rows, err := s.store.ListPayslipRows(ctx, start, end)
	if err != nil {
		return PayrollStats{}, err
	}
	return BuildPayrollStats(rows), nil
}

func (s *Service) HRMetrics(ctx context.Context) (HRMetrics, error) {
	people, err := s.store.ListPeople(ctx)
	if err != nil {
		return HRMetrics{}, err
	}
	return BuildHRMetrics(people, s.now(), s.loc), nil
}
