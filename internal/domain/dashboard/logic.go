package dashboard

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hris/internal/domain/employee"
	"hris/internal/domain/performance"
	"hris/internal/platform/calendar"
)

const (
	lateHour       = 9
	recentDays     = 7
	recentLimit    = 7
	daysPerAgeYear = 365
)

var ageBuckets = []struct {
	label    string
	min, max int
}{
	{"18-25", 18, 25},
	{"26-35", 26, 35},
	{"36-45", 36, 45},
	{"46-55", 46, 55},
	{"56+", 56, math.MaxInt},
}

// rate is part / whole as a percentage to two decimals, 0 when whole is 0.
func rate(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(whole))).
		Round(2).InexactFloat64()
}

func DepartmentLabel(department *string) string {
	if department == nil || strings.TrimSpace(*department) == "" {
		return UnassignedDepartment
	}
	return *department
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func CountOverdue(goals []performance.Goal, today time.Time) int {
	n := 0
	for _, g := range goals {
		if performance.IsOverdue(g, today) {
			n++
		}
	}
	return n
}

func BuildOverview(counts Counts, todayAttendance int, goals []performance.Goal, ratings []int, today time.Time) Overview {
	return Overview{
		TotalEmployees:       counts.TotalEmployees,
		ActiveEmployees:      counts.ActiveEmployees,
		EmployeesOnLeave:     counts.EmployeesOnLeave,
		TotalDepartments:     counts.TotalDepartments,
		PendingLeaveRequests: counts.PendingLeaveRequests,
		TodayAttendance:      todayAttendance,
		OpenVacancies:        counts.OpenVacancies,
		TotalApplicants:      counts.TotalApplicants,
		OverdueGoals:         CountOverdue(goals, today),
		AverageRating:        performance.MeanRating(ratings),
	}
}

// RecentAttendance keeps check-ins at or after since, newest first, capped at seven entries.
func RecentAttendance(records []CheckIn, since time.Time, loc *time.Location) []AttendanceEntry {
	sorted := make([]CheckIn, 0, len(records))
	for _, r := range records {
		if !r.CheckInTime.Before(since) {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CheckInTime.After(sorted[j].CheckInTime)
	})
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	out := make([]AttendanceEntry, 0, len(sorted))
	for _, r := range sorted {
		out = append(out, AttendanceEntry{
			Date:         r.CheckInTime.In(loc).Format(calendar.DateLayout),
			CheckInTime:  r.CheckInTime,
			CheckOutTime: r.CheckOutTime,
		})
	}
	return out
}

// PayPeriodLabel renders "YYYY-MM-DD - YYYY-MM-DD".
func PayPeriodLabel(start, end time.Time) string {
	return start.Format(calendar.DateLayout) + " - " + end.Format(calendar.DateLayout)
}

// BuildManagerDashboard aggregates over direct reports only. checkInsToday, goals and ratings
// are expected to be scoped to those reports already.
func BuildManagerDashboard(reports []Person, checkInsToday []CheckIn, pending map[string]int, goals []performance.Goal, ratings []int, today time.Time) ManagerDashboard {
	out := ManagerDashboard{
		TeamSize:      len(reports),
		DirectReports: make([]DirectReport, 0, len(reports)),
	}
	if len(reports) == 0 {
		return out
	}
	present := make(map[string]bool, len(checkInsToday))
	for _, c := range checkInsToday {
		present[c.EmployeeID] = true
	}
	for _, p := range reports {
		out.PendingLeaveApprovals += pending[p.EmployeeID]
		out.DirectReports = append(out.DirectReports, DirectReport{
			EmployeeID:           p.EmployeeID,
			FullName:             p.FullName,
			Position:             valueOrEmpty(p.Position),
			AttendanceToday:      present[p.EmployeeID],
			PendingLeaveRequests: pending[p.EmployeeID],
		})
	}
	out.TeamAttendanceToday = len(checkInsToday)
	out.TeamGoalsOverdue = CountOverdue(goals, today)
	out.TeamPerformanceAverage = performance.MeanRating(ratings)
	return out
}

// BuildAttendanceStats reduces check-ins in [startDate, endDate] against the active headcount.
// startDate and endDate are calendar days; check-ins are bucketed by their local day.
func BuildAttendanceStats(startDate, endDate time.Time, active []Person, checkIns []CheckIn, loc *time.Location) AttendanceStats {
	workingDays := calendar.WorkingDays(startDate, endDate)
	stats := AttendanceStats{
		TotalWorkingDays:      workingDays,
		AverageAttendanceRate: rate(len(checkIns), len(active)*workingDays),
		DepartmentAttendance:  []DepartmentAttendance{},
		DailyAttendance:       []DailyAttendance{},
	}

	deptOf := make(map[string]string, len(active))
	headcount := map[string]int{}
	for _, p := range active {
		label := DepartmentLabel(p.Department)
		deptOf[p.EmployeeID] = label
		headcount[label]++
	}
	deptRows := map[string]int{}
	present := map[string]int{}
	late := map[string]int{}
	for _, c := range checkIns {
		if label, ok := deptOf[c.EmployeeID]; ok {
			deptRows[label]++
		}
		local := c.CheckInTime.In(loc)
		day := local.Format(calendar.DateLayout)
		present[day]++
		if local.Hour() >= lateHour {
			late[day]++
		}
	}

	labels := make([]string, 0, len(headcount))
	for label := range headcount {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		stats.DepartmentAttendance = append(stats.DepartmentAttendance, DepartmentAttendance{
			Department:     label,
			AttendanceRate: rate(deptRows[label], headcount[label]*workingDays),
		})
	}

	for _, day := range calendar.Days(startDate, endDate) {
		key := day.Format(calendar.DateLayout)
		stats.DailyAttendance = append(stats.DailyAttendance, DailyAttendance{
			Date:         key,
			Present:      present[key],
			Absent:       max(len(active)-present[key], 0),
			LateArrivals: late[key],
		})
	}
	return stats
}

func BuildPayrollStats(rows []PayslipRow) PayrollStats {
	var gross, net, allowances, deductions decimal.Decimal
	type deptTotals struct {
		gross, net decimal.Decimal
		employees  map[string]struct{}
	}
	depts := map[string]*deptTotals{}
	for _, row := range rows {
		g := decimal.NewFromFloat(row.GrossSalary)
		n := decimal.NewFromFloat(row.NetSalary)
		gross = gross.Add(g)
		net = net.Add(n)
		allowances = allowances.Add(decimal.NewFromFloat(row.TotalAllowances))
		deductions = deductions.Add(decimal.NewFromFloat(row.TotalDeductions))

		label := DepartmentLabel(row.Department)
		d, ok := depts[label]
		if !ok {
			d = &deptTotals{employees: map[string]struct{}{}}
			depts[label] = d
		}
		d.gross = d.gross.Add(g)
		d.net = d.net.Add(n)
		d.employees[row.EmployeeID] = struct{}{}
	}

	stats := PayrollStats{
		TotalGrossPay:       gross.Round(2).InexactFloat64(),
		TotalNetPay:         net.Round(2).InexactFloat64(),
		TotalAllowances:     allowances.Round(2).InexactFloat64(),
		TotalDeductions:     deductions.Round(2).InexactFloat64(),
		PayrollByDepartment: make([]DepartmentPayroll, 0, len(depts)),
	}
	if len(rows) > 0 {
		stats.AverageSalary = net.Div(decimal.NewFromInt(int64(len(rows)))).Round(2).InexactFloat64()
	}

	labels := make([]string, 0, len(depts))
	for label := range depts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		d := depts[label]
		stats.PayrollByDepartment = append(stats.PayrollByDepartment, DepartmentPayroll{
			Department:    label,
			TotalGrossPay: d.gross.Round(2).InexactFloat64(),
			TotalNetPay:   d.net.Round(2).InexactFloat64(),
			EmployeeCount: len(d.employees),
		})
	}
	return stats
}

func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

// BuildHRMetrics evaluates headcount metrics as of now in loc.
// DATE fields on Person are UTC midnight; StatusChangedAt is an instant.
func BuildHRMetrics(people []Person, now time.Time, loc *time.Location) HRMetrics {
	today := calendar.DateOf(now, loc)
	monthStartDate := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthStart := calendar.StartOfMonth(now, loc)
	yearAgo := today.AddDate(-1, 0, 0)

	out := HRMetrics{
		AgeDistribution:        make([]AgeGroup, len(ageBuckets)),
		DepartmentDistribution: []DepartmentCount{},
	}
	for i, b := range ageBuckets {
		out.AgeDistribution[i] = AgeGroup{AgeGroup: b.label}
	}

	var tenureDays, activeCount, tenuredHeadcount int
	departments := map[string]int{}
	for _, p := range people {
		if !p.StartDate.Before(monthStartDate) {
			out.NewHiresThisMonth++
		}
		if !p.StartDate.After(yearAgo) {
			tenuredHeadcount++
		}
		if p.EmploymentStatus == employee.StatusTerminated && !p.StatusChangedAt.Before(monthStart) {
			out.TerminationsThisMonth++
		}
		if p.EmploymentStatus == employee.StatusActive {
			tenureDays += daysBetween(p.StartDate, today)
			activeCount++
		}

		switch p.Gender {
		case employee.GenderMale:
			out.GenderDistribution.Male++
		case employee.GenderFemale:
			out.GenderDistribution.Female++
		case employee.GenderOther:
			out.GenderDistribution.Other++
		}

		age := daysBetween(p.DateOfBirth, today) / daysPerAgeYear
		for i, b := range ageBuckets {
			if age >= b.min && age <= b.max {
				out.AgeDistribution[i].Count++
				break
			}
		}

		departments[DepartmentLabel(p.Department)]++
	}

	out.EmployeeTurnoverRate = rate(out.TerminationsThisMonth, tenuredHeadcount)
	if activeCount > 0 {
		out.AverageEmployeeTenure = int(math.Floor(float64(tenureDays) / float64(activeCount)))
	}

	labels := make([]string, 0, len(departments))
	for label := range departments {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		out.DepartmentDistribution = append(out.DepartmentDistribution, DepartmentCount{Department: label, Count: departments[label]})
	}
	return out
}
