package dashboard

import (
	"time"

	"hris/internal/domain/employee"
)

// UnassignedDepartment labels employees whose department is null or empty.
const UnassignedDepartment = "Unassigned"

// Person is the slice of an employee row the reducers need.
type Person struct {
	EmployeeID       string
	FullName         string
	Position         *string
	Department       *string
	Gender           employee.Gender
	DateOfBirth      time.Time
	StartDate        time.Time
	EmploymentStatus employee.EmploymentStatus
	StatusChangedAt  time.Time
}

type CheckIn struct {
	EmployeeID   string
	CheckInTime  time.Time
	CheckOutTime *time.Time
}

type PayslipRow struct {
	EmployeeID      string
	Department      *string
	GrossSalary     float64
	TotalAllowances float64
	TotalDeductions float64
	NetSalary       float64
}

type Counts struct {
	TotalEmployees       int
	ActiveEmployees      int
	EmployeesOnLeave     int
	TotalDepartments     int
	PendingLeaveRequests int
	OpenVacancies        int
	TotalApplicants      int
}

type Overview struct {
	TotalEmployees       int     `json:"totalEmployees"`
	ActiveEmployees      int     `json:"activeEmployees"`
	EmployeesOnLeave     int     `json:"employeesOnLeave"`
	TotalDepartments     int     `json:"totalDepartments"`
	PendingLeaveRequests int     `json:"pendingLeaveRequests"`
	TodayAttendance      int     `json:"todayAttendance"`
	OpenVacancies        int     `json:"openVacancies"`
	TotalApplicants      int     `json:"totalApplicants"`
	OverdueGoals         int     `json:"overdueGoals"`
	AverageRating        float64 `json:"averageRating"`
}

type Profile struct {
	FullName         string                    `json:"fullName"`
	Position         string                    `json:"position"`
	Department       string                    `json:"department"`
	EmploymentStatus employee.EmploymentStatus `json:"employmentStatus"`
}

type LeaveBalance struct {
	AnnualLeaveBalance   int `json:"annualLeaveBalance"`
	SickLeaveBalance     int `json:"sickLeaveBalance"`
	PersonalLeaveBalance int `json:"personalLeaveBalance"`
}

type AttendanceEntry struct {
	Date         string     `json:"date"`
	CheckInTime  time.Time  `json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime"`
}

type PayslipSummary struct {
	PayPeriod string  `json:"payPeriod"`
	NetSalary float64 `json:"netSalary"`
}

type EmployeeDashboard struct {
	Employee             Profile           `json:"employee"`
	LeaveBalance         LeaveBalance      `json:"leaveBalance"`
	RecentAttendance     []AttendanceEntry `json:"recentAttendance"`
	PendingLeaveRequests int               `json:"pendingLeaveRequests"`
	ActiveGoals          int               `json:"activeGoals"`
	CompletedGoals       int               `json:"completedGoals"`
	LastPayslip          *PayslipSummary   `json:"lastPayslip"`
}

type DirectReport struct {
	EmployeeID           string `json:"employeeId"`
	FullName             string `json:"fullName"`
	Position             string `json:"position"`
	AttendanceToday      bool   `json:"attendanceToday"`
	PendingLeaveRequests int    `json:"pendingLeaveRequests"`
}

type ManagerDashboard struct {
	TeamSize               int            `json:"teamSize"`
	TeamAttendanceToday    int            `json:"teamAttendanceToday"`
	PendingLeaveApprovals  int            `json:"pendingLeaveApprovals"`
	TeamGoalsOverdue       int            `json:"teamGoalsOverdue"`
	TeamPerformanceAverage float64        `json:"teamPerformanceAverage"`
	DirectReports          []DirectReport `json:"directReports"`
}

type DepartmentAttendance struct {
	Department     string  `json:"department"`
	AttendanceRate float64 `json:"attendanceRate"`
}

type DailyAttendance struct {
	Date         string `json:"date"`
	Present      int    `json:"present"`
	Absent       int    `json:"absent"`
	LateArrivals int    `json:"lateArrivals"`
}

type AttendanceStats struct {
	TotalWorkingDays      int                    `json:"totalWorkingDays"`
	AverageAttendanceRate float64                `json:"averageAttendanceRate"`
	DepartmentAttendance  []DepartmentAttendance `json:"departmentAttendance"`
	DailyAttendance       []DailyAttendance      `json:"dailyAttendance"`
}

type DepartmentPayroll struct {
	Department    string  `json:"department"`
	TotalGrossPay float64 `json:"totalGrossPay"`
	TotalNetPay   float64 `json:"totalNetPay"`
	EmployeeCount int     `json:"employeeCount"`
}

type PayrollStats struct {
	TotalGrossPay       float64             `json:"totalGrossPay"`
	TotalNetPay         float64             `json:"totalNetPay"`
	TotalAllowances     float64             `json:"totalAllowances"`
	TotalDeductions     float64             `json:"totalDeductions"`
	PayrollByDepartment []DepartmentPayroll `json:"payrollByDepartment"`
	AverageSalary       float64             `json:"averageSalary"`
}

type GenderDistribution struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Other  int `json:"other"`
}

type AgeGroup struct {
	AgeGroup string `json:"ageGroup"`
	Count    int    `json:"count"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type HRMetrics struct {
	EmployeeTurnoverRate   float64            `json:"employeeTurnoverRate"`
	AverageEmployeeTenure  int                `json:"averageEmployeeTenure"`
	NewHiresThisMonth      int                `json:"newHiresThisMonth"`
	TerminationsThisMonth  int                `json:"terminationsThisMonth"`
	GenderDistribution     GenderDistribution `json:"genderDistribution"`
	AgeDistribution        []AgeGroup         `json:"ageDistribution"`
	DepartmentDistribution []DepartmentCount  `json:"departmentDistribution"`
}
