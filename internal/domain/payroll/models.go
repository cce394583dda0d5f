package payroll

import (
	"time"

	"hris/internal/platform/optional"
)

type Component struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Type      ComponentType `json:"type"`
	Amount    float64       `json:"amount"`
	CreatedAt time.Time     `json:"createdAt"`
}

type CreateComponentInput struct {
	Name   string
	Type   ComponentType
	Amount float64
}

type UpdateComponentInput struct {
	Name   optional.Value[string]
	Type   optional.Value[ComponentType]
	Amount optional.Value[float64]
}

// SalaryLine is one row of an employee's salary structure.
type SalaryLine struct {
	ID          int64     `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	ComponentID int64     `json:"componentId"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateSalaryLineInput struct {
	EmployeeID  string
	ComponentID int64
	Amount      float64
}

// StructureLine is a salary line joined to its component's type.
type StructureLine struct {
	ComponentName string
	Type          ComponentType
	Amount        float64
}

type Payslip struct {
	ID              int64     `json:"id"`
	EmployeeID      string    `json:"employeeId"`
	PayPeriodStart  time.Time `json:"payPeriodStart"`
	PayPeriodEnd    time.Time `json:"payPeriodEnd"`
	GrossSalary     float64   `json:"grossSalary"`
	TotalAllowances float64   `json:"totalAllowances"`
	TotalDeductions float64   `json:"totalDeductions"`
	NetSalary       float64   `json:"netSalary"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CreatePayslipInput struct {
	EmployeeID      string
	PayPeriodStart  time.Time
	PayPeriodEnd    time.Time
	GrossSalary     float64
	TotalAllowances float64
	TotalDeductions float64
	NetSalary       float64
}

type Totals struct {
	GrossSalary     float64
	TotalAllowances float64
	TotalDeductions float64
	NetSalary       float64
}

type MonthlyFailure struct {
	EmployeeID string `json:"employeeId"`
	Error      string `json:"error"`
}

type MonthlyResult struct {
	Year      int              `json:"year"`
	Month     int              `json:"month"`
	Generated int              `json:"generated"`
	Existing  int              `json:"existing"`
	Failed    int              `json:"failed"`
	Payslips  []Payslip        `json:"payslips"`
	Failures  []MonthlyFailure `json:"failures"`
}
