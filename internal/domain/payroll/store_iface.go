package payroll

import (
	"context"
	"time"
)

type StoreAPI interface {
	CreateComponent(ctx context.Context, in CreateComponentInput) (Component, error)
	ListComponents(ctx context.Context) ([]Component, error)
	GetComponent(ctx context.Context, id int64) (*Component, error)
	UpdateComponent(ctx context.Context, id int64, in UpdateComponentInput) (*Component, error)
	DeleteComponent(ctx context.Context, id int64) (bool, error)

	CreateSalaryLine(ctx context.Context, in CreateSalaryLineInput) (SalaryLine, error)
	ListSalaryLines(ctx context.Context, employeeID string) ([]SalaryLine, error)
	UpdateSalaryLineAmount(ctx context.Context, id int64, amount float64) (*SalaryLine, error)
	DeleteSalaryLine(ctx context.Context, id int64) (bool, error)
	ListStructureLines(ctx context.Context, employeeID string) ([]StructureLine, error)

	CreatePayslip(ctx context.Context, in CreatePayslipInput) (Payslip, error)
	// InsertPayslipIfAbsent returns the stored row and whether this call created it.
	InsertPayslipIfAbsent(ctx context.Context, in CreatePayslipInput) (Payslip, bool, error)
	FindPayslip(ctx context.Context, employeeID string, start, end time.Time) (*Payslip, error)
	GetPayslip(ctx context.Context, id int64) (*Payslip, error)
	ListPayslips(ctx context.Context) ([]Payslip, error)
	ListPayslipsByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)

	ListActiveEmployeeIDs(ctx context.Context) ([]string, error)
}
