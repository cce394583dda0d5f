package payroll

import "hris/internal/apperr"

var (
	ErrComponentNotFound    = apperr.NotFound("payroll component not found")
	ErrSalaryLineNotFound   = apperr.NotFound("salary structure entry not found")
	ErrPayslipNotFound      = apperr.NotFound("payslip not found")
	ErrComponentNameTaken   = apperr.Conflict("payroll component name already exists")
	ErrPayslipExists        = apperr.Conflict("payslip already exists for this period")
	ErrComponentInUse       = apperr.Constraint("payroll component is used by salary structures")
	ErrInvalidComponentType = apperr.Validation("invalid component type")
	ErrNoSalaryStructure    = apperr.Validation("no salary structure configured for employee")
	ErrInvalidPeriod        = apperr.Validation("payPeriodEnd must be on or after payPeriodStart")
	ErrInvalidMonth         = apperr.Validation("month must be between 1 and 12")
	ErrNegativeAmount       = apperr.Validation("amount must not be negative")
)
