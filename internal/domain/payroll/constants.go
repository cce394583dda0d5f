package payroll

type ComponentType string

const (
	ComponentAllowance ComponentType = "Allowance"
	ComponentDeduction ComponentType = "Deduction"
)

func (t ComponentType) Valid() bool {
	return t == ComponentAllowance || t == ComponentDeduction
}

var ComponentTypes = []string{string(ComponentAllowance), string(ComponentDeduction)}

const (
	spanGenerateMonthly = "payroll.generate_monthly"
	tracerName          = "hris/payroll"
)
