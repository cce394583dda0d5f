package leave

type Type string

const (
	TypeAnnual    Type = "Annual Leave"
	TypeSick      Type = "Sick Leave"
	TypePersonal  Type = "Personal Leave"
	TypeMaternity Type = "Maternity Leave"
	TypePaternity Type = "Paternity Leave"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAnnual, TypeSick, TypePersonal, TypeMaternity, TypePaternity:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

var (
	Types    = []string{string(TypeAnnual), string(TypeSick), string(TypePersonal), string(TypeMaternity), string(TypePaternity)}
	Statuses = []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}
)

// Counter names one of the three tracked balances.
type Counter string

const (
	CounterAnnual   Counter = "annual"
	CounterSick     Counter = "sick"
	CounterPersonal Counter = "personal"
)

func (c Counter) column() string {
	switch c {
	case CounterAnnual:
		return "annual_leave_balance"
	case CounterSick:
		return "sick_leave_balance"
	case CounterPersonal:
		return "personal_leave_balance"
	}
	return ""
}
