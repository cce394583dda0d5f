package leave

import (
	"strings"
	"time"

	"hris/internal/platform/calendar"
)

// CounterFor maps a leave type, in its full or short form, to the balance it draws from.
func CounterFor(leaveType string) (Counter, error) {
	switch strings.ToLower(strings.TrimSpace(leaveType)) {
	case "annual leave", "annual":
		return CounterAnnual, nil
	case "sick leave", "sick":
		return CounterSick, nil
	case "personal leave", "personal":
		return CounterPersonal, nil
	}
	return "", ErrInvalidLeaveType
}

// ClampDeduct never lets a balance go below zero.
func ClampDeduct(balance, days int) int {
	if days >= balance {
		return 0
	}
	return balance - days
}

// CalculateDays returns the inclusive day count between start and end.
func CalculateDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidDateRange
	}
	return calendar.InclusiveDays(start, end), nil
}

// CanTransition allows Pending to move to Approved or Rejected and nothing else.
func CanTransition(from, to Status) bool {
	return from == StatusPending && (to == StatusApproved || to == StatusRejected)
}

func (b Balance) value(c Counter) int {
	switch c {
	case CounterAnnual:
		return b.AnnualLeaveBalance
	case CounterSick:
		return b.SickLeaveBalance
	case CounterPersonal:
		return b.PersonalLeaveBalance
	}
	return 0
}

func (b *Balance) set(c Counter, v int) {
	switch c {
	case CounterAnnual:
		b.AnnualLeaveBalance = v
	case CounterSick:
		b.SickLeaveBalance = v
	case CounterPersonal:
		b.PersonalLeaveBalance = v
	}
}
