package leave

import "hris/internal/apperr"

var (
	ErrRequestNotFound   = apperr.NotFound("leave request not found")
	ErrBalanceNotFound   = apperr.NotFound("leave balance not found")
	ErrBalanceExists     = apperr.Conflict("leave balance already exists for employee")
	ErrInvalidLeaveType  = apperr.Validation("invalid leave type")
	ErrInvalidStatus     = apperr.Validation("invalid leave status")
	ErrInvalidTransition = apperr.Validation("only pending leave requests can be approved or rejected")
	ErrInvalidDateRange  = apperr.Validation("endDate must be on or after startDate")
	ErrNegativeDays      = apperr.Validation("days must not be negative")
	ErrNegativeBalance   = apperr.Validation("leave balances must not be negative")
)
