package attendance

import "hris/internal/apperr"

var (
	ErrRecordNotFound   = apperr.NotFound("attendance record not found")
	ErrCheckOutBeforeIn = apperr.Validation("checkOutTime must not be before checkInTime")
	ErrInvalidRange     = apperr.Validation("startDate must be on or before endDate")
)
