package dashboard

import "hris/internal/apperr"

var (
	ErrEmployeeNotFound = apperr.NotFound("employee not found")
	ErrInvalidRange     = apperr.Validation("startDate must not be after endDate")
	ErrInvalidPeriod    = apperr.Validation("year and month must describe a calendar month")
)
