package recruitment

import "hris/internal/apperr"

var (
	ErrVacancyNotFound        = apperr.NotFound("job vacancy not found")
	ErrApplicantNotFound      = apperr.NotFound("applicant not found")
	ErrDepartmentNotFound     = apperr.NotFound("department not found")
	ErrVacancyHasApplicants   = apperr.Constraint("job vacancy has applicants and cannot be deleted")
	ErrInvalidVacancyStatus   = apperr.Validation("invalid job vacancy status")
	ErrInvalidApplicantStatus = apperr.Validation("invalid applicant status")
)
