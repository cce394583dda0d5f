package employee

import "hris/internal/apperr"

var (
	ErrEmployeeNotFound     = apperr.NotFound("employee not found")
	ErrManagerNotFound      = apperr.NotFound("manager not found")
	ErrDepartmentNotFound   = apperr.NotFound("department not found")
	ErrDocumentNotFound     = apperr.NotFound("employee document not found")
	ErrEmployeeIDTaken      = apperr.Conflict("employee id already exists")
	ErrEmailTaken           = apperr.Conflict("email already exists")
	ErrDepartmentNameTaken  = apperr.Conflict("department name already exists")
	ErrDepartmentInUse      = apperr.Constraint("department is referenced by job vacancies")
	ErrSelfManaged          = apperr.Validation("employee cannot be their own manager")
	ErrEmployeeIDTooLong    = apperr.Validation("employee id must be at most 50 characters")
	ErrInvalidGender        = apperr.Validation("invalid gender")
	ErrInvalidMaritalStatus = apperr.Validation("invalid marital status")
	ErrInvalidStatus        = apperr.Validation("invalid employment status")
	ErrInvalidRole          = apperr.Validation("invalid role")
)
