package performance

import "hris/internal/apperr"

var (
	ErrGoalNotFound      = apperr.NotFound("performance goal not found")
	ErrReviewNotFound    = apperr.NotFound("performance review not found")
	ErrReviewerNotFound  = apperr.NotFound("reviewer not found")
	ErrInvalidGoalStatus = apperr.Validation("invalid goal status")
	ErrRatingOutOfRange  = apperr.Validation("overallRating must be between 1 and 5")
)
