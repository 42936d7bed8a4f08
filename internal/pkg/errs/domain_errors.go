package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Posting errors
	ErrPostingNotFound = errors.New("job posting not found")

	// Resume errors
	ErrResumeNotFound = errors.New("resume not found")
	ErrEmptyResume    = errors.New("resume contains no extractable text")

	// Saved job / application errors
	ErrJobAlreadySaved = errors.New("job already saved")
	ErrAlreadyApplied  = errors.New("already applied to this job")
	ErrApplicationNotFound = errors.New("application not found")
	ErrSavedJobNotFound    = errors.New("saved job not found")
	ErrInterviewNotFound   = errors.New("interview not found")
	ErrInvalidStatus       = errors.New("invalid application status")

	// Subscription errors
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadySubscribed    = errors.New("already subscribed to this notification type")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
