package api

import (
	"errors"
	"net/http"

	"jobradar/internal/pkg/errs"
)

// statusForError maps usecase sentinels onto HTTP statuses. Anything not
// recognized is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrPostingNotFound),
		errors.Is(err, errs.ErrResumeNotFound),
		errors.Is(err, errs.ErrApplicationNotFound),
		errors.Is(err, errs.ErrSavedJobNotFound),
		errors.Is(err, errs.ErrInterviewNotFound),
		errors.Is(err, errs.ErrSubscriptionNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrJobAlreadySaved),
		errors.Is(err, errs.ErrAlreadyApplied),
		errors.Is(err, errs.ErrAlreadySubscribed),
		errors.Is(err, errs.ErrInvalidStatus),
		errors.Is(err, errs.ErrEmptyResume),
		errors.Is(err, errs.ErrDomainValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
