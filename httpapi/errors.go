package httpapi

import (
	"errors"
	"net/http"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
)

// Error codes of the API surface.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeContention       = "CONTENTION"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeBadRequest       = "BAD_REQUEST"
	CodeInternal         = "INTERNAL"
)

// jsonDomainError maps the domain error taxonomy onto HTTP status codes.
//
//	ValidationErrors                    -> 422 with field details
//	NotFoundError                       -> 404
//	already-exists / loan rule breaches -> 409
//	retry-exhausted concurrency errors  -> 409
//	event store query/append failures   -> 503
//	everything else                     -> 500
func jsonDomainError(w http.ResponseWriter, err error) {
	var validationErrs core.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]ErrorDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, ErrorDetail{Field: fieldErr.Field, Message: fieldErr.Message})
		}

		jsonError(w, http.StatusUnprocessableEntity, CodeValidationFailed, "validation failed", details)

		return
	}

	var notFoundErr core.NotFoundError
	if errors.As(err, &notFoundErr) {
		jsonError(w, http.StatusNotFound, CodeNotFound, notFoundErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, core.ErrAlreadyExists),
		errors.Is(err, core.ErrBookAlreadyBorrowed),
		errors.Is(err, core.ErrLoanAlreadyReturned),
		errors.Is(err, core.ErrBookOnLoan),
		errors.Is(err, core.ErrStatusConflict):

		jsonError(w, http.StatusConflict, CodeConflict, err.Error(), nil)

	case errors.Is(err, eventstore.ErrConcurrencyConflict):
		jsonError(w, http.StatusConflict, CodeContention, "too much contention, please retry", nil)

	case errors.Is(err, eventstore.ErrQueryingEventsFailed),
		errors.Is(err, eventstore.ErrAppendingEventFailed):

		jsonError(w, http.StatusServiceUnavailable, CodeStoreUnavailable, "event store unavailable, please retry", nil)

	default:
		jsonError(w, http.StatusInternalServerError, CodeInternal, "internal server error", nil)
	}
}

func jsonBadRequest(w http.ResponseWriter, message string) {
	jsonError(w, http.StatusBadRequest, CodeBadRequest, message, nil)
}
