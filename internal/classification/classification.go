// Package classification decides what a caller sees when an operation fails. Every
// failure, whatever layer it came from, is turned into a status and one body shape.
package classification

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/CameronXie/store-api/internal/domain"
	"github.com/CameronXie/store-api/internal/repository"
	"github.com/CameronXie/store-api/internal/validation"
)

const (
	CodeValidationFailed      = "validation_failed"
	CodeOrderReferenceInvalid = "order_reference_invalid"
	CodeDataAccessError       = "data_access_error"
	CodeUnexpectedError       = "unexpected_error"

	ValidationFailedMessage      = "One or more fields are invalid"
	OrderReferenceInvalidMessage = "Request body contains invalid or missing customer/product id's"

	defaultStatusReason = "error"
)

var errNoFailure = errors.New("no failure reported")

// Detail carries the message of one violated field.
type Detail struct {
	Message string `json:"message"`
}

// Body is the only error body shape returned to clients.
type Body struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []Detail `json:"details,omitempty"`
}

// Result is a classified failure.
type Result struct {
	Status int
	Body   Body
}

// IsServerError reports whether the failure is attributed to the server.
func (r Result) IsServerError() bool {
	return r.Status >= http.StatusInternalServerError
}

// StatusError is a failure a lower layer has already classified. It is passed through
// unchanged.
type StatusError struct {
	Status int
	Reason string
}

// NewStatusError creates a StatusError with the given status and reason.
func NewStatusError(status int, reason string) *StatusError {
	return &StatusError{Status: status, Reason: reason}
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Reason == "" {
		return StatusText(e.Status)
	}

	return fmt.Sprintf("%s %q", StatusText(e.Status), e.Reason)
}

// StatusText renders a status as its code and upper-cased reason phrase, e.g. "404 NOT_FOUND".
func StatusText(status int) string {
	phrase := strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	phrase = strings.ReplaceAll(phrase, "-", "_")

	return fmt.Sprintf("%d %s", status, phrase)
}

// Classify maps err, raised while operating on entity, to a response. Rules apply in order:
// field validation, pre-classified statuses, the order reference override, persistence
// failures, then everything else.
func Classify(err error, entity domain.Kind) Result {
	if err == nil {
		err = errNoFailure
	}

	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		details := make([]Detail, 0, len(validationErrs))
		for _, message := range validationErrs.Messages() {
			details = append(details, Detail{Message: message})
		}

		return Result{
			Status: http.StatusBadRequest,
			Body: Body{
				Error:   CodeValidationFailed,
				Message: ValidationFailedMessage,
				Details: details,
			},
		}
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		reason := statusErr.Reason
		if reason == "" {
			reason = defaultStatusReason
		}

		return Result{
			Status: statusErr.Status,
			Body:   Body{Error: StatusText(statusErr.Status), Message: reason},
		}
	}

	var integrityErr *repository.IntegrityError
	isIntegrity := errors.As(err, &integrityErr)

	// Bad ids in an order body are the caller's fault. Customer and product writes keep
	// reporting the same failure as a server error.
	if isIntegrity && entity == domain.KindOrder {
		return Result{
			Status: http.StatusBadRequest,
			Body:   Body{Error: CodeOrderReferenceInvalid, Message: OrderReferenceInvalidMessage},
		}
	}

	if isIntegrity {
		return dataAccess(integrityErr)
	}

	var dataAccessErr *repository.DataAccessError
	if errors.As(err, &dataAccessErr) {
		return dataAccess(dataAccessErr)
	}

	return Result{
		Status: http.StatusInternalServerError,
		Body:   Body{Error: CodeUnexpectedError, Message: err.Error()},
	}
}

func dataAccess(err error) Result {
	return Result{
		Status: http.StatusInternalServerError,
		Body:   Body{Error: CodeDataAccessError, Message: err.Error()},
	}
}
