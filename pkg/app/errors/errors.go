// Package errors defines the service error type shared by all HTTP
// services in this middleware, with categories that map onto HTTP
// status codes and onto the submission failure taxonomy of the ledger
// gateway.
package errors

import (
	"errors"
	"net/http"
)

// Category classifies a service error.
type Category int

const (
	// CategoryNoError marks the absence of an error.
	CategoryNoError Category = iota
	// CategoryDataError marks invalid client data: malformed payloads,
	// failed form validation, or a transaction the ledger rejected.
	CategoryDataError
	// CategoryResourceNotFound marks access to a resource that does not
	// exist, such as an unknown vault account.
	CategoryResourceNotFound
	// CategoryDataConflict marks requests conflicting with current state.
	CategoryDataConflict
	// CategoryDependencyFailure marks failures of the ledger node or
	// another external dependency.
	CategoryDependencyFailure
	// CategoryGeneralError marks unexpected internal failures.
	CategoryGeneralError
	// CategoryConnectionTimeout marks a timed-out dependency call.
	CategoryConnectionTimeout
)

func (c Category) String() string {
	switch c {
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryDataConflict:
		return "CategoryDataConflict"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	case CategoryConnectionTimeout:
		return "CategoryConnectionTimeout"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError carries a category, a user-facing message and the
// underlying cause. The message is returned to the client; the cause is
// for logs only.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error implements the error interface.
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error.
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is checks that the provided error is a ServiceError of the desired category.
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// GeneralError wraps an unexpected internal failure. The client sees
// only "Internal Server Error".
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "Internal Server Error",
		Err:      err,
	}
}

// BadRequestError wraps invalid client data with a user-facing message.
func BadRequestError(err error, message string) error {
	if err == nil {
		err = errors.New("bad request: " + message)
	}
	return &ServiceError{
		Category: CategoryDataError,
		Message:  message,
		Err:      err,
	}
}

// ResourceNotFoundError wraps access to a missing resource.
func ResourceNotFoundError(err error, message string) error {
	if err == nil {
		err = errors.New("resource not found: " + message)
	}
	return &ServiceError{
		Category: CategoryResourceNotFound,
		Message:  message,
		Err:      err,
	}
}

// ConflictError wraps a request conflicting with existing state.
func ConflictError(err error, message string) error {
	if err == nil {
		err = errors.New("conflict")
	}
	return &ServiceError{
		Category: CategoryDataConflict,
		Message:  message,
		Err:      err,
	}
}

// DependencyError wraps a ledger node or other dependency failure.
func DependencyError(err error, message string) error {
	if err == nil {
		err = errors.New("dependency failure: " + message)
	}
	return &ServiceError{
		Category: CategoryDependencyFailure,
		Message:  message,
		Err:      err,
	}
}

// TimeoutError wraps a timed-out dependency call.
func TimeoutError(err error, message string) error {
	if err == nil {
		err = errors.New("timeout: " + message)
	}
	return &ServiceError{
		Category: CategoryConnectionTimeout,
		Message:  message,
		Err:      err,
	}
}

// StatusCode returns the HTTP status code for the error category.
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryDataConflict:
		return http.StatusConflict
	case CategoryDependencyFailure:
		return http.StatusBadGateway
	case CategoryConnectionTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
