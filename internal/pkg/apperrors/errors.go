package apperrors

import "errors"

// Admission rejection reasons. These are expected business outcomes, not
// faults: the repository layer returns them as values and the error middleware
// maps each one to a fixed HTTP status.
var (
	ErrInvalidDateRange      = errors.New("assignment start date is after its end date")
	ErrDuplicateAssignment   = errors.New("faculty member is already assigned to this committee")
	ErrUnknownReference      = errors.New("referenced faculty member or committee does not exist")
	ErrCommitteeFull         = errors.New("committee has no available slots")
	ErrDivisionQuotaReserved = errors.New("remaining slots are reserved for other senate divisions")
)

// Resource errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// ErrTransientStore covers connectivity and timeout failures at the database.
// The service does not retry; retry policy, if any, belongs to the client.
var ErrTransientStore = errors.New("transient store failure")

// IsAdmissionRejection reports whether err is one of the admission rejection
// reasons. All of them surface as 409 at the HTTP layer.
func IsAdmissionRejection(err error) bool {
	return errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrDuplicateAssignment) ||
		errors.Is(err, ErrUnknownReference) ||
		errors.Is(err, ErrCommitteeFull) ||
		errors.Is(err, ErrDivisionQuotaReserved)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrResourceAlreadyExists,
		Message: message,
	}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
