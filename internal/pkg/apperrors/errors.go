package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Entity specific not-found errors. Each wraps ErrResourceNotFound so callers
// can match either the specific or the generic kind.
var (
	ErrStudentNotFound    = NewResourceNotFoundError("student not found")
	ErrTeacherNotFound    = NewResourceNotFoundError("teacher not found")
	ErrCourseNotFound     = NewResourceNotFoundError("course not found")
	ErrBatchNotFound      = NewResourceNotFoundError("batch not found")
	ErrEnrollmentNotFound = NewResourceNotFoundError("enrollment not found")
	ErrExamNotFound       = NewResourceNotFoundError("exam not found")
	ErrExamResultNotFound = NewResourceNotFoundError("exam result not found")
	ErrAttendanceNotFound = NewResourceNotFoundError("attendance record not found")
	ErrFeeNotFound        = NewResourceNotFoundError("fee not found")
	ErrMessageNotFound    = NewResourceNotFoundError("message not found")

	// ErrEmailAlreadyExists is a conflict: emails are unique per entity.
	ErrEmailAlreadyExists = NewConflictError("email already exists")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError wraps ErrValidationFailed with the offending field names.
func NewValidationError(message string, fields map[string]string) error {
	return (&CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}).WithDetails(fields)
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]string) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// DetailsOf returns the field details carried by err, if any.
func DetailsOf(err error) map[string]string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Details
	}
	return nil
}
