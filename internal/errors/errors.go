// Package errors provides coded errors so UI layers can distinguish
// failure kinds (bad JSON vs. bad structure vs. storage failure)
// without string matching.
package errors

import "fmt"

// ErrorCode identifies one failure kind of the CMS core.
type ErrorCode string

const (
	// ErrParse reports data that is not valid JSON (corrupt persisted
	// state or a malformed import file).
	ErrParse ErrorCode = "PARSE_ERROR"

	// ErrStructure reports valid JSON that lacks the mandatory
	// document shape (missing projects/products collections).
	ErrStructure ErrorCode = "INVALID_STRUCTURE"

	// ErrNotFound reports an update/delete of a missing entity id.
	// Only raised when the store runs with strict updates.
	ErrNotFound ErrorCode = "NOT_FOUND"

	// ErrValidation reports an entity rejected by the structural
	// validators. Only raised when the store validates on write.
	ErrValidation ErrorCode = "VALIDATION_ERROR"

	// ErrStorage reports a failed read/write of the backing store,
	// the quota-exceeded analog. The write must not be assumed to
	// have succeeded.
	ErrStorage ErrorCode = "STORAGE_ERROR"
)

// AppError represents an application error with code and message.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an error code.
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is checks if an error carries a specific code.
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}
