package apperror

import "fmt"

type AppError struct {
	Code       string // Error code (e.g., UPSTREAM_FAILED)
	Message    string // User-facing message
	HTTPStatus int
	Err        error // Wrapped cause, never shown to the user
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets a wrapped copy match the sentinel it was built from, so
// errors.Is(Wrap(cause, ErrX), ErrX) holds.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches cause to a copy of sentinel. Returns nil when cause is nil.
func Wrap(cause error, sentinel *AppError) *AppError {
	if cause == nil {
		return nil
	}
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		HTTPStatus: sentinel.HTTPStatus,
		Err:        cause,
	}
}
