package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput    = "INVALID_INPUT"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeFileTooLarge    = "FILE_TOO_LARGE"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeUpstreamFailed     = "UPSTREAM_FAILED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
