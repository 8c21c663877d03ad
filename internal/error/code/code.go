package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: malformed request.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: missing or invalid credentials.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access denied.
	StatusForbidden = 403
	// StatusNotFound - 404: resource does not exist.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: rate limited.
	StatusTooManyRequests = 429
)

// General error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// User error codes (101xxx).
const (
	// ErrUserNotFound - 404: user does not exist.
	ErrUserNotFound int = iota + 101000
	// ErrUserPasswordIncorrect - 401: wrong password.
	ErrUserPasswordIncorrect
	// ErrUserBlocked - 403: user account is blocked.
	ErrUserBlocked
)

// Safety alert error codes (102xxx).
const (
	// ErrAlertNotFound - 404: alert does not exist.
	ErrAlertNotFound int = iota + 102000
)

// Spiritual event error codes (103xxx).
const (
	// ErrEventNotFound - 404: event does not exist.
	ErrEventNotFound int = iota + 103000
)

// Lost-and-found error codes (104xxx).
const (
	// ErrCaseNotFound - 404: case does not exist.
	ErrCaseNotFound int = iota + 104000
	// ErrCaseAlreadyResolved - 400: case is already in a terminal state.
	ErrCaseAlreadyResolved
)

// Storage error codes (105xxx).
const (
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound int = iota + 105000
	// ErrStorage - 500: storage failure.
	ErrStorage
)

// External service error codes (106xxx).
const (
	// ErrAssistantUnavailable - 500: assistant backend unreachable.
	ErrAssistantUnavailable int = iota + 106000
	// ErrBrokerUnavailable - 500: message broker unreachable.
	ErrBrokerUnavailable
)
