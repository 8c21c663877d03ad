package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// General
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "request body binding failed",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "too many requests",

	// Users
	ErrUserNotFound:          "user does not exist",
	ErrUserPasswordIncorrect: "incorrect password",
	ErrUserBlocked:           "user account is blocked",

	// Safety alerts
	ErrAlertNotFound: "safety alert does not exist",

	// Spiritual events
	ErrEventNotFound: "spiritual event does not exist",

	// Lost and found
	ErrCaseNotFound:        "lost-and-found case does not exist",
	ErrCaseAlreadyResolved: "case is already resolved",

	// Storage
	ErrRecordNotFound: "record does not exist",
	ErrStorage:        "storage error",

	// External services
	ErrAssistantUnavailable: "assistant service unavailable",
	ErrBrokerUnavailable:    "message broker unavailable",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// General
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// Users
	ErrUserNotFound:          StatusNotFound,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrUserBlocked:           StatusForbidden,

	// Safety alerts
	ErrAlertNotFound: StatusNotFound,

	// Spiritual events
	ErrEventNotFound: StatusNotFound,

	// Lost and found
	ErrCaseNotFound:        StatusNotFound,
	ErrCaseAlreadyResolved: StatusBadRequest,

	// Storage
	ErrRecordNotFound: StatusNotFound,
	ErrStorage:        StatusInternalServerError,

	// External services
	ErrAssistantUnavailable: StatusInternalServerError,
	ErrBrokerUnavailable:    StatusInternalServerError,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
