package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "CITY_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Response is the unified envelope shared with the delivery layer so the
// global error handler can emit the same shape as regular handlers.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
