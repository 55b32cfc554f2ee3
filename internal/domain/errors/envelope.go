package errors

import "encoding/json"

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "INVALID_LINKS_ORDER"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data"`
	Meta    *MetaInfo `json:"meta,omitempty"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta,omitempty"`
}

// RawSuccessResponse is the decoding side of SuccessResponse; Data is kept raw so the
// caller picks the concrete type.
type RawSuccessResponse struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
	Meta    *MetaInfo       `json:"meta,omitempty"`
}
