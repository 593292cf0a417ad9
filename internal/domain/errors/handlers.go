package errors

// ErrorInfo is the body of a failed request
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine readable code, e.g. "PRODUCT_NOT_FOUND"
	Message string `json:"message"`           // Human readable message
	Details any    `json:"details,omitempty"` // Field level validation output, when available
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// ErrorResponse is the envelope every failed request is rendered in
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
