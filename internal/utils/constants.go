package utils

// Application Constants
const (
	AppName = "ridehail"

	// Request context
	HeaderRequestID  = "X-Request-ID"
	ContextRequestID = "request_id"

	// Generic plain-text bodies
	MessageNotFound       = "Not Found"
	MessageInternalServer = "Internal Server Error"
	MessageBadJSON        = "Malformed JSON request body."
)
