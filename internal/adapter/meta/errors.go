package meta

// Graph API error codes that get a diagnostic hint. Neither is retried
// automatically anywhere in the stack.
const (
	// CodeExpiredToken means the access token is no longer valid and the
	// operator must re-authenticate.
	CodeExpiredToken = 190
	// CodeRateLimit means the application hit the platform's call budget.
	CodeRateLimit = 17
)

// APIError is the normalised remote error payload returned by the Graph
// API. UserMessage, when present, is safe to show to end users; Message
// is the developer-facing text.
type APIError struct {
	Message     string `json:"message"`
	Type        string `json:"type"`
	Code        int    `json:"code"`
	UserMessage string `json:"error_user_msg,omitempty"`
	TraceID     string `json:"fbtrace_id,omitempty"`
}

func (e *APIError) Error() string {
	if e.UserMessage != "" {
		return e.UserMessage
	}
	return e.Message
}
