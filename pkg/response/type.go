package response

// Resp is the standard JSON response body. Success carries the
// assistant payload in Data; failures carry a non-zero error code.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
