package response

// Resp is the standard JSON response body. ErrorCode 0 marks success;
// Data is omitted when a handler has nothing to return.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}
