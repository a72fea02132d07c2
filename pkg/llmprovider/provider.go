package llmprovider

import "context"

// Provider is one LLM backend in the fallback chain. Adapters translate
// the neutral request into each vendor's wire format.
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request is a provider-neutral generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
}

// Message is one conversation turn
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

// Part is a message fragment (text or function call)
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Tool declares a function the model may call
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON Schema
}

// FunctionCall is a model-requested function invocation
type FunctionCall struct {
	Name string
	Args map[string]interface{}
}

// FunctionResponse carries a function execution result back to the model
type FunctionResponse struct {
	Name     string
	Response interface{}
}

// Response is a provider-neutral generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
