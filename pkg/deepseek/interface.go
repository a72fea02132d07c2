package deepseek

import "context"

// IDeepSeek is the DeepSeek chat-completion surface consumed by the
// provider adapters. Implementations are safe for concurrent use.
type IDeepSeek interface {
	// GenerateContent sends a chat completion request to DeepSeek API
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a DeepSeek client, applying defaults for any Config field
// left unset.
func New(cfg Config) (IDeepSeek, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newDeepSeekImpl(cfg), nil
}
