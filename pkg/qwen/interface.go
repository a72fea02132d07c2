package qwen

import "context"

// IQwen is the Qwen generation surface consumed by the provider
// adapters. Implementations are safe for concurrent use.
type IQwen interface {
	// GenerateContent sends a generation request to Qwen API
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a Qwen client, applying defaults for any Config field
// left unset.
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
