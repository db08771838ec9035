package llm

import "context"

// GenerateRequest carries one call to the text-generation service.
type GenerateRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Client is the narrow seam to the remote text-generation service. The
// service is treated as unreliable and non-deterministic: callers must
// not assume the returned text is valid JSON.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
