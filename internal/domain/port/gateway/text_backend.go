package gateway

import "context"

// CompletionRequest is one call to a hosted text-generation model
type CompletionRequest struct {
	SystemInstruction string
	UserText          string
	Temperature       *float32 // nil leaves the backend default
	MaxOutputTokens   int32    // 0 leaves the backend default
}

// TextBackend is a hosted text-generation model: text in, text or failure out.
// Implementations make a single attempt and never retry.
type TextBackend interface {
	// Name identifies the provider in logs
	Name() string

	// Complete returns the model's reply text
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
