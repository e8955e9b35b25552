// Package provider defines the LLM completion interface the bot talks to.
// Concrete implementations live in separate packages (e.g. provider.openai)
// and typically also implement core.Module for lifecycle management.
package provider

import "context"

// Provider is the interface for communicating with an LLM.
type Provider interface {
	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)

	// ModelName returns the identifier of the underlying model.
	ModelName() string
}
