package provider

import "errors"

// Sentinel errors for provider operations. The bot treats every one of them
// the same way (fixed apology, context untouched); the distinction exists
// for server-side logging only.
var (
	// ErrRateLimit indicates the provider returned a rate limit response.
	ErrRateLimit = errors.New("provider rate limited")

	// ErrProviderDown indicates the provider is temporarily unavailable.
	ErrProviderDown = errors.New("provider unavailable")

	// ErrMalformedResponse indicates the provider returned a response the
	// client could not parse or that carried no completion.
	ErrMalformedResponse = errors.New("provider returned malformed response")
)
