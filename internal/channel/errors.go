package channel

import "errors"

// Sentinel errors for channel dispatch.
var (
	// ErrDuplicateChannel indicates a channel name is already registered.
	ErrDuplicateChannel = errors.New("channel: duplicate channel")

	// ErrNoChannel indicates no channel is registered under the given name.
	ErrNoChannel = errors.New("channel: no channel registered")
)
