package core

// ModuleID uniquely identifies a module within its namespace,
// e.g. "channel.telegram" or "provider.openai".
type ModuleID string

// ModuleInfo describes a registered module.
type ModuleInfo struct {
	// ID is the unique module identifier.
	ID ModuleID

	// New returns a fresh, unconfigured instance of the module.
	New func() Module
}

// Module is the minimal interface every wattsup module implements.
// Modules opt into lifecycle phases by additionally implementing
// Configurable, Provisioner, Validator, Starter, or Stopper.
type Module interface {
	ModuleInfo() ModuleInfo
}
