package config

import (
	"errors"
	"fmt"

	"github.com/flemzord/wattsup/internal/core"
)

// Validate checks the structural validity of a Config. It verifies the
// version field, ensures modules are present, and checks that all referenced
// module IDs exist in the registry. Credential presence is enforced by each
// module's own Validate(), so a missing token fails startup, not runtime.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Version == "" {
		errs = append(errs, errors.New("config: version field is required"))
	} else if cfg.Version != "1" {
		errs = append(errs, fmt.Errorf("config: unsupported version %q (supported: \"1\")", cfg.Version))
	}

	if len(cfg.Modules) == 0 {
		errs = append(errs, errors.New("config: at least one module must be configured"))
	}

	for id := range cfg.Modules {
		if _, ok := core.GetModule(id); !ok {
			errs = append(errs, fmt.Errorf("config: unknown module %q", id))
		}
	}

	if cfg.Telemetry != nil && cfg.Telemetry.Endpoint == "" {
		errs = append(errs, errors.New("config: telemetry.endpoint is required when telemetry is set"))
	}

	return errors.Join(errs...)
}
