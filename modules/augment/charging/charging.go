// Package charging implements the augment.charging module. It resolves the
// route endpoints from the accumulated trip facts via Nominatim and looks up
// nearby charging stations on Open Charge Map, producing a text supplement
// appended to the bot's reply.
package charging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/flemzord/wattsup/internal/augment"
	"github.com/flemzord/wattsup/internal/core"
	"github.com/flemzord/wattsup/internal/trip"
	"gopkg.in/yaml.v3"
)

func init() {
	core.RegisterModule(&Augmenter{})
}

// Compile-time interface guards.
var (
	_ augment.Augmenter = (*Augmenter)(nil)
	_ core.Module       = (*Augmenter)(nil)
	_ core.Configurable = (*Augmenter)(nil)
	_ core.Provisioner  = (*Augmenter)(nil)
	_ core.Validator    = (*Augmenter)(nil)
)

// Augmenter looks up charging stations around both ends of a planned route.
type Augmenter struct {
	config Config
	logger *slog.Logger
	client *http.Client
}

// ModuleInfo implements core.Module.
func (a *Augmenter) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  "augment.charging",
		New: func() core.Module { return &Augmenter{} },
	}
}

// Configure implements core.Configurable.
func (a *Augmenter) Configure(node *yaml.Node) error {
	if err := node.Decode(&a.config); err != nil {
		return err
	}
	a.config.defaults()
	return nil
}

// Provision implements core.Provisioner.
func (a *Augmenter) Provision(ctx *core.AppContext) error {
	a.logger = ctx.Logger
	a.client = &http.Client{Timeout: a.config.parsedTimeout()}
	ctx.RegisterService("augment.charging", a)
	return nil
}

// Validate implements core.Validator.
func (a *Augmenter) Validate() error {
	if a.config.APIKey == "" {
		return errors.New("augment.charging: api_key is required")
	}
	if a.config.RadiusKM < 0 {
		return errors.New("augment.charging: radius_km must be positive")
	}
	if a.config.MaxResults < 0 {
		return errors.New("augment.charging: max_results must be positive")
	}
	return a.config.validateTimeout()
}

// Supplement implements augment.Augmenter. It produces the station listing
// for a route, or "" when the facts name no complete route or either
// endpoint cannot be geocoded. Station lookup failures degrade to an empty
// list for that endpoint rather than suppressing the whole supplement.
func (a *Augmenter) Supplement(ctx context.Context, facts trip.Facts) (string, error) {
	start, destination := facts[trip.FieldStart], facts[trip.FieldDestination]
	if start == "" || destination == "" {
		return "", nil
	}

	startPoint, ok, err := a.geocode(ctx, start)
	if err != nil {
		return "", fmt.Errorf("geocode start: %w", err)
	}
	if !ok {
		a.logger.Debug("route start not geocodable, skipping stations", "place", start)
		return "", nil
	}

	endPoint, ok, err := a.geocode(ctx, destination)
	if err != nil {
		return "", fmt.Errorf("geocode destination: %w", err)
	}
	if !ok {
		a.logger.Debug("route destination not geocodable, skipping stations", "place", destination)
		return "", nil
	}

	startStations, err := a.nearbyStations(ctx, startPoint)
	if err != nil {
		a.logger.Warn("station lookup failed for route start", "place", start, "error", err)
		startStations = nil
	}
	endStations, err := a.nearbyStations(ctx, endPoint)
	if err != nil {
		a.logger.Warn("station lookup failed for route destination", "place", destination, "error", err)
		endStations = nil
	}

	return formatRoute(start, destination, startStations, endStations), nil
}
