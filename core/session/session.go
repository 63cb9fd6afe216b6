// Package session models the user-selected configuration as an immutable
// value. The host UI evolves a Configuration through explicit transition
// functions; the pricing engine only ever sees the resulting value, never a
// shared mutable store.
package session

import (
	"slices"

	"sundae-pricing/core/catalog"
	"sundae-pricing/internal/errors"
)

// ClientProfile describes the purchasing client
type ClientProfile struct {
	Type                  string   `json:"type" validate:"required"`
	IsEarlyAdopter        bool     `json:"is_early_adopter"`
	IsFranchise           bool     `json:"is_franchise"`
	BrandCount            int      `json:"brand_count" validate:"min=0"`
	CustomDiscountPercent *float64 `json:"custom_discount_percent,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// Configuration is one user session's product selection. It is a value
// object: transitions return a fresh copy and never mutate the receiver.
type Configuration struct {
	Layer         catalog.Layer `json:"layer" validate:"required,oneof=report core"`
	Tier          string        `json:"tier" validate:"required"`
	Locations     int           `json:"locations" validate:"min=1"`
	Modules       []string      `json:"modules"`
	Watchtower    []string      `json:"watchtower"`
	ClientProfile ClientProfile `json:"client_profile"`
}

// New returns a minimal single-location configuration
func New(layer catalog.Layer, tier string) Configuration {
	return Configuration{
		Layer:     layer,
		Tier:      tier,
		Locations: 1,
		ClientProfile: ClientProfile{
			Type:       "independent",
			BrandCount: 1,
		},
	}
}

// WithLocations returns a copy with the location count replaced
func (c Configuration) WithLocations(n int) Configuration {
	c = c.clone()
	c.Locations = n
	return c
}

// WithTier returns a copy pointing at a different layer/tier
func (c Configuration) WithTier(layer catalog.Layer, tier string) Configuration {
	c = c.clone()
	c.Layer = layer
	c.Tier = tier
	return c
}

// ToggleModule returns a copy with the module added or removed
func (c Configuration) ToggleModule(id string) Configuration {
	c = c.clone()
	c.Modules = toggle(c.Modules, id)
	return c
}

// ToggleWatchtower returns a copy with the watchtower selection toggled
func (c Configuration) ToggleWatchtower(id string) Configuration {
	c = c.clone()
	c.Watchtower = toggle(c.Watchtower, id)
	return c
}

// WithClientProfile returns a copy with the client profile replaced
func (c Configuration) WithClientProfile(p ClientProfile) Configuration {
	c = c.clone()
	c.ClientProfile = p
	return c
}

// Validate reports input errors the engine does not defend against.
// Locations below 1 are rejected here, not clamped.
func (c Configuration) Validate() error {
	if c.Layer != catalog.LayerReport && c.Layer != catalog.LayerCore {
		return errors.Inputf("unknown layer: %q", c.Layer)
	}
	if c.Tier == "" {
		return errors.Input("tier is required")
	}
	if c.Locations < 1 {
		return errors.Inputf("locations must be at least 1, got %d", c.Locations)
	}
	if c.ClientProfile.Type == "" {
		return errors.Input("client type is required")
	}
	if p := c.ClientProfile.CustomDiscountPercent; p != nil && (*p < 0 || *p > 100) {
		return errors.Inputf("custom discount must be between 0 and 100, got %v", *p)
	}
	return nil
}

func (c Configuration) clone() Configuration {
	c.Modules = slices.Clone(c.Modules)
	c.Watchtower = slices.Clone(c.Watchtower)
	return c
}

func toggle(ids []string, id string) []string {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return append(ids, id)
}
