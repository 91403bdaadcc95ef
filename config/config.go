// Package config defines the per-instance configuration entry for the
// Weatherbit integration. An entry is loaded once, validated, and immutable
// thereafter; every entity derives its identity from it.
//
// Entries load from the environment (optionally seeded by a .env file) or
// from a YAML file, whichever the host prefers. Both paths share the same
// defaulting and validation rules.
package config

import (
	"fmt"

	"weatherbit/types"
)

// SecretString is an alias for types.SecretString, the redacted secret type
// used for the API key to prevent accidental logging of its value.
type SecretString = types.SecretString

// Entry is the configuration for one Weatherbit integration instance.
// It is populated once during load and never modified.
type Entry struct {
	// ID uniquely identifies this entry. Generated with the wb_ prefix
	// when the source leaves it empty.
	ID   string `envconfig:"WEATHERBIT_ENTRY_ID" yaml:"id"`
	Name string `envconfig:"WEATHERBIT_NAME" yaml:"name" default:"Weatherbit"`

	// Station coordinates. Weatherbit resolves them to the nearest
	// reporting station on refresh.
	Latitude  float64 `envconfig:"WEATHERBIT_LATITUDE" yaml:"latitude" validate:"required,latitude"`
	Longitude float64 `envconfig:"WEATHERBIT_LONGITUDE" yaml:"longitude" validate:"required,longitude"`

	APIKey SecretString `envconfig:"WEATHERBIT_API_KEY" yaml:"api_key" validate:"required"`

	// ForecastDays is how many daily entries a refresh publishes, today
	// included. The display layer needs the full default span; asking for
	// fewer days leaves the forecast sensors unregistered.
	ForecastDays int `envconfig:"WEATHERBIT_FORECAST_DAYS" yaml:"forecast_days" default:"8" validate:"min=1,max=16"`
}

// DeviceKey returns the coordinate-derived string that namespaces every
// unique id of this entry, e.g. "52.52_13.405".
func (e *Entry) DeviceKey() string {
	return fmt.Sprintf("%v_%v", e.Latitude, e.Longitude)
}
