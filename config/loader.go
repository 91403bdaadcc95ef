// loader.go implements the entry loading lifecycle.
//
// The environment path is:
//  1. Load a .env file via godotenv (non-fatal if absent).
//  2. Process envconfig struct tags to populate the Entry.
//  3. Generate an entry ID when the source left it empty.
//  4. Validate the struct using go-playground/validator.
//
// The YAML path decodes the file and then joins the same defaulting and
// validation steps.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"weatherbit/types"
)

// entryIDPrefix namespaces generated entry IDs.
const entryIDPrefix = "wb_"

const (
	defaultName         = "Weatherbit"
	defaultForecastDays = 8
)

// FromEnv loads and validates an Entry from the process environment. A .env
// file in the working directory seeds variables that are not already set.
func FromEnv() (*Entry, error) {
	// godotenv silently succeeds when no .env file exists and never
	// overrides variables already present in the environment.
	_ = godotenv.Load()

	var e Entry
	if err := envconfig.Process("", &e); err != nil {
		return nil, types.NewPlatformError(types.ErrCodeConfigParse,
			"failed to process environment configuration", err)
	}

	if err := finalize(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

// LoadFile loads and validates an Entry from a YAML file.
func LoadFile(path string) (*Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, types.NewPlatformError(types.ErrCodeConfigParse,
			fmt.Sprintf("failed to read entry file %s", path), err)
	}

	var e Entry
	if err := yaml.Unmarshal(raw, &e); err != nil {
		return nil, types.NewPlatformError(types.ErrCodeConfigParse,
			fmt.Sprintf("failed to decode entry file %s", path), err)
	}

	if err := finalize(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

// finalize applies defaults the source may have omitted, generates a missing
// entry ID, and validates the result.
func finalize(e *Entry) error {
	if e.ID == "" {
		e.ID = entryIDPrefix + uuid.New().String()
	}
	if e.Name == "" {
		e.Name = defaultName
	}
	if e.ForecastDays == 0 {
		e.ForecastDays = defaultForecastDays
	}

	validate := validator.New()
	if err := validate.Struct(e); err != nil {
		return types.NewPlatformError(classifyValidation(err),
			"entry validation failed", err)
	}
	return nil
}

// classifyValidation maps a validator error to the most specific error code,
// so callers can branch without parsing validator messages.
func classifyValidation(err error) types.ErrorCode {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return types.ErrCodeConfigValidation
	}

	// Report the first failing field, mirroring validator's own ordering.
	first := verrs[0]
	switch first.Field() {
	case "Latitude":
		return types.ErrCodeConfigInvalidLat
	case "Longitude":
		return types.ErrCodeConfigInvalidLon
	}
	if first.Tag() == "required" {
		return types.ErrCodeConfigMissingField
	}
	return types.ErrCodeConfigValidation
}
