// Package sensor implements the Weatherbit sensor platform: one observation
// sensor per catalog entry plus one sensor per upcoming forecast day, all
// derived from the two read-only snapshots the refresh collaborator
// publishes.
package sensor

import (
	"sort"

	"weatherbit/types"
)

// platformName prefixes every display name of this integration.
const platformName = "Weatherbit"

// Key identifies one observation sensor. Key values double as the Weatherbit
// field names they read, so unique ids stay stable across releases.
type Key string

const (
	KeyTemperature    Key = "temp"
	KeyWindSpeed      Key = "wind_spd"
	KeyApparentTemp   Key = "app_temp"
	KeyHumidity       Key = "humidity"
	KeyPressure       Key = "pres"
	KeyCloudCoverage  Key = "clouds"
	KeySolarRadiation Key = "solar_rad"
	KeyWindDirection  Key = "wind_cdir"
	KeyWindBearing    Key = "wind_dir"
	KeyDewPoint       Key = "dewpt"
	KeyVisibility     Key = "vis"
	KeyRain           Key = "precip"
	KeyUVIndex        Key = "uv"
	KeyAirQuality     Key = "aqi"
)

// CatalogEntry describes one observation sensor: the display label, the
// measurement category that drives unit and conversion rules, the suggested
// icon suffix, and the typed accessor for its reading in the current
// snapshot.
type CatalogEntry struct {
	Label    string
	Category types.Category
	Icon     string
	Read     func(c *types.CurrentConditions) any
}

// catalog is the authoritative sensor table. It is static: entries are never
// added, removed, or modified at runtime.
var catalog = map[Key]CatalogEntry{
	KeyTemperature: {
		Label:    "Temperature",
		Category: types.CategoryTemperature,
		Icon:     "thermometer",
		Read:     func(c *types.CurrentConditions) any { return c.Temperature },
	},
	KeyWindSpeed: {
		Label:    "Wind Speed",
		Category: types.CategoryWind,
		Icon:     "weather-windy",
		Read:     func(c *types.CurrentConditions) any { return c.WindSpeed },
	},
	KeyApparentTemp: {
		Label:    "Apparent Temperature",
		Category: types.CategoryTemperature,
		Icon:     "thermometer",
		Read:     func(c *types.CurrentConditions) any { return c.ApparentTemperature },
	},
	KeyHumidity: {
		Label:    "Humidity",
		Category: types.CategoryHumidity,
		Icon:     "water-percent",
		Read:     func(c *types.CurrentConditions) any { return c.Humidity },
	},
	KeyPressure: {
		Label:    "Pressure",
		Category: types.CategoryPressure,
		Icon:     "gauge",
		Read:     func(c *types.CurrentConditions) any { return c.Pressure },
	},
	KeyCloudCoverage: {
		Label:    "Cloud Coverage",
		Category: types.CategoryCloudCoverage,
		Icon:     "cloud-outline",
		Read:     func(c *types.CurrentConditions) any { return c.CloudCoverage },
	},
	KeySolarRadiation: {
		Label:    "Solar Radiation",
		Category: types.CategoryIrradiance,
		Icon:     "weather-sunny",
		Read:     func(c *types.CurrentConditions) any { return c.SolarRadiation },
	},
	KeyWindDirection: {
		Label:    "Wind Direction",
		Category: types.CategoryWindDirection,
		Icon:     "compass-outline",
		Read:     func(c *types.CurrentConditions) any { return c.WindDirCardinal },
	},
	KeyWindBearing: {
		Label:    "Wind Bearing",
		Category: types.CategoryWindBearing,
		Icon:     "compass-outline",
		Read:     func(c *types.CurrentConditions) any { return c.WindDirDegrees },
	},
	KeyDewPoint: {
		Label:    "Dewpoint",
		Category: types.CategoryTemperature,
		Icon:     "thermometer",
		Read:     func(c *types.CurrentConditions) any { return c.DewPoint },
	},
	KeyVisibility: {
		Label:    "Visibility",
		Category: types.CategoryDistance,
		Icon:     "eye-outline",
		Read:     func(c *types.CurrentConditions) any { return c.Visibility },
	},
	KeyRain: {
		Label:    "Rain Today",
		Category: types.CategoryRain,
		Icon:     "weather-rainy",
		Read:     func(c *types.CurrentConditions) any { return c.Precipitation },
	},
	KeyUVIndex: {
		Label:    "UV Index",
		Category: types.CategoryUVIndex,
		Icon:     "weather-sunny-alert",
		Read:     func(c *types.CurrentConditions) any { return c.UVIndex },
	},
	KeyAirQuality: {
		Label:    "Air Quality",
		Category: types.CategoryAirQuality,
		Icon:     "hvac",
		Read:     func(c *types.CurrentConditions) any { return c.AQI },
	},
}

// Keys returns every catalog key in sorted order, so platform setup and
// tests iterate the catalog deterministically.
func Keys() []Key {
	keys := make([]Key, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Lookup returns the catalog entry for key.
func Lookup(key Key) (CatalogEntry, bool) {
	e, ok := catalog[key]
	return e, ok
}
