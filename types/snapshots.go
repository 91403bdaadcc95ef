// Package types defines the shared vocabulary of the Weatherbit integration:
// the read-only data snapshots produced by the refresh collaborator and the
// closed set of sensor categories that drive unit and conversion rules.
package types

// ForecastDays is the length of the daily forecast sequence the refresh
// collaborator delivers. Day 0 is today and feeds the weather entity; days
// 1 through 7 feed the forecast-day sensors.
const ForecastDays = 8

// CurrentConditions is the most recent observation snapshot. It is populated
// wholesale by the external refresh cycle and never mutated by this layer;
// every sensor read works against the generation it fetches.
//
// Numeric values are stored in Weatherbit's native metric units. Imperial
// presentation is derived at read time by the sensor layer.
type CurrentConditions struct {
	Temperature         float64 `json:"temp"`     // °C
	ApparentTemperature float64 `json:"app_temp"` // °C
	WindSpeed           float64 `json:"wind_spd"` // m/s
	WindDirCardinal     string  `json:"wind_cdir"`
	WindDirDegrees      int     `json:"wind_dir"` // degrees
	Humidity            float64 `json:"humidity"` // %
	Pressure            float64 `json:"pres"`     // hPa
	CloudCoverage       float64 `json:"clouds"`   // %
	SolarRadiation      float64 `json:"solar_rad"` // W/m2
	DewPoint            float64 `json:"dewpt"`     // °C
	Visibility          float64 `json:"vis"`       // km
	Precipitation       float64 `json:"precip"`    // mm
	UVIndex             float64 `json:"uv"`
	AQI                 int     `json:"aqi"`
	ObservedLocal       string  `json:"obs_time_local"`
}

// ForecastDay is one day of the daily forecast sequence, index 0 = today.
// Like CurrentConditions it is owned by the refresh collaborator and only
// ever read here.
type ForecastDay struct {
	ValidDate      string  `json:"valid_date"` // YYYY-MM-DD, local to the station
	MaxTemp        float64 `json:"max_temp"`   // °C
	MinTemp        float64 `json:"min_temp"`   // °C
	WindSpeed      float64 `json:"wind_spd"`   // m/s
	WindDirDegrees int     `json:"wind_dir"`   // degrees
	Precipitation  float64 `json:"precip"`     // mm
	WeatherCode    int     `json:"weather_code"`
}
