package entity

import (
	"weatherbit/internal/units"
	"weatherbit/types"
)

// Attribution credits the data source on every entity of the integration.
const Attribution = "Powered by Weatherbit"

// Attribute keys shared by the sensor and weather platforms. The forecast
// keys follow the home-automation forecast vocabulary; AttrUpdated is
// specific to this integration.
const (
	AttrAttribution   = "attribution"
	AttrUpdated       = "weatherbit_updated"
	AttrForecastTime  = "datetime"
	AttrTemperature   = "temperature"
	AttrTempLow       = "templow"
	AttrPrecipitation = "precipitation"
	AttrWindSpeed     = "wind_speed"
	AttrWindBearing   = "wind_bearing"
	AttrCondition     = "condition"
	AttrHumidity      = "humidity"
	AttrPressure      = "pressure"
	AttrVisibility    = "visibility"
)

// Display unit strings. Weatherbit reports metric; the imperial variants are
// what the display conversions produce.
const (
	UnitCelsius      = "°C"
	UnitMetersPerSec = "m/s"
	UnitMilesPerHour = "mi/h"
	UnitPercent      = "%"
	UnitHPa          = "hPa"
	UnitInHg         = "inHg"
	UnitMillimeters  = "mm"
	UnitInches       = "in"
	UnitKilometers   = "km"
	UnitMiles        = "mi"
	UnitIrradiance   = "W/m2"
	UnitDegrees      = "°"
	UnitUVIndex      = "UVI"
	UnitAQI          = "AQI"
)

const (
	mphPerMs  = 2.23693629
	kmhPerMs  = 3.6
	mmPerInch = 25.4
)

// ForecastAttributes builds the attribute map for one forecast day in the
// given unit system. Daily wind speeds display as km/h when metric, not the
// m/s the upstream reports. The weatherbit_updated attribute always reflects
// the current snapshot's observation time, never the forecast.
func ForecastAttributes(day types.ForecastDay, current types.CurrentConditions, metric bool) map[string]any {
	var temp, tempLow, windSpeed, precip float64
	if metric {
		temp = day.MaxTemp
		tempLow = day.MinTemp
		windSpeed = units.RoundTo(day.WindSpeed*kmhPerMs, 1)
		precip = units.RoundTo(day.Precipitation, 1)
	} else {
		temp = units.RoundTo(day.MaxTemp*1.8+32, 1)
		tempLow = units.RoundTo(day.MinTemp*1.8+32, 1)
		windSpeed = units.RoundTo(day.WindSpeed*mphPerMs, 1)
		precip = units.RoundTo(day.Precipitation/mmPerInch, 2)
	}
	return map[string]any{
		AttrAttribution:   Attribution,
		AttrForecastTime:  day.ValidDate,
		AttrTemperature:   temp,
		AttrTempLow:       tempLow,
		AttrPrecipitation: precip,
		AttrWindSpeed:     windSpeed,
		AttrWindBearing:   day.WindDirDegrees,
		AttrUpdated:       current.ObservedLocal,
	}
}
