package types

// Category classifies a sensor for unit selection and imperial conversion.
// The set is closed: conversion rules and unit strings switch over it, so a
// new category requires touching both switches.
type Category string

const (
	CategoryTemperature   Category = "temperature"
	CategoryWind          Category = "wind"
	CategoryHumidity      Category = "humidity"
	CategoryPressure      Category = "pressure"
	CategoryCloudCoverage Category = "cloud_coverage"
	CategoryIrradiance    Category = "irradiance"
	CategoryWindDirection Category = "wind_direction" // cardinal text, no unit
	CategoryWindBearing   Category = "wind_bearing"   // degrees
	CategoryRain          Category = "rain"
	CategoryDistance      Category = "distance"
	CategoryUVIndex       Category = "uv_index"
	CategoryAirQuality    Category = "air_quality"
)
