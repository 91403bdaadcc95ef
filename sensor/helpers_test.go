package sensor

import (
	"weatherbit/config"
	"weatherbit/coordinator"
	"weatherbit/types"
)

func testEntry() *config.Entry {
	return &config.Entry{
		ID:           "wb_test_entry",
		Name:         "Weatherbit",
		Latitude:     52.52,
		Longitude:    13.405,
		APIKey:       config.SecretString("test-key"),
		ForecastDays: 8,
	}
}

func testCurrent() *types.CurrentConditions {
	return &types.CurrentConditions{
		Temperature:         21.57,
		ApparentTemperature: 20.1,
		WindSpeed:           10.0,
		WindDirCardinal:     "SSW",
		WindDirDegrees:      202,
		Humidity:            63,
		Pressure:            1013.25,
		CloudCoverage:       75,
		SolarRadiation:      412.5,
		DewPoint:            14.3,
		Visibility:          10.0,
		Precipitation:       25.4,
		UVIndex:             4.27,
		AQI:                 42,
		ObservedLocal:       "2026-08-21 07:00",
	}
}

func testForecastDays() []types.ForecastDay {
	return []types.ForecastDay{
		{ValidDate: "2026-08-21", MaxTemp: 25, MinTemp: 15, WindSpeed: 5, WindDirDegrees: 180, Precipitation: 0, WeatherCode: 800},
		{ValidDate: "2026-08-22", MaxTemp: 24, MinTemp: 14, WindSpeed: 5, WindDirDegrees: 190, Precipitation: 0.3, WeatherCode: 801},
		{ValidDate: "2026-08-23", MaxTemp: 20, MinTemp: 13, WindSpeed: 7, WindDirDegrees: 210, Precipitation: 12.7, WeatherCode: 500},
		{ValidDate: "2026-08-24", MaxTemp: 18, MinTemp: 11, WindSpeed: 9, WindDirDegrees: 220, Precipitation: 4.1, WeatherCode: 502},
		{ValidDate: "2026-08-25", MaxTemp: 16, MinTemp: 9, WindSpeed: 6, WindDirDegrees: 230, Precipitation: 2.2, WeatherCode: 200},
		{ValidDate: "2026-08-26", MaxTemp: 15, MinTemp: 8, WindSpeed: 4, WindDirDegrees: 240, Precipitation: 0.8, WeatherCode: 999},
		{ValidDate: "2026-08-27", MaxTemp: 17, MinTemp: 10, WindSpeed: 3, WindDirDegrees: 250, Precipitation: 0, WeatherCode: 700},
		{ValidDate: "2026-08-28", MaxTemp: 19, MinTemp: 12, WindSpeed: 5, WindDirDegrees: 260, Precipitation: 0.1, WeatherCode: 802},
	}
}

// testSetup wires fresh coordinators around the canonical fixture snapshots.
func testSetup(metric bool) SetupConfig {
	current := coordinator.NewObservations(nil)
	current.Set(testCurrent())

	forecast := coordinator.NewForecast(nil)
	forecast.Set(testForecastDays())

	return SetupConfig{
		Entry:    testEntry(),
		Current:  current,
		Forecast: forecast,
		IsMetric: metric,
	}
}
