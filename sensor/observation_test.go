package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weatherbit/coordinator"
	"weatherbit/entity"
	"weatherbit/types"
)

func newTestObservation(t *testing.T, key Key, metric bool, snap *types.CurrentConditions) *ObservationSensor {
	t.Helper()
	cfg := testSetup(metric)
	if snap != nil {
		cfg.Current = coordinator.NewObservations(nil)
		cfg.Current.Set(snap)
	}
	return newObservationSensor(cfg, key)
}

func TestObservationState_Wind(t *testing.T) {
	t.Run("metric rounds to one decimal", func(t *testing.T) {
		s := newTestObservation(t, KeyWindSpeed, true, &types.CurrentConditions{WindSpeed: 5.456})
		assert.Equal(t, 5.5, s.State())
	})

	t.Run("imperial converts to mph with two decimals", func(t *testing.T) {
		s := newTestObservation(t, KeyWindSpeed, false, &types.CurrentConditions{WindSpeed: 10.0})
		assert.Equal(t, 22.37, s.State())
	})
}

func TestObservationState_Pressure(t *testing.T) {
	t.Run("metric passes hPa through unrounded", func(t *testing.T) {
		s := newTestObservation(t, KeyPressure, true, &types.CurrentConditions{Pressure: 1013.25})
		assert.Equal(t, 1013.25, s.State())
	})

	t.Run("imperial converts to inHg with two decimals", func(t *testing.T) {
		s := newTestObservation(t, KeyPressure, false, &types.CurrentConditions{Pressure: 1013.25})
		assert.Equal(t, 29.92, s.State())
	})
}

func TestObservationState_Rain(t *testing.T) {
	t.Run("metric rounds to one decimal", func(t *testing.T) {
		s := newTestObservation(t, KeyRain, true, &types.CurrentConditions{Precipitation: 3.75})
		assert.Equal(t, 3.8, s.State())
	})

	// One inch of rain reads back as exactly 1.0, not nil: the converted
	// imperial value is the state.
	t.Run("imperial converts to inches and returns the value", func(t *testing.T) {
		s := newTestObservation(t, KeyRain, false, &types.CurrentConditions{Precipitation: 25.4})
		require.NotNil(t, s.State())
		assert.Equal(t, 1.0, s.State())
	})
}

func TestObservationState_Distance(t *testing.T) {
	t.Run("metric passes km through unrounded", func(t *testing.T) {
		s := newTestObservation(t, KeyVisibility, true, &types.CurrentConditions{Visibility: 10.0})
		assert.Equal(t, 10.0, s.State())
	})

	t.Run("imperial truncates to whole miles", func(t *testing.T) {
		s := newTestObservation(t, KeyVisibility, false, &types.CurrentConditions{Visibility: 10.0})
		assert.Equal(t, 6, s.State())
	})

	t.Run("imperial truncates instead of rounding", func(t *testing.T) {
		// 30 km is 18.64 mi; rounding would display 19.
		s := newTestObservation(t, KeyVisibility, false, &types.CurrentConditions{Visibility: 30.0})
		assert.Equal(t, 18, s.State())
	})
}

func TestObservationState_UVIndex(t *testing.T) {
	for _, metric := range []bool{true, false} {
		s := newTestObservation(t, KeyUVIndex, metric, &types.CurrentConditions{UVIndex: 4.27})
		assert.Equal(t, 4.3, s.State(), "metric=%v", metric)
	}
}

func TestObservationState_Passthrough(t *testing.T) {
	snap := testCurrent()

	tests := []struct {
		name string
		key  Key
		want any
	}{
		{name: "temperature stays celsius", key: KeyTemperature, want: 21.57},
		{name: "apparent temperature stays celsius", key: KeyApparentTemp, want: 20.1},
		{name: "humidity", key: KeyHumidity, want: 63.0},
		{name: "cloud coverage", key: KeyCloudCoverage, want: 75.0},
		{name: "solar radiation", key: KeySolarRadiation, want: 412.5},
		{name: "dewpoint stays celsius", key: KeyDewPoint, want: 14.3},
		{name: "cardinal wind direction", key: KeyWindDirection, want: "SSW"},
		{name: "wind bearing", key: KeyWindBearing, want: 202},
		{name: "air quality index", key: KeyAirQuality, want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Pass-through values are identical in both unit systems.
			for _, metric := range []bool{true, false} {
				s := newTestObservation(t, tt.key, metric, snap)
				assert.Equal(t, tt.want, s.State(), "metric=%v", metric)
			}
		})
	}
}

func TestObservationState_NoSnapshot(t *testing.T) {
	cfg := testSetup(true)
	cfg.Current = coordinator.NewObservations(nil)

	s := newObservationSensor(cfg, KeyTemperature)

	assert.Nil(t, s.State())
	assert.Nil(t, s.Attributes())
}

func TestObservationUnits(t *testing.T) {
	tests := []struct {
		key          Key
		metricUnit   string
		imperialUnit string
	}{
		{KeyTemperature, "°C", "°C"},
		{KeyApparentTemp, "°C", "°C"},
		{KeyDewPoint, "°C", "°C"},
		{KeyWindSpeed, "m/s", "mi/h"},
		{KeyHumidity, "%", "%"},
		{KeyCloudCoverage, "%", "%"},
		{KeyPressure, "hPa", "inHg"},
		{KeyRain, "mm", "in"},
		{KeyVisibility, "km", "mi"},
		{KeySolarRadiation, "W/m2", "W/m2"},
		{KeyWindDirection, "", ""},
		{KeyWindBearing, "°", "°"},
		{KeyUVIndex, "UVI", "UVI"},
		{KeyAirQuality, "AQI", "AQI"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			metricSensor := newObservationSensor(testSetup(true), tt.key)
			assert.Equal(t, tt.metricUnit, metricSensor.UnitOfMeasurement())

			imperialSensor := newObservationSensor(testSetup(false), tt.key)
			assert.Equal(t, tt.imperialUnit, imperialSensor.UnitOfMeasurement())
		})
	}
}

func TestObservationIdentity(t *testing.T) {
	s := newObservationSensor(testSetup(true), KeyTemperature)

	assert.Equal(t, "52.52_13.405_temp", s.UniqueID())
	assert.Equal(t, "Weatherbit Temperature", s.Name())
	assert.Equal(t, "mdi:thermometer", s.Icon())
}

func TestObservationAttributes(t *testing.T) {
	s := newObservationSensor(testSetup(true), KeyTemperature)

	attrs := s.Attributes()
	require.NotNil(t, attrs)
	assert.Equal(t, entity.Attribution, attrs[entity.AttrAttribution])
	assert.Equal(t, "2026-08-21 07:00", attrs[entity.AttrUpdated])
}

func TestObservationImplementsCapabilities(t *testing.T) {
	var _ entity.Entity = (*ObservationSensor)(nil)
	var _ entity.UnitProvider = (*ObservationSensor)(nil)
	var _ entity.IconProvider = (*ObservationSensor)(nil)
	var _ entity.AttributeProvider = (*ObservationSensor)(nil)
}
