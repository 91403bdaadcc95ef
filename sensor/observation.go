package sensor

import (
	"fmt"

	"weatherbit/coordinator"
	"weatherbit/entity"
	"weatherbit/internal/units"
	"weatherbit/types"
)

const (
	mphPerMs  = 2.23693629
	mmPerInch = 25.4
)

// ObservationSensor displays one instantaneous reading from the
// current-conditions snapshot. It reads through the coordinator on every
// access, so a snapshot swap is visible on the next read without any
// per-entity refresh bookkeeping.
type ObservationSensor struct {
	key      Key
	entry    CatalogEntry
	current  *coordinator.Observations
	metric   bool
	uniqueID string
	name     string
}

func newObservationSensor(cfg SetupConfig, key Key) *ObservationSensor {
	entry := catalog[key]
	return &ObservationSensor{
		key:      key,
		entry:    entry,
		current:  cfg.Current,
		metric:   cfg.IsMetric,
		uniqueID: fmt.Sprintf("%s_%s", cfg.Entry.DeviceKey(), key),
		name:     fmt.Sprintf("%s %s", platformName, entry.Label),
	}
}

// UniqueID implements entity.Entity.
func (s *ObservationSensor) UniqueID() string {
	return s.uniqueID
}

// Name implements entity.Entity.
func (s *ObservationSensor) Name() string {
	return s.name
}

// State returns the reading converted for the configured unit system, or nil
// when no snapshot is available.
func (s *ObservationSensor) State() any {
	data := s.current.Data()
	if data == nil {
		return nil
	}
	return convertState(s.entry.Category, s.entry.Read(data), s.metric)
}

// UnitOfMeasurement returns the display unit for this sensor's category in
// the configured unit system. Cardinal wind direction is unitless.
func (s *ObservationSensor) UnitOfMeasurement() string {
	switch s.entry.Category {
	case types.CategoryTemperature:
		return entity.UnitCelsius
	case types.CategoryWind:
		if s.metric {
			return entity.UnitMetersPerSec
		}
		return entity.UnitMilesPerHour
	case types.CategoryHumidity, types.CategoryCloudCoverage:
		return entity.UnitPercent
	case types.CategoryPressure:
		if s.metric {
			return entity.UnitHPa
		}
		return entity.UnitInHg
	case types.CategoryRain:
		if s.metric {
			return entity.UnitMillimeters
		}
		return entity.UnitInches
	case types.CategoryDistance:
		if s.metric {
			return entity.UnitKilometers
		}
		return entity.UnitMiles
	case types.CategoryIrradiance:
		return entity.UnitIrradiance
	case types.CategoryWindBearing:
		return entity.UnitDegrees
	case types.CategoryUVIndex:
		return entity.UnitUVIndex
	case types.CategoryAirQuality:
		return entity.UnitAQI
	default:
		return ""
	}
}

// Icon implements entity.IconProvider.
func (s *ObservationSensor) Icon() string {
	return entity.MDI(s.entry.Icon)
}

// Attributes carries the attribution and the observation time of the current
// snapshot.
func (s *ObservationSensor) Attributes() map[string]any {
	data := s.current.Data()
	if data == nil {
		return nil
	}
	return map[string]any{
		entity.AttrAttribution: entity.Attribution,
		entity.AttrUpdated:     data.ObservedLocal,
	}
}

// convertState applies the display conversion for a category. Only float64
// readings convert; cardinal text and integer readings pass through as-is.
func convertState(category types.Category, value any, metric bool) any {
	v, ok := value.(float64)
	if !ok {
		return value
	}

	switch category {
	case types.CategoryWind:
		if metric {
			return units.RoundTo(v, 1)
		}
		return units.RoundTo(v*mphPerMs, 2)
	case types.CategoryPressure:
		if metric {
			return v
		}
		return units.RoundTo(units.HPaToInHg(v), 2)
	case types.CategoryRain:
		if metric {
			return units.RoundTo(v, 1)
		}
		return units.RoundTo(v/mmPerInch, 2)
	case types.CategoryDistance:
		if metric {
			return v
		}
		// Imperial visibility displays as whole miles, truncated.
		return int(units.KmToMiles(v))
	case types.CategoryUVIndex:
		return units.RoundTo(v, 1)
	default:
		return v
	}
}
