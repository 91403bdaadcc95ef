package sensor

import (
	"fmt"

	"weatherbit/coordinator"
	"weatherbit/entity"
	"weatherbit/internal/conditions"
	"weatherbit/types"
)

// ForecastSensor displays the resolved condition for one upcoming forecast
// day. The condition and icon are fixed at construction from the day's
// weather code; the attributes are recomputed from the live snapshots on
// every read.
type ForecastSensor struct {
	index     int
	forecast  *coordinator.Forecast
	current   *coordinator.Observations
	metric    bool
	uniqueID  string
	name      string
	condition conditions.Condition
}

func newForecastSensor(cfg SetupConfig, index int, day types.ForecastDay) *ForecastSensor {
	return &ForecastSensor{
		index:     index,
		forecast:  cfg.Forecast,
		current:   cfg.Current,
		metric:    cfg.IsMetric,
		uniqueID:  fmt.Sprintf("%s_forecast_day%d", cfg.Entry.DeviceKey(), index),
		name:      fmt.Sprintf("%s Forecast Day %d", platformName, index),
		condition: conditions.FromCode(day.WeatherCode),
	}
}

// UniqueID implements entity.Entity.
func (s *ForecastSensor) UniqueID() string {
	return s.uniqueID
}

// Name implements entity.Entity.
func (s *ForecastSensor) Name() string {
	return s.name
}

// State returns the condition resolved at construction, or nil when the
// day's weather code matched no known range.
func (s *ForecastSensor) State() any {
	if !s.condition.Known() {
		return nil
	}
	return string(s.condition)
}

// Icon returns the weather icon for the resolved condition. An unresolved
// condition yields an empty string so the host falls back to its default.
func (s *ForecastSensor) Icon() string {
	if !s.condition.Known() {
		return ""
	}
	return entity.MDI("weather-" + s.condition.IconName())
}

// Attributes returns the converted daily figures for this sensor's day. The
// map is rebuilt from the latest snapshots on every read, so swapped-in data
// shows up here even though the constructed condition does not change.
func (s *ForecastSensor) Attributes() map[string]any {
	day, ok := s.forecast.Day(s.index)
	if !ok {
		return nil
	}
	current := s.current.Data()
	if current == nil {
		return nil
	}
	return entity.ForecastAttributes(day, *current, s.metric)
}
