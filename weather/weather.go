// Package weather implements the Weatherbit weather platform: one entity per
// config entry that presents the whole station as a single unit, with today's
// condition as state, the live observation figures as attributes, and the
// upcoming days available as a forecast list.
//
// The weather entity is why the refresh collaborator delivers eight forecast
// days: day 0 drives this entity's condition, days 1 through 7 drive the
// per-day sensors of the sensor platform.
package weather

import (
	"fmt"
	"log/slog"

	"weatherbit/config"
	"weatherbit/coordinator"
	"weatherbit/entity"
	"weatherbit/internal/conditions"
	"weatherbit/types"
)

// SetupConfig holds the collaborators platform setup needs for one config
// entry.
type SetupConfig struct {
	Entry       *config.Entry
	Current     *coordinator.Observations
	Forecast    *coordinator.Forecast
	IsMetric    bool
	AddEntities entity.AddEntitiesFunc
	Logger      *slog.Logger
}

// Weather is the station-level entity. Every accessor reads through the
// coordinators, so a snapshot swap is visible on the next read.
type Weather struct {
	current  *coordinator.Observations
	forecast *coordinator.Forecast
	metric   bool
	uniqueID string
	name     string
}

func newWeather(cfg SetupConfig) *Weather {
	return &Weather{
		current:  cfg.Current,
		forecast: cfg.Forecast,
		metric:   cfg.IsMetric,
		uniqueID: fmt.Sprintf("%s_weatherbit", cfg.Entry.DeviceKey()),
		name:     cfg.Entry.Name,
	}
}

// UniqueID implements entity.Entity.
func (w *Weather) UniqueID() string {
	return w.uniqueID
}

// Name implements entity.Entity.
func (w *Weather) Name() string {
	return w.name
}

// State returns today's resolved condition, or nil when the forecast is
// absent or day 0 carries a code outside every known range.
func (w *Weather) State() any {
	day, ok := w.forecast.Day(0)
	if !ok {
		return nil
	}
	c := conditions.FromCode(day.WeatherCode)
	if !c.Known() {
		return nil
	}
	return string(c)
}

// Attributes returns the live observation figures. Values stay in
// Weatherbit's metric units; the host applies its own display conversion for
// weather entities.
func (w *Weather) Attributes() map[string]any {
	data := w.current.Data()
	if data == nil {
		return nil
	}
	return map[string]any{
		entity.AttrAttribution: entity.Attribution,
		entity.AttrUpdated:     data.ObservedLocal,
		entity.AttrTemperature: data.Temperature,
		entity.AttrHumidity:    data.Humidity,
		entity.AttrPressure:    data.Pressure,
		entity.AttrWindSpeed:   data.WindSpeed,
		entity.AttrWindBearing: data.WindDirDegrees,
		entity.AttrVisibility:  data.Visibility,
	}
}

// Forecast returns the attribute bundle for each upcoming day (indexes 1
// through 7), rebuilt from the live snapshots on every call. The bundles use
// the same conversion rules as the forecast-day sensors, plus the day's
// resolved condition when its code is known. Nil when either snapshot is
// absent or short.
func (w *Weather) Forecast() []map[string]any {
	days := w.forecast.Data()
	if len(days) < types.ForecastDays {
		return nil
	}
	current := w.current.Data()
	if current == nil {
		return nil
	}

	out := make([]map[string]any, 0, types.ForecastDays-1)
	for i := 1; i < types.ForecastDays; i++ {
		attrs := entity.ForecastAttributes(days[i], *current, w.metric)
		if c := conditions.FromCode(days[i].WeatherCode); c.Known() {
			attrs[entity.AttrCondition] = string(c)
		}
		out = append(out, attrs)
	}
	return out
}

// SetupEntry builds the weather entity for one config entry and hands it to
// the registration callback. Like the sensor platform, missing or short
// snapshots register nothing so the host can retry after the next refresh.
func SetupEntry(cfg SetupConfig) []entity.Entity {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Current == nil || cfg.Current.Data() == nil {
		logger.Debug("weather setup skipped, no current conditions snapshot",
			"entry_id", cfg.Entry.ID,
		)
		return nil
	}
	if cfg.Forecast == nil || cfg.Forecast.Len() < types.ForecastDays {
		days := 0
		if cfg.Forecast != nil {
			days = cfg.Forecast.Len()
		}
		logger.Debug("weather setup skipped, forecast snapshot absent or short",
			"entry_id", cfg.Entry.ID,
			"days", days,
			"need", types.ForecastDays,
		)
		return nil
	}

	entities := []entity.Entity{newWeather(cfg)}

	logger.Info("weather platform ready",
		"entry_id", cfg.Entry.ID,
		"device_key", cfg.Entry.DeviceKey(),
	)

	if cfg.AddEntities != nil {
		cfg.AddEntities(entities)
	}
	return entities
}
