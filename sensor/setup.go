package sensor

import (
	"log/slog"

	"weatherbit/config"
	"weatherbit/coordinator"
	"weatherbit/entity"
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

// SetupEntry builds every sensor entity for one config entry and hands them
// to the registration callback. Missing or short snapshots are not an error:
// setup registers nothing so the host can retry after the next refresh.
//
// When both snapshots are present the result is one observation sensor per
// catalog entry plus one forecast sensor per upcoming day (indexes 1 through
// 7; day 0 belongs to the weather platform).
func SetupEntry(cfg SetupConfig) []entity.Entity {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Current == nil || cfg.Current.Data() == nil {
		logger.Debug("sensor setup skipped, no current conditions snapshot",
			"entry_id", cfg.Entry.ID,
		)
		return nil
	}
	if cfg.Forecast == nil || cfg.Forecast.Len() < types.ForecastDays {
		days := 0
		if cfg.Forecast != nil {
			days = cfg.Forecast.Len()
		}
		logger.Debug("sensor setup skipped, forecast snapshot absent or short",
			"entry_id", cfg.Entry.ID,
			"days", days,
			"need", types.ForecastDays,
		)
		return nil
	}

	entities := make([]entity.Entity, 0, len(catalog)+types.ForecastDays-1)
	for _, key := range Keys() {
		entities = append(entities, newObservationSensor(cfg, key))
	}
	for i := 1; i < types.ForecastDays; i++ {
		day, _ := cfg.Forecast.Day(i)
		entities = append(entities, newForecastSensor(cfg, i, day))
	}

	logger.Info("sensor platform ready",
		"entry_id", cfg.Entry.ID,
		"device_key", cfg.Entry.DeviceKey(),
		"entities", len(entities),
	)

	if cfg.AddEntities != nil {
		cfg.AddEntities(entities)
	}
	return entities
}
