package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DROP-ML/MoneyBalance/internal/core"
	"github.com/DROP-ML/MoneyBalance/internal/docstore"
	"github.com/DROP-ML/MoneyBalance/internal/log"
)

// SettingsRepository manages the singleton AppSettings record. There is no
// collection and no id: exactly one record exists per store, created once
// by bootstrap and thereafter mutated in place.
type SettingsRepository struct {
	store docstore.Store
	log   *log.Logger
}

func NewSettingsRepository(store docstore.Store, logger *log.Logger) *SettingsRepository {
	return &SettingsRepository{
		store: store,
		log:   logger.WithComponent(log.ComponentRepository).With(log.FieldKey, KeySettings),
	}
}

// Get returns the settings record. Absent, unreadable, or corrupt data
// reports ok=false with the failure logged; reads never error.
func (r *SettingsRepository) Get(ctx context.Context) (core.AppSettings, bool) {
	value, ok, err := r.store.Get(ctx, KeySettings)
	if err != nil {
		r.log.WarnContext(ctx, "Treating unreadable settings as absent",
			log.FieldError, err.Error())
		return core.AppSettings{}, false
	}
	if !ok {
		return core.AppSettings{}, false
	}

	var settings core.AppSettings
	if err := json.Unmarshal(value, &settings); err != nil {
		r.log.WarnContext(ctx, "Treating corrupt settings as absent",
			log.FieldError, err.Error())
		return core.AppSettings{}, false
	}
	return settings, true
}

// Save persists the settings record, replacing any previous one.
func (r *SettingsRepository) Save(ctx context.Context, settings core.AppSettings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := r.store.Set(ctx, KeySettings, value); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
