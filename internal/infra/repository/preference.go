package repository

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"equipment-rental/internal/domain/user"
	"equipment-rental/internal/infra/recordstore"
	"equipment-rental/internal/infra/repository/converter"
)

type PreferenceRepository struct {
	snap  snapshot
	mu    sync.RWMutex
	prefs converter.PreferencesRecord
}

func NewPreferenceRepository(ctx context.Context, store recordstore.Store, logger *slog.Logger) (*PreferenceRepository, error) {
	r := &PreferenceRepository{
		snap:  snapshot{store: store, name: recordstore.RecordPreferences, logger: logger},
		prefs: converter.PreferencesRecord{},
	}

	var record converter.PreferencesRecord
	found, err := r.snap.load(ctx, &record)
	if err != nil {
		return nil, err
	}
	if found && record != nil {
		r.prefs = record
	}
	return r, nil
}

// Get returns the defaults for users who never saved anything.
func (r *PreferenceRepository) Get(_ context.Context, email string) (user.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.prefs[email]
	if !ok {
		return user.DefaultPreferences(), nil
	}
	return converter.PreferenceFromRecord(rec), nil
}

func (r *PreferenceRepository) Save(ctx context.Context, email string, prefs user.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := maps.Clone(r.prefs)
	next[email] = converter.PreferenceToRecord(prefs)

	if err := r.snap.save(ctx, next); err != nil {
		return err
	}
	r.prefs = next
	return nil
}
