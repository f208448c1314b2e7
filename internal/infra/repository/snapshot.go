package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"equipment-rental/internal/infra"
	"equipment-rental/internal/infra/recordstore"
)

var errNullRecord = errors.New("record holds null instead of a collection")

// snapshot reads and writes one named record as JSON.
type snapshot struct {
	store  recordstore.Store
	name   string
	logger *slog.Logger
}

// load decodes the record into v. It reports false when the record is absent
// or malformed so the caller can fall back to its default collection.
func (s snapshot) load(ctx context.Context, v any) (bool, error) {
	payload, err := s.store.Get(ctx, s.name)
	if errors.Is(err, recordstore.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, s.name, "failed to read record", err)
	}
	if bytes.Equal(bytes.TrimSpace(payload), []byte("null")) {
		s.malformed(errNullRecord)
		return false, nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		s.malformed(err)
		return false, nil
	}
	return true, nil
}

func (s snapshot) save(ctx context.Context, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, s.name, "failed to encode record", err)
	}
	if err := s.store.Put(ctx, s.name, payload); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, s.name, "failed to persist record", err)
	}
	return nil
}

func (s snapshot) malformed(err error) {
	s.logger.Warn("Malformed record, using defaults",
		slog.String("record", s.name),
		slog.String("error", err.Error()))
}
