// Package store implements the CMS document store.
package store

import (
	"encoding/json"
	"time"

	apperrors "github.com/yuhsien/floormat-cms/internal/errors"
	"github.com/yuhsien/floormat-cms/internal/logging"
	"github.com/yuhsien/floormat-cms/internal/models"
	"github.com/yuhsien/floormat-cms/internal/uuid"
)

// appendJournal records a successful mutation in the persisted write
// journal, trimming it to the configured cap. Journal failures are
// logged and never fail the mutation that triggered them.
// Callers must hold s.mu.
func (s *Store) appendJournal(op, entity, entityID string) {
	limit := s.opts.JournalLimit
	if limit <= 0 {
		limit = DefaultJournalLimit
	}

	entries := s.readJournal()
	entries = append(entries, models.JournalEntry{
		ID:        uuid.New(),
		Op:        op,
		Entity:    entity,
		EntityID:  entityID,
		Timestamp: time.Now().Unix(),
	})
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		logging.Warn("failed to serialize write journal", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.kv.Set(JournalKey, string(data)); err != nil {
		logging.Warn("failed to persist write journal", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// readJournal loads the persisted journal. A corrupt or unreadable
// journal is treated as empty; the audit trail is best-effort.
func (s *Store) readJournal() []models.JournalEntry {
	raw, ok, err := s.kv.Get(JournalKey)
	if err != nil || !ok {
		return nil
	}
	var entries []models.JournalEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logging.Warn("write journal is corrupt, starting fresh")
		return nil
	}
	return entries
}

// Journal returns the persisted write journal, oldest entry first.
func (s *Store) Journal() ([]models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(JournalKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, "failed to read journal", err)
	}
	if !ok {
		return nil, nil
	}
	var entries []models.JournalEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrParse, "journal is corrupt", err)
	}
	return entries, nil
}
