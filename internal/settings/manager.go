package settings

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/controller/setting"
	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/models"
)

// Manager owns the in-process cache of parsed setting values. The cache is a
// single immutable snapshot behind an atomic pointer: Reload builds a fresh
// map off to the side and swaps the pointer, so concurrent readers see either
// the old or the fully-new snapshot, never a mix.
type Manager struct {
	db       *gorm.DB
	snapshot atomic.Pointer[map[string]models.Value]
}

// NewManager creates a Manager reading through the given database handle.
// The cache starts empty and is populated on first access.
func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

// Get returns the cached parsed value for key. An empty cache triggers a full
// reload before answering. Unknown keys and reload failures yield def.
func (m *Manager) Get(key string, def models.Value) models.Value {
	snap := m.snapshot.Load()
	if snap == nil {
		if err := m.Reload(); err != nil {
			log.Error().Err(err).Str("key", key).Msg("settings cache reload failed, serving default")
			return def
		}

		snap = m.snapshot.Load()
	}

	if v, ok := (*snap)[key]; ok {
		return v
	}

	return def
}

// Reload atomically replaces the entire cached mapping with a fresh read of
// all persisted records, visible and internal alike. Records whose stored
// text no longer parses are skipped: retrieval fails closed to the caller's
// default instead of surfacing garbage.
func (m *Manager) Reload() error {
	records, err := setting.GetAll(m.db, false)
	if err != nil {
		return err
	}

	next := make(map[string]models.Value, len(records))

	for i := range records {
		v, err := records[i].ParsedValue()
		if err != nil {
			log.Warn().Err(err).
				Str("key", records[i].Key).
				Msg("skipping setting with malformed stored value")

			continue
		}

		next[records[i].Key] = v
	}

	m.snapshot.Store(&next)

	return nil
}

// Invalidate drops the snapshot so the next read repopulates from storage.
func (m *Manager) Invalidate() {
	m.snapshot.Store(nil)
}
