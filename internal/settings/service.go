package settings

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/controller/audit"
	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/controller/setting"
	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/models"
)

// ResourceTypeSetting is the resource type recorded in audit entries written
// by this service.
const ResourceTypeSetting = "setting"

// Actor identifies who performs a mutation, for the audit trail.
type Actor struct {
	ID   uint64
	Role string
}

// Service is the sole entry point for querying and mutating system settings.
// Every mutation follows the same protocol: validate, persist and audit in
// one transaction, then reload the cache. Storage errors never escape; they
// are logged and reported as a Status.
type Service struct {
	db      *gorm.DB
	manager *Manager
}

// NewService creates a settings service over the given database handle with
// a fresh cache Manager.
func NewService(db *gorm.DB) *Service {
	return &Service{
		db:      db,
		manager: NewManager(db),
	}
}

// All returns all settings ordered by category and label. With onlyVisible
// set (the default for listing UIs), internal settings are filtered out.
func (s *Service) All(onlyVisible bool) ([]models.Setting, Status) {
	records, err := setting.GetAll(s.db, onlyVisible)
	if err != nil {
		log.Error().Err(err).Msg("failed to list settings")
		return nil, StatusStorageFailed
	}

	return records, StatusOK
}

// ByCategory returns the settings of one category ordered by label.
func (s *Service) ByCategory(category string, onlyVisible bool) ([]models.Setting, Status) {
	records, err := setting.GetByCategory(s.db, category, onlyVisible)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("failed to list settings by category")
		return nil, StatusStorageFailed
	}

	return records, StatusOK
}

// Get returns the setting record for key. A missing key is reported as
// StatusNotFound, not as an error.
func (s *Service) Get(key string) (*models.Setting, Status) {
	record, err := setting.Get(s.db, key)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) || errors.Is(err, setting.ErrSettingKeyEmpty) {
			return nil, StatusNotFound
		}

		log.Error().Err(err).Str("key", key).Msg("failed to load setting")

		return nil, StatusStorageFailed
	}

	return record, StatusOK
}

// Categories returns the distinct, non-empty category labels.
func (s *Service) Categories() ([]string, Status) {
	categories, err := setting.Categories(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list setting categories")
		return nil, StatusStorageFailed
	}

	return categories, StatusOK
}

// Value returns the cached parsed value for key, or def when the key is
// unknown or its stored value is unusable. This path never queries storage
// once the cache is warm.
func (s *Service) Value(key string, def models.Value) models.Value {
	return s.manager.Get(key, def)
}

// Int returns an integer setting value, or def on missing key or type
// mismatch.
func (s *Service) Int(key string, def int64) int64 {
	v := s.manager.Get(key, models.IntValue(def))
	if v.Type() != models.TypeInt {
		return def
	}

	return v.Int()
}

// Float returns a float setting value, or def on missing key or type
// mismatch.
func (s *Service) Float(key string, def float64) float64 {
	v := s.manager.Get(key, models.FloatValue(def))
	if v.Type() != models.TypeFloat {
		return def
	}

	return v.Float()
}

// Bool returns a boolean setting value, or def on missing key or type
// mismatch.
func (s *Service) Bool(key string, def bool) bool {
	v := s.manager.Get(key, models.BoolValue(def))
	if v.Type() != models.TypeBool {
		return def
	}

	return v.Bool()
}

// String returns a string setting value, or def on missing key or type
// mismatch.
func (s *Service) String(key string, def string) string {
	v := s.manager.Get(key, models.StringValue(def))
	if v.Type() != models.TypeString {
		return def
	}

	return v.Str()
}

// Update changes the value of an existing setting. The candidate is coerced
// to the record's declared type and validated against its constraints; the
// new value and the audit entry (old vs. new) are committed in a single
// transaction, then the cache is reloaded. A failed step leaves the stored
// value unchanged and writes no audit entry.
func (s *Service) Update(key string, candidate any, actor Actor) Status {
	record, status := s.Get(key)
	if !status.OK() {
		return status
	}

	cand, err := models.CoerceValue(record.ValueType, candidate)
	if err != nil || !record.Validate(cand) {
		return StatusInvalidValue
	}

	oldValue := record.ValueOr(models.StringValue(record.RawValue))
	record.SetValue(cand)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := setting.Save(tx, record); err != nil {
			return err
		}

		entry := models.NewDataChange(
			actor.ID,
			actor.Role,
			"setting changed",
			ResourceTypeSetting,
			record.ID,
			datatypes.JSONMap{"value": oldValue.String()},
			datatypes.JSONMap{"value": cand.String()},
			fmt.Sprintf("Setting %q changed from %q to %q", record.Label, oldValue, cand),
		)

		return audit.Append(tx, entry)
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("setting update failed")
		return StatusStorageFailed
	}

	return s.reloadAfterMutation(key)
}

// BulkUpdate applies Update independently per key. One key's failure does
// not block the others; the result reports the per-key outcome.
func (s *Service) BulkUpdate(updates map[string]any, actor Actor) map[string]Status {
	results := make(map[string]Status, len(updates))

	for key, candidate := range updates {
		results[key] = s.Update(key, candidate, actor)
	}

	return results
}

// Create persists a new setting record and writes a "created" audit entry
// carrying the full new record, in one transaction. The stored value must
// parse as the declared type and pass the record's own constraints.
func (s *Service) Create(record *models.Setting, actor Actor) (*models.Setting, Status) {
	if record == nil || record.Key == "" {
		return nil, StatusInvalidValue
	}

	record.ValueType = record.ValueType.Normalize()

	parsed, err := record.ParsedValue()
	if err != nil || !record.Validate(parsed) {
		return nil, StatusInvalidValue
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := setting.Create(tx, record); err != nil {
			return err
		}

		entry := models.NewDataChange(
			actor.ID,
			actor.Role,
			"setting created",
			ResourceTypeSetting,
			record.ID,
			nil,
			record.AuditValues(),
			fmt.Sprintf("New setting created: %s", record.Label),
		)

		return audit.Append(tx, entry)
	})
	if err != nil {
		if errors.Is(err, setting.ErrSettingAlreadyExists) {
			return nil, StatusDuplicateKey
		}

		log.Error().Err(err).Str("key", record.Key).Msg("setting creation failed")

		return nil, StatusStorageFailed
	}

	if status := s.reloadAfterMutation(record.Key); !status.OK() {
		return nil, status
	}

	return record, StatusOK
}

// Delete removes a setting unless it is required. The deletion and the
// "deleted" audit entry carrying the full prior record are committed in one
// transaction.
func (s *Service) Delete(key string, actor Actor) Status {
	record, status := s.Get(key)
	if !status.OK() {
		return status
	}

	if record.Required {
		return StatusProtected
	}

	oldValues := record.AuditValues()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := setting.Delete(tx, key); err != nil {
			return err
		}

		entry := models.NewDataChange(
			actor.ID,
			actor.Role,
			"setting deleted",
			ResourceTypeSetting,
			record.ID,
			oldValues,
			nil,
			fmt.Sprintf("Setting deleted: %s", record.Label),
		)

		return audit.Append(tx, entry)
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("setting deletion failed")
		return StatusStorageFailed
	}

	return s.reloadAfterMutation(key)
}

// reloadAfterMutation refreshes the cache after a committed mutation. When
// the reload itself fails the commit already landed, so the snapshot is
// dropped to force repopulation on the next read and the operation is
// reported as failed.
func (s *Service) reloadAfterMutation(key string) Status {
	if err := s.manager.Reload(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("cache reload after mutation failed")
		s.manager.Invalidate()

		return StatusStorageFailed
	}

	return StatusOK
}
