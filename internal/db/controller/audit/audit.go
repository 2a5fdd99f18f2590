// Package audit provides append and query operations for the audit trail.
// The trail is append-only: there is deliberately no update or delete here.
package audit

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/models"
)

const defaultListLimit = 100

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrEntryNil is returned when attempting to append a nil entry.
	ErrEntryNil = errors.New("audit entry cannot be nil")
)

// Filter narrows down audit trail queries. Zero values mean "no filter".
type Filter struct {
	ActorID      uint64
	ResourceType string
	ResourceID   uint64
	EventType    models.AuditEventType
	Limit        int
	Offset       int
}

// Append persists a new audit entry.
func Append(db *gorm.DB, entry *models.AuditLog) error {
	if db == nil {
		return ErrDBNil
	}
	if entry == nil {
		return ErrEntryNil
	}

	result := db.Create(entry)

	return result.Error
}

// List returns audit entries matching the filter, newest first.
func List(db *gorm.DB, filter Filter) ([]models.AuditLog, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := applyFilter(db, filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var entries []models.AuditLog
	result := query.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// Count returns the number of audit entries matching the filter.
func Count(db *gorm.DB, filter Filter) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := applyFilter(db, filter).Model(&models.AuditLog{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func applyFilter(db *gorm.DB, filter Filter) *gorm.DB {
	query := db
	if filter.ActorID != 0 {
		query = query.Where("actor_id = ?", filter.ActorID)
	}

	if filter.ResourceType != "" {
		query = query.Where("resource_type = ?", filter.ResourceType)
	}

	if filter.ResourceID != 0 {
		query = query.Where("resource_id = ?", filter.ResourceID)
	}

	if filter.EventType != "" {
		query = query.Where("event_type = ?", filter.EventType)
	}

	return query
}
