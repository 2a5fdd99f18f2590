package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// AuditEventType classifies an audit log entry.
type AuditEventType string

const (
	// AuditEventCreate marks the creation of a resource.
	AuditEventCreate AuditEventType = "create"
	// AuditEventUpdate marks the modification of a resource.
	AuditEventUpdate AuditEventType = "update"
	// AuditEventDelete marks the deletion of a resource.
	AuditEventDelete AuditEventType = "delete"
)

// AuditLog is one append-only record of who changed what and when.
// Entries reference resources by type and id only; they survive the deletion
// of the resource they describe and are never mutated or deleted themselves.
type AuditLog struct {
	// ID is the unique identifier for the entry.
	ID uint64 `gorm:"primaryKey"`
	// EventType is the change classification (create, update, delete).
	EventType AuditEventType `gorm:"size:50;index;not null"`
	// ResourceType names the kind of resource affected (setting, user, ...).
	ResourceType string `gorm:"size:50;not null"`
	// ResourceID is the identity of the affected resource.
	ResourceID uint64 `gorm:"index"`
	// Action is the human classification of what was done.
	Action string `gorm:"size:100;not null"`
	// ActorID identifies the user who performed the change.
	ActorID uint64 `gorm:"index"`
	// ActorRole is the actor's role at the time of the change.
	ActorRole string `gorm:"size:20"`
	// Success records whether the action completed.
	Success bool `gorm:"not null;default:true"`
	// OldValues holds the state before the change (update and delete).
	OldValues datatypes.JSONMap
	// NewValues holds the state after the change (create and update).
	NewValues datatypes.JSONMap
	// Description is a human-readable summary of the change.
	Description string `gorm:"type:text"`
	// CreatedAt is the timestamp of the change (managed by GORM).
	CreatedAt time.Time `gorm:"index"`
}

// TableName sets the database table name for AuditLog.
func (AuditLog) TableName() string {
	return "audit_logs"
}

// NewDataChange builds an audit entry for a data modification. The event
// type is derived: entries with old values are updates, entries without are
// creates, and actions mentioning deletion are deletes.
func NewDataChange(
	actorID uint64,
	actorRole string,
	action string,
	resourceType string,
	resourceID uint64,
	oldValues datatypes.JSONMap,
	newValues datatypes.JSONMap,
	description string,
) *AuditLog {
	eventType := AuditEventCreate
	if oldValues != nil {
		eventType = AuditEventUpdate
	}

	if strings.Contains(strings.ToLower(action), "delete") {
		eventType = AuditEventDelete
	}

	if description == "" {
		description = action
	}

	return &AuditLog{
		EventType:    eventType,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Action:       action,
		ActorID:      actorID,
		ActorRole:    actorRole,
		Success:      true,
		OldValues:    oldValues,
		NewValues:    newValues,
		Description:  description,
	}
}
