package models

import (
	"slices"
	"time"

	"gorm.io/datatypes"
)

// Setting represents one named, typed configuration entry stored in the
// database. The raw value is kept as text and parsed on demand according to
// the declared ValueType.
type Setting struct {
	// ID is the unique identifier for the setting.
	ID uint64 `gorm:"primaryKey"`
	// Key is the unique lookup key, immutable after creation.
	Key string `gorm:"uniqueIndex;size:100;not null"`
	// Category groups settings for display and bulk retrieval
	// (inventory, ui, security, notifications).
	Category string `gorm:"index;size:50;not null"`
	// RawValue is the stored text representation, parsed per ValueType.
	RawValue string `gorm:"column:raw_value;type:text;not null"`
	// ValueType declares how RawValue is parsed (int, float, bool, string, json).
	ValueType ValueType `gorm:"size:20;not null"`
	// Label is the human-readable name shown in admin interfaces.
	Label string `gorm:"size:200;not null"`
	// Description explains what the setting does.
	Description string `gorm:"type:text"`
	// HelpText is additional guidance for administrators.
	HelpText string `gorm:"type:text"`
	// MinValue is the inclusive lower bound for numeric settings (empty = unbounded).
	MinValue string `gorm:"size:50"`
	// MaxValue is the inclusive upper bound for numeric settings (empty = unbounded).
	MaxValue string `gorm:"size:50"`
	// AllowedValues restricts string settings to an enumerated set (empty = any).
	AllowedValues datatypes.JSONSlice[string]
	// Required settings can never be deleted. No column default: a zero
	// value must round-trip as false.
	Required bool `gorm:"not null"`
	// Visible settings are surfaced in admin interfaces; invisible ones are internal.
	Visible bool `gorm:"not null"`
	// RestartRequired marks settings whose change only takes effect after a restart.
	RestartRequired bool `gorm:"not null"`
	// CreatedAt is the creation timestamp (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the last modification timestamp (managed by GORM).
	UpdatedAt time.Time
}

// TableName sets the database table name for Setting.
func (Setting) TableName() string {
	return "system_settings"
}

// ParsedValue parses the stored raw value as the declared type.
func (s *Setting) ParsedValue() (Value, error) {
	return ParseValue(s.ValueType, s.RawValue)
}

// ValueOr parses the stored raw value, falling back to def when the stored
// text is malformed. Retrieval fails closed rather than raising.
func (s *Setting) ValueOr(def Value) Value {
	v, err := s.ParsedValue()
	if err != nil {
		return def
	}

	return v
}

// Validate reports whether the candidate value is acceptable for this
// setting: the tag must match the declared type, numeric values must lie
// within [MinValue, MaxValue] and string values must be in AllowedValues
// when an enumeration is declared. Callers must check the result before
// persisting.
func (s *Setting) Validate(v Value) bool {
	declared := s.ValueType.Normalize()
	if v.Type() != declared {
		return false
	}

	switch declared { //nolint:exhaustive
	case TypeInt:
		return s.validateIntRange(v.Int())
	case TypeFloat:
		return s.validateFloatRange(v.Float())
	case TypeString:
		if len(s.AllowedValues) > 0 {
			return slices.Contains(s.AllowedValues, v.Str())
		}
	}

	return true
}

func (s *Setting) validateIntRange(v int64) bool {
	if s.MinValue != "" {
		if bound, err := ParseValue(TypeInt, s.MinValue); err == nil && v < bound.Int() {
			return false
		}
	}

	if s.MaxValue != "" {
		if bound, err := ParseValue(TypeInt, s.MaxValue); err == nil && v > bound.Int() {
			return false
		}
	}

	return true
}

func (s *Setting) validateFloatRange(v float64) bool {
	if s.MinValue != "" {
		if bound, err := ParseValue(TypeFloat, s.MinValue); err == nil && v < bound.Float() {
			return false
		}
	}

	if s.MaxValue != "" {
		if bound, err := ParseValue(TypeFloat, s.MaxValue); err == nil && v > bound.Float() {
			return false
		}
	}

	return true
}

// SetValue writes the value into the storage representation. Validation is
// assumed to have passed already.
func (s *Setting) SetValue(v Value) {
	s.RawValue = v.Encode()
}

// AuditValues produces the key/value snapshot of this setting used as an
// audit payload. It carries what is needed to reconstruct the record, nothing
// more.
func (s *Setting) AuditValues() datatypes.JSONMap {
	return datatypes.JSONMap{
		"key":      s.Key,
		"category": s.Category,
		"value":    s.RawValue,
		"type":     string(s.ValueType),
		"label":    s.Label,
		"required": s.Required,
		"visible":  s.Visible,
	}
}
