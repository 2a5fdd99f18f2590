// Package setting provides CRUD operations for system setting records.
// It is the storage collaborator of the settings service: all persistence
// flows through these functions, callers bring their own *gorm.DB (or
// transaction handle).
package setting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/models"
)

const (
	keyQueryPattern = "key = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingKeyEmpty is returned when attempting to create/update a setting with an empty key.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrSettingAlreadyExists is returned when attempting to create a setting whose key is taken.
	ErrSettingAlreadyExists = errors.New("setting already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its key.
func Get(db *gorm.DB, key string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var setting models.Setting
	result := db.Where(keyQueryPattern, key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &setting, nil
}

// GetAll retrieves all settings ordered by category and label. With
// onlyVisible set, internal settings are filtered out.
func GetAll(db *gorm.DB, onlyVisible bool) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Order("category, label")
	if onlyVisible {
		query = query.Where("visible = ?", true)
	}

	var settings []models.Setting
	result := query.Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// GetByCategory retrieves the settings of one category ordered by label.
// With onlyVisible set, internal settings are filtered out.
func GetByCategory(db *gorm.DB, category string, onlyVisible bool) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Where("category = ?", category).Order("label")
	if onlyVisible {
		query = query.Where("visible = ?", true)
	}

	var settings []models.Setting
	result := query.Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// Categories returns the distinct, non-empty category labels across all
// settings.
func Categories(db *gorm.DB) ([]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var categories []string
	result := db.Model(&models.Setting{}).
		Distinct("category").
		Where("category <> ''").
		Order("category").
		Pluck("category", &categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

// Create creates a new setting. The key must not be taken by an existing
// record.
func Create(db *gorm.DB, setting *models.Setting) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if setting == nil || setting.Key == "" {
		return nil, ErrSettingKeyEmpty
	}

	// Check if the key is already taken
	var existing models.Setting
	result := db.Where(keyQueryPattern, setting.Key).First(&existing)
	if result.Error == nil {
		return nil, ErrSettingAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	result = db.Create(setting)
	if result.Error != nil {
		return nil, result.Error
	}

	return setting, nil
}

// Save persists the current state of an existing setting record.
func Save(db *gorm.DB, setting *models.Setting) error {
	if db == nil {
		return ErrDBNil
	}
	if setting == nil || setting.Key == "" {
		return ErrSettingKeyEmpty
	}

	result := db.Save(setting)

	return result.Error
}

// Delete deletes a setting by key.
func Delete(db *gorm.DB, key string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrSettingKeyEmpty
	}

	result := db.Where(keyQueryPattern, key).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
