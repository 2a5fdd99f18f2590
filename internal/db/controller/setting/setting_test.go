package setting

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedSettings inserts test data into the database.
func seedSettings(t *testing.T, db *gorm.DB, settings []models.Setting) {
	t.Helper()
	for _, s := range settings {
		err := db.Create(&s).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func intSetting(key, category, label, value string) models.Setting {
	return models.Setting{
		Key:       key,
		Category:  category,
		Label:     label,
		RawValue:  value,
		ValueType: models.TypeInt,
		Required:  false,
		Visible:   true,
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		settingKey    string
		seedData      []models.Setting
		expectedError error
		expectedValue string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			settingKey:    "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty key",
			dbParam:       db,
			settingKey:    "",
			expectedError: ErrSettingKeyEmpty,
		},
		{
			name:          "setting not found",
			dbParam:       db,
			settingKey:    "nonexistent",
			expectedError: ErrSettingNotFound,
		},
		{
			name:       "successful get",
			dbParam:    db,
			settingKey: "ui.items_per_page",
			seedData: []models.Setting{
				intSetting("ui.items_per_page", "ui", "Items per page", "50"),
			},
			expectedValue: "50",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Clean database for each test
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM system_settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			setting, err := Get(tc.dbParam, tc.settingKey)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, setting)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, setting)
				assert.Equal(t, tc.settingKey, setting.Key)
				assert.Equal(t, tc.expectedValue, setting.RawValue)
			}
		})
	}
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	visible := intSetting("ui.items_per_page", "ui", "Items per page", "50")
	internal := intSetting("internal.trace_buffer", "internal", "Trace buffer", "1024")
	internal.Visible = false

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		onlyVisible   bool
		seedData      []models.Setting
		expectedError error
		expectedKeys  []string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			expectedError: ErrDBNil,
		},
		{
			name:         "empty database",
			dbParam:      db,
			expectedKeys: []string{},
		},
		{
			name:         "all settings",
			dbParam:      db,
			onlyVisible:  false,
			seedData:     []models.Setting{visible, internal},
			expectedKeys: []string{"internal.trace_buffer", "ui.items_per_page"},
		},
		{
			name:         "only visible filters internal",
			dbParam:      db,
			onlyVisible:  true,
			seedData:     []models.Setting{visible, internal},
			expectedKeys: []string{"ui.items_per_page"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM system_settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			settings, err := GetAll(tc.dbParam, tc.onlyVisible)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, settings)

				return
			}

			require.NoError(t, err)

			keys := make([]string, 0, len(settings))
			for i := range settings {
				keys = append(keys, settings[i].Key)
			}

			assert.Equal(t, tc.expectedKeys, keys)
		})
	}
}

func TestGetAllOrdering(t *testing.T) {
	db := setupTestDB(t)

	seedSettings(t, db, []models.Setting{
		intSetting("ui.refresh_interval", "ui", "Auto refresh", "300"),
		intSetting("inventory.cable.default_min_stock", "inventory", "Min stock", "5"),
		intSetting("ui.items_per_page", "ui", "Items per page", "50"),
	})

	settings, err := GetAll(db, false)
	require.NoError(t, err)
	require.Len(t, settings, 3)

	// ordered by category first, label second
	assert.Equal(t, "inventory.cable.default_min_stock", settings[0].Key)
	assert.Equal(t, "ui.refresh_interval", settings[1].Key)
	assert.Equal(t, "ui.items_per_page", settings[2].Key)
}

func TestGetByCategory(t *testing.T) {
	db := setupTestDB(t)

	seedSettings(t, db, []models.Setting{
		intSetting("ui.refresh_interval", "ui", "Auto refresh", "300"),
		intSetting("ui.items_per_page", "ui", "Items per page", "50"),
		intSetting("inventory.cable.default_min_stock", "inventory", "Min stock", "5"),
	})

	settings, err := GetByCategory(db, "ui", true)
	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Equal(t, "Auto refresh", settings[0].Label)
	assert.Equal(t, "Items per page", settings[1].Label)

	settings, err = GetByCategory(db, "unknown", true)
	require.NoError(t, err)
	assert.Empty(t, settings)

	_, err = GetByCategory(nil, "ui", true)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestCategories(t *testing.T) {
	db := setupTestDB(t)

	seedSettings(t, db, []models.Setting{
		intSetting("ui.items_per_page", "ui", "Items per page", "50"),
		intSetting("ui.refresh_interval", "ui", "Auto refresh", "300"),
		intSetting("inventory.cable.default_min_stock", "inventory", "Min stock", "5"),
	})

	categories, err := Categories(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"inventory", "ui"}, categories)

	_, err = Categories(nil)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		setting       *models.Setting
		seedData      []models.Setting
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			setting:       &models.Setting{Key: "test"},
			expectedError: ErrDBNil,
		},
		{
			name:          "nil setting",
			dbParam:       db,
			setting:       nil,
			expectedError: ErrSettingKeyEmpty,
		},
		{
			name:          "empty key",
			dbParam:       db,
			setting:       &models.Setting{},
			expectedError: ErrSettingKeyEmpty,
		},
		{
			name:    "successful create",
			dbParam: db,
			setting: func() *models.Setting {
				s := intSetting("ui.items_per_page", "ui", "Items per page", "50")
				return &s
			}(),
		},
		{
			name:    "duplicate key",
			dbParam: db,
			setting: func() *models.Setting {
				s := intSetting("ui.items_per_page", "ui", "Another label", "100")
				return &s
			}(),
			seedData: []models.Setting{
				intSetting("ui.items_per_page", "ui", "Items per page", "50"),
			},
			expectedError: ErrSettingAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM system_settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			setting, err := Create(tc.dbParam, tc.setting)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, setting)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, setting)
				assert.NotZero(t, setting.ID)
			}
		})
	}
}

func TestSave(t *testing.T) {
	db := setupTestDB(t)

	s := intSetting("ui.items_per_page", "ui", "Items per page", "50")
	created, err := Create(db, &s)
	require.NoError(t, err)

	created.RawValue = "100"
	require.NoError(t, Save(db, created))

	reloaded, err := Get(db, "ui.items_per_page")
	require.NoError(t, err)
	assert.Equal(t, "100", reloaded.RawValue)

	require.ErrorIs(t, Save(nil, created), ErrDBNil)
	require.ErrorIs(t, Save(db, &models.Setting{}), ErrSettingKeyEmpty)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		settingKey    string
		seedData      []models.Setting
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			settingKey:    "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty key",
			dbParam:       db,
			settingKey:    "",
			expectedError: ErrSettingKeyEmpty,
		},
		{
			name:          "setting not found",
			dbParam:       db,
			settingKey:    "nonexistent",
			expectedError: ErrSettingNotFound,
		},
		{
			name:       "successful delete",
			dbParam:    db,
			settingKey: "ui.items_per_page",
			seedData: []models.Setting{
				intSetting("ui.items_per_page", "ui", "Items per page", "50"),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM system_settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			err := Delete(tc.dbParam, tc.settingKey)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)

				// Verify the setting was deleted
				var count int64
				tc.dbParam.Model(&models.Setting{}).Where("key = ?", tc.settingKey).Count(&count)
				assert.Zero(t, count)
			}
		})
	}
}

func TestIntegration(t *testing.T) {
	db := setupTestDB(t)

	s := intSetting("ui.items_per_page", "ui", "Items per page", "50")
	created, err := Create(db, &s)
	require.NoError(t, err)
	require.NotNil(t, created)

	retrieved, err := Get(db, "ui.items_per_page")
	require.NoError(t, err)
	assert.Equal(t, created.ID, retrieved.ID)
	assert.Equal(t, "50", retrieved.RawValue)

	retrieved.RawValue = "100"
	require.NoError(t, Save(db, retrieved))

	retrieved, err = Get(db, "ui.items_per_page")
	require.NoError(t, err)
	assert.Equal(t, "100", retrieved.RawValue)

	all, err := GetAll(db, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, Delete(db, "ui.items_per_page"))

	_, err = Get(db, "ui.items_per_page")
	require.ErrorIs(t, err, ErrSettingNotFound)
}
