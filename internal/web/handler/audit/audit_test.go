package audit

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/GoInventory-Admin/GoInventory-Admin/internal/config"
	auditctl "github.com/GoInventory-Admin/GoInventory-Admin/internal/db/controller/audit"
	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.AuditLog{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)

	service := &Service{
		cfg: &config.Config{},
		db:  db,
	}

	app := fiber.New()
	app.Get(Path, service.List)

	return app, db
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	return resp, decoded
}

func TestServiceList(t *testing.T) {
	app, db := setupApp(t)

	entries := []*models.AuditLog{
		models.NewDataChange(1, "admin", "setting created", "setting", 10,
			nil, datatypes.JSONMap{"value": "50"}, ""),
		models.NewDataChange(1, "admin", "setting changed", "setting", 10,
			datatypes.JSONMap{"value": "50"}, datatypes.JSONMap{"value": "100"}, ""),
		models.NewDataChange(2, "user", "user created", "user", 3,
			nil, datatypes.JSONMap{"username": "worker"}, ""),
	}
	for _, entry := range entries {
		require.NoError(t, auditctl.Append(db, entry))
	}

	resp, body := get(t, app, "/api/audit")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, body["total"])

	listed, ok := body["entries"].([]any)
	require.True(t, ok)
	require.Len(t, listed, 3)

	// newest first
	first, ok := listed[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user created", first["action"])

	resp, body = get(t, app, "/api/audit?resource_type=setting&event=update")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["total"])

	listed, ok = body["entries"].([]any)
	require.True(t, ok)
	require.Len(t, listed, 1)

	first, ok = listed[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "setting changed", first["action"])

	old, ok := first["old_values"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "50", old["value"])

	resp, body = get(t, app, "/api/audit?actor_id=2")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["total"])
}

func TestServiceListPagination(t *testing.T) {
	app, db := setupApp(t)

	for i := 0; i < 5; i++ {
		entry := models.NewDataChange(1, "admin", "setting changed", "setting", uint64(i+1),
			datatypes.JSONMap{"value": "a"}, datatypes.JSONMap{"value": "b"}, "")
		require.NoError(t, auditctl.Append(db, entry))
	}

	resp, body := get(t, app, "/api/audit?limit=2")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 5, body["total"])

	listed, ok := body["entries"].([]any)
	require.True(t, ok)
	assert.Len(t, listed, 2)

	resp, body = get(t, app, "/api/audit?limit=2&offset=4")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	listed, ok = body["entries"].([]any)
	require.True(t, ok)
	assert.Len(t, listed, 1)
}

func TestServiceListEmpty(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := get(t, app, "/api/audit")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, body["total"])

	listed, ok := body["entries"].([]any)
	require.True(t, ok)
	assert.Empty(t, listed)
}
