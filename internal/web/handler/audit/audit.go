// Package audit implements the JSON API handler for browsing the audit
// trail.
package audit

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoInventory-Admin/GoInventory-Admin/internal/config"
	auditctl "github.com/GoInventory-Admin/GoInventory-Admin/internal/db/controller/audit"
	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/models"
	"github.com/GoInventory-Admin/GoInventory-Admin/internal/settings"
	"github.com/GoInventory-Admin/GoInventory-Admin/internal/web/handler"
)

const (
	// Path is the base path of the audit API.
	Path = handler.APIRootPath + "/audit"
)

// Service is the audit API handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the audit API handler.
var Handler = Service{}

// Init initializes the audit API handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, _ *settings.Service) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.List)
}

// entryResponse is the JSON shape of one audit entry.
type entryResponse struct {
	ID           uint64         `json:"id"`
	EventType    string         `json:"event_type"`
	ResourceType string         `json:"resource_type"`
	ResourceID   uint64         `json:"resource_id"`
	Action       string         `json:"action"`
	ActorID      uint64         `json:"actor_id"`
	ActorRole    string         `json:"actor_role"`
	OldValues    map[string]any `json:"old_values,omitempty"`
	NewValues    map[string]any `json:"new_values,omitempty"`
	Description  string         `json:"description"`
	CreatedAt    time.Time      `json:"created_at"`
}

func toResponse(entry *models.AuditLog) entryResponse {
	return entryResponse{
		ID:           entry.ID,
		EventType:    string(entry.EventType),
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Action:       entry.Action,
		ActorID:      entry.ActorID,
		ActorRole:    entry.ActorRole,
		OldValues:    entry.OldValues,
		NewValues:    entry.NewValues,
		Description:  entry.Description,
		CreatedAt:    entry.CreatedAt,
	}
}

// List handles GET /api/audit with optional actor_id, resource_type, event,
// limit and offset query parameters. Entries come back newest first.
func (s *Service) List(c *fiber.Ctx) error {
	filter := auditctl.Filter{
		ResourceType: c.Query("resource_type"),
		EventType:    models.AuditEventType(c.Query("event")),
	}

	filter.ActorID, _ = strconv.ParseUint(c.Query("actor_id"), 10, 64)
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))
	filter.Offset, _ = strconv.Atoi(c.Query("offset"))

	total, err := auditctl.Count(s.db, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit entries")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage failed"})
	}

	entries, err := auditctl.List(s.db, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list audit entries")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage failed"})
	}

	response := make([]entryResponse, 0, len(entries))
	for i := range entries {
		response = append(response, toResponse(&entries[i]))
	}

	return c.JSON(fiber.Map{
		"total":   total,
		"entries": response,
	})
}
