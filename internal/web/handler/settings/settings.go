// Package settings implements the JSON API handlers for system settings.
package settings

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoInventory-Admin/GoInventory-Admin/internal/config"
	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/models"
	svc "github.com/GoInventory-Admin/GoInventory-Admin/internal/settings"
	"github.com/GoInventory-Admin/GoInventory-Admin/internal/web/handler"
)

const (
	// Path is the base path of the settings API.
	Path = handler.APIRootPath + "/settings"
)

// Service is the settings API handler service.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	settings  *svc.Service
	validator *validator.Validate
}

// Handler is the settings API handler.
var Handler = Service{}

// Init initializes the settings API handler and registers its routes.
// Fixed paths are registered before the :key parameter route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, settings *svc.Service) {
	if app == nil || cfg == nil || db == nil || settings == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.settings = settings
	s.validator = validator.New()

	app.Get(Path+"/categories", s.GetCategories)
	app.Get(Path+"/groups/inventory", s.GetInventoryDefaults)
	app.Get(Path+"/groups/ui", s.GetUISettings)
	app.Get(Path+"/groups/notifications", s.GetNotificationSettings)
	app.Get(Path, s.List)
	app.Post(Path, s.Create)
	app.Patch(Path, s.BulkUpdate)
	app.Get(Path+"/:key", s.Get)
	app.Put(Path+"/:key", s.Update)
	app.Delete(Path+"/:key", s.Delete)
}

// settingResponse is the JSON shape of one setting.
type settingResponse struct {
	Key             string    `json:"key"`
	Category        string    `json:"category"`
	Value           any       `json:"value"`
	Type            string    `json:"type"`
	Label           string    `json:"label"`
	Description     string    `json:"description,omitempty"`
	HelpText        string    `json:"help_text,omitempty"`
	MinValue        string    `json:"min_value,omitempty"`
	MaxValue        string    `json:"max_value,omitempty"`
	AllowedValues   []string  `json:"allowed_values,omitempty"`
	Required        bool      `json:"required"`
	Visible         bool      `json:"visible"`
	RestartRequired bool      `json:"restart_required"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toResponse(record *models.Setting) settingResponse {
	return settingResponse{
		Key:             record.Key,
		Category:        record.Category,
		Value:           record.ValueOr(models.StringValue(record.RawValue)).Interface(),
		Type:            string(record.ValueType),
		Label:           record.Label,
		Description:     record.Description,
		HelpText:        record.HelpText,
		MinValue:        record.MinValue,
		MaxValue:        record.MaxValue,
		AllowedValues:   record.AllowedValues,
		Required:        record.Required,
		Visible:         record.Visible,
		RestartRequired: record.RestartRequired,
		UpdatedAt:       record.UpdatedAt,
	}
}

func toResponseList(records []models.Setting) []settingResponse {
	out := make([]settingResponse, 0, len(records))
	for i := range records {
		out = append(out, toResponse(&records[i]))
	}

	return out
}

// statusCode maps a service status to an HTTP status code.
func statusCode(status svc.Status) int {
	switch status {
	case svc.StatusOK:
		return fiber.StatusOK
	case svc.StatusNotFound:
		return fiber.StatusNotFound
	case svc.StatusInvalidValue:
		return fiber.StatusBadRequest
	case svc.StatusProtected, svc.StatusDuplicateKey:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func statusError(c *fiber.Ctx, status svc.Status) error {
	return c.Status(statusCode(status)).JSON(fiber.Map{"error": status.String()})
}

// List handles GET /api/settings. The optional category query parameter
// scopes the listing; all=true includes internal settings.
func (s *Service) List(c *fiber.Ctx) error {
	onlyVisible := c.Query("all") != "true"

	var (
		records []models.Setting
		status  svc.Status
	)

	if category := c.Query("category"); category != "" {
		records, status = s.settings.ByCategory(category, onlyVisible)
	} else {
		records, status = s.settings.All(onlyVisible)
	}

	if !status.OK() {
		return statusError(c, status)
	}

	return c.JSON(fiber.Map{"settings": toResponseList(records)})
}

// GetCategories handles GET /api/settings/categories.
func (s *Service) GetCategories(c *fiber.Ctx) error {
	categories, status := s.settings.Categories()
	if !status.OK() {
		return statusError(c, status)
	}

	return c.JSON(fiber.Map{"categories": categories})
}

// GetInventoryDefaults handles GET /api/settings/groups/inventory.
func (s *Service) GetInventoryDefaults(c *fiber.Ctx) error {
	return c.JSON(s.settings.InventoryDefaults())
}

// GetUISettings handles GET /api/settings/groups/ui.
func (s *Service) GetUISettings(c *fiber.Ctx) error {
	return c.JSON(s.settings.UISettings())
}

// GetNotificationSettings handles GET /api/settings/groups/notifications.
func (s *Service) GetNotificationSettings(c *fiber.Ctx) error {
	return c.JSON(s.settings.NotificationSettings())
}

// Get handles GET /api/settings/:key.
func (s *Service) Get(c *fiber.Ctx) error {
	record, status := s.settings.Get(c.Params("key"))
	if !status.OK() {
		return statusError(c, status)
	}

	return c.JSON(toResponse(record))
}

// updateRequest is the body of PUT /api/settings/:key.
type updateRequest struct {
	Value any `json:"value" validate:"required"`
}

// Update handles PUT /api/settings/:key.
func (s *Service) Update(c *fiber.Ctx) error {
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := s.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "value is required"})
	}

	key := c.Params("key")

	status := s.settings.Update(key, req.Value, handler.ActorFromCtx(c))
	if !status.OK() {
		return statusError(c, status)
	}

	record, getStatus := s.settings.Get(key)
	if !getStatus.OK() {
		return statusError(c, getStatus)
	}

	return c.JSON(toResponse(record))
}

// bulkUpdateRequest is the body of PATCH /api/settings.
type bulkUpdateRequest struct {
	Updates map[string]any `json:"updates" validate:"required,min=1"`
}

// BulkUpdate handles PATCH /api/settings. Each key is updated independently;
// the response reports the per-key outcome.
func (s *Service) BulkUpdate(c *fiber.Ctx) error {
	var req bulkUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := s.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "updates must not be empty"})
	}

	results := s.settings.BulkUpdate(req.Updates, handler.ActorFromCtx(c))

	response := make(map[string]bool, len(results))
	for key, status := range results {
		response[key] = status.OK()
	}

	return c.JSON(fiber.Map{"results": response})
}

// createRequest is the body of POST /api/settings.
type createRequest struct {
	Key             string   `json:"key"      validate:"required,max=100"`
	Category        string   `json:"category" validate:"required,max=50"`
	Value           string   `json:"value"    validate:"required"`
	Type            string   `json:"type"     validate:"omitempty,oneof=int float bool string json"`
	Label           string   `json:"label"    validate:"required,max=200"`
	Description     string   `json:"description"`
	HelpText        string   `json:"help_text"`
	MinValue        string   `json:"min_value"`
	MaxValue        string   `json:"max_value"`
	AllowedValues   []string `json:"allowed_values"`
	Required        bool     `json:"required"`
	Visible         bool     `json:"visible"`
	RestartRequired bool     `json:"restart_required"`
}

// Create handles POST /api/settings.
func (s *Service) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := s.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record := &models.Setting{
		Key:             req.Key,
		Category:        req.Category,
		RawValue:        req.Value,
		ValueType:       models.ValueType(req.Type),
		Label:           req.Label,
		Description:     req.Description,
		HelpText:        req.HelpText,
		MinValue:        req.MinValue,
		MaxValue:        req.MaxValue,
		AllowedValues:   req.AllowedValues,
		Required:        req.Required,
		Visible:         req.Visible,
		RestartRequired: req.RestartRequired,
	}

	created, status := s.settings.Create(record, handler.ActorFromCtx(c))
	if !status.OK() {
		return statusError(c, status)
	}

	return c.Status(fiber.StatusCreated).JSON(toResponse(created))
}

// Delete handles DELETE /api/settings/:key.
func (s *Service) Delete(c *fiber.Ctx) error {
	status := s.settings.Delete(c.Params("key"), handler.ActorFromCtx(c))
	if !status.OK() {
		return statusError(c, status)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
