// Package handler holds the shared pieces of the JSON API handlers.
package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GoInventory-Admin/GoInventory-Admin/internal/config"
	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/models"
	"github.com/GoInventory-Admin/GoInventory-Admin/internal/settings"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, db *gorm.DB, svc *settings.Service)
}

// ActorFromCtx extracts the acting user from the request headers set by the
// authenticating frontend. Requests without actor headers are attributed to
// the admin role with actor id 0.
func ActorFromCtx(c *fiber.Ctx) settings.Actor {
	id, _ := strconv.ParseUint(c.Get(HeaderActorID), 10, 64)

	role := c.Get(HeaderActorRole)
	if role == "" {
		role = string(models.RoleAdmin)
	}

	return settings.Actor{ID: id, Role: role}
}
