package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoInventory-Admin/GoInventory-Admin/internal/config"
	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/models"
)

// seed creates the initial admin account when the user table is empty.
// The password must be changed after the first login.
func seed(_ *config.Config, db *gorm.DB) {
	var count int64

	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		return
	}

	result := db.Create(
		&models.User{
			Username: "admin",
			Password: models.HashPassword("changeme"),
			Active:   true,
			Role:     models.RoleAdmin,
		},
	)
	if result.Error != nil {
		log.Fatal().Err(result.Error).Msg("failed to seed admin user")
	}

	log.Info().Msg("seeded default admin user (password: changeme, change it)")
}
