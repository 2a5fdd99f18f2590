package config

import (
	"fmt"

	"github.com/GoInventory-Admin/GoInventory-Admin/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string // domain name for the webserver
	Port         int    // listening port for the webserver
	ShutDownTime int    // wait time for shutdown in seconds
	URL          string // base url for the webserver
}

// ListenAddr returns the address the webserver binds to.
func (w Webserver) ListenAddr() string {
	return fmt.Sprintf(":%d", w.Port)
}
