package settings

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/controller/setting"
	"github.com/GoInventory-Admin/GoInventory-Admin/internal/db/models"
)

// Well-known setting keys used by the convenience accessors and the default
// bootstrap.
const (
	KeyCableMinStock        = "inventory.cable.default_min_stock"
	KeyCableMaxStock        = "inventory.cable.default_max_stock"
	KeyWarrantyAlertDays    = "inventory.hardware.warranty_alert_days"
	KeyItemsPerPage         = "ui.items_per_page"
	KeyRefreshInterval      = "ui.refresh_interval"
	KeySessionTimeout       = "security.session_timeout"
	KeyPasswordMinLength    = "security.password_min_length"
	KeyLowStockEnabled      = "notifications.low_stock_enabled"
	KeyCriticalStockEnabled = "notifications.critical_stock_enabled"
)

// defaultSettings is the baseline set of settings every installation gets.
func defaultSettings() []models.Setting {
	return []models.Setting{
		{
			Key:         KeyCableMinStock,
			Category:    "inventory",
			RawValue:    "5",
			ValueType:   models.TypeInt,
			Label:       "Default minimum stock for cables",
			Description: "The default minimum stock applied to newly created cables",
			HelpText:    "A warning is shown when the stock falls below this value",
			MinValue:    "0",
			MaxValue:    "1000",
			Required:    true,
			Visible:     true,
		},
		{
			Key:         KeyCableMaxStock,
			Category:    "inventory",
			RawValue:    "100",
			ValueType:   models.TypeInt,
			Label:       "Default maximum stock for cables",
			Description: "The default maximum stock applied to newly created cables",
			HelpText:    "Warns about overstock when this value is exceeded",
			MinValue:    "1",
			MaxValue:    "10000",
			Required:    true,
			Visible:     true,
		},
		{
			Key:         KeyWarrantyAlertDays,
			Category:    "inventory",
			RawValue:    "30",
			ValueType:   models.TypeInt,
			Label:       "Warranty alert (days ahead)",
			Description: "Number of days before warranty expiry to start warning",
			HelpText:    "The system warns this many days before a hardware warranty expires",
			MinValue:    "1",
			MaxValue:    "365",
			Required:    true,
			Visible:     true,
		},
		{
			Key:         KeyItemsPerPage,
			Category:    "ui",
			RawValue:    "50",
			ValueType:   models.TypeInt,
			Label:       "Items per page",
			Description: "Number of entries shown per page in tables",
			HelpText:    "Higher values may slow down page loads",
			MinValue:    "10",
			MaxValue:    "200",
			Required:    true,
			Visible:     true,
		},
		{
			Key:         KeyRefreshInterval,
			Category:    "ui",
			RawValue:    "300",
			ValueType:   models.TypeInt,
			Label:       "Auto refresh (seconds)",
			Description: "Interval for automatic refresh of dashboard data",
			HelpText:    "0 disables automatic refreshing",
			MinValue:    "0",
			MaxValue:    "3600",
			Required:    true,
			Visible:     true,
		},
		{
			Key:             KeySessionTimeout,
			Category:        "security",
			RawValue:        "3600",
			ValueType:       models.TypeInt,
			Label:           "Session timeout (seconds)",
			Description:     "Automatic logout after inactivity",
			HelpText:        "Users must log in again after this much idle time",
			MinValue:        "300",
			MaxValue:        "86400",
			Required:        true,
			Visible:         true,
			RestartRequired: true,
		},
		{
			Key:         KeyPasswordMinLength,
			Category:    "security",
			RawValue:    "6",
			ValueType:   models.TypeInt,
			Label:       "Minimum password length",
			Description: "Minimum number of characters for user passwords",
			HelpText:    "Longer passwords improve security",
			MinValue:    "4",
			MaxValue:    "50",
			Required:    true,
			Visible:     true,
		},
		{
			Key:         KeyLowStockEnabled,
			Category:    "notifications",
			RawValue:    "true",
			ValueType:   models.TypeBool,
			Label:       "Low stock notifications",
			Description: "Enables warnings for low stock levels",
			HelpText:    "Shows warnings on the dashboard",
			Required:    true,
			Visible:     true,
		},
		{
			Key:         KeyCriticalStockEnabled,
			Category:    "notifications",
			RawValue:    "true",
			ValueType:   models.TypeBool,
			Label:       "Critical stock notifications",
			Description: "Enables warnings for critical (empty) stock levels",
			HelpText:    "Shows critical warnings on the dashboard",
			Required:    true,
			Visible:     true,
		},
	}
}

// InitializeDefaults ensures the baseline settings exist, then reloads the
// cache. It is idempotent: existing keys are left untouched, so calling it
// repeatedly neither duplicates keys nor overwrites administrator changes.
func (s *Service) InitializeDefaults() error {
	existing, err := setting.GetAll(s.db, false)
	if err != nil {
		return errors.Wrap(err, "failed to load existing settings")
	}

	known := make(map[string]struct{}, len(existing))
	for i := range existing {
		known[existing[i].Key] = struct{}{}
	}

	for _, def := range defaultSettings() {
		if _, ok := known[def.Key]; ok {
			continue
		}

		if _, err := setting.Create(s.db, &def); err != nil {
			return errors.Wrapf(err, "failed to create default setting %q", def.Key)
		}

		log.Debug().Str("key", def.Key).Msg("created default setting")
	}

	return errors.Wrap(s.manager.Reload(), "failed to reload settings cache")
}
