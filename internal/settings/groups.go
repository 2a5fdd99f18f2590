package settings

// Fixed-shape groupings of well-known settings with hardcoded fallbacks.
// Pure read convenience for callers that want a struct instead of key
// lookups; the fallbacks keep them usable before the bootstrap ran.

// InventoryDefaults groups the inventory-related default values.
type InventoryDefaults struct {
	CableMinStock     int64 `json:"cable_min_stock"`
	CableMaxStock     int64 `json:"cable_max_stock"`
	WarrantyAlertDays int64 `json:"warranty_alert_days"`
}

// InventoryDefaults returns the inventory-related defaults.
func (s *Service) InventoryDefaults() InventoryDefaults {
	return InventoryDefaults{
		CableMinStock:     s.Int(KeyCableMinStock, 5),
		CableMaxStock:     s.Int(KeyCableMaxStock, 100),
		WarrantyAlertDays: s.Int(KeyWarrantyAlertDays, 30),
	}
}

// UISettings groups the settings consumed by the frontend.
type UISettings struct {
	ItemsPerPage    int64 `json:"items_per_page"`
	RefreshInterval int64 `json:"refresh_interval"`
}

// UISettings returns the UI-related settings.
func (s *Service) UISettings() UISettings {
	return UISettings{
		ItemsPerPage:    s.Int(KeyItemsPerPage, 50),
		RefreshInterval: s.Int(KeyRefreshInterval, 300),
	}
}

// NotificationSettings groups the notification switches.
type NotificationSettings struct {
	LowStockEnabled      bool `json:"low_stock_enabled"`
	CriticalStockEnabled bool `json:"critical_stock_enabled"`
}

// NotificationSettings returns the notification settings.
func (s *Service) NotificationSettings() NotificationSettings {
	return NotificationSettings{
		LowStockEnabled:      s.Bool(KeyLowStockEnabled, true),
		CriticalStockEnabled: s.Bool(KeyCriticalStockEnabled, true),
	}
}
