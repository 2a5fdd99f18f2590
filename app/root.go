// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-inventory-admin",
	Short: "GoInventory-Admin is a web-based inventory management tool",
	Long: `GoInventory-Admin is a web-based inventory management tool
for hardware assets, cables, locations and users, with database-backed
system settings and a full audit trail.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
