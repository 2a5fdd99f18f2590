package main

import (
	"os"

	"github.com/GoInventory-Admin/GoInventory-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
