// Package main is the entry point for the quests tracker server.
package main

import (
	"os"

	"github.com/questguild/quests-tracker/cmd/quests-tracker/app"
	"github.com/questguild/quests-tracker/internal/logger"
)

func main() {
	defer logger.Sync()

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
