package main

import (
	"log"

	"admin-panel/internal/app"
	"admin-panel/internal/config"
	"admin-panel/internal/eventbus"
	"admin-panel/internal/logger"
	"admin-panel/internal/menu"
	"admin-panel/internal/shutdown"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	settings := config.FromEnv()

	appLogger := logger.New(logger.Options{
		Level: settings.LogLevel,
		JSON:  settings.JSONLogs,
	})

	appLogger.Info("Main", "application starting", map[string]interface{}{
		"version":      app.AppVersion,
		"resource_dir": settings.ResourceDir,
		"menu_file":    settings.MenuFile,
		"log_level":    settings.LogLevel,
	})

	bus := eventbus.New(appLogger)
	loader := menu.Default(
		menu.WithDefaultPath(settings.MenuPath()),
		menu.WithLogger(appLogger),
		menu.WithBus(bus),
	)

	fyneApp := fyneapp.NewWithID(app.AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      app.AppID,
		Name:    app.AppName,
		Version: app.AppVersion,
	})

	application, err := app.NewApplication(fyneApp, settings, loader, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("application", application)
	shutdownManager.Listen(application.Quit)

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	shutdownManager.Shutdown()
	appLogger.Info("Main", "application terminated", nil)
}
