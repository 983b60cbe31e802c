package app

import (
	"sync"

	"admin-panel/internal/config"
	"admin-panel/internal/logger"
	"admin-panel/internal/menu"
	"admin-panel/internal/navigation"
	"admin-panel/internal/views"

	"fyne.io/fyne/v2"
)

const (
	AppName         = "Admin Panel"
	AppID           = "com.adminpanel.shell"
	AppVersion      = "1.0.0"
	MinWindowWidth  = 1024
	MinWindowHeight = 680
)

type Application struct {
	fyneApp   fyne.App
	window    fyne.Window
	view      *views.MainView
	loader    *menu.Loader
	settings  config.Settings
	logger    logger.Logger
	lifecycle *Lifecycle

	// loads run off the UI goroutine; loadMu keeps them one at a time
	loadMu sync.Mutex
}

// NewApplication builds the shell window around loader. The loader is owned
// by the caller; the application only subscribes to it.
func NewApplication(fyneApp fyne.App, settings config.Settings, loader *menu.Loader, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	window := fyneApp.NewWindow(settings.WindowTitle)
	window.Resize(fyne.NewSize(MinWindowWidth, MinWindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	icons := views.FileIcons(settings.ResourceDir, log)
	view := views.NewMainView(window, settings.WindowTitle, operatorName(), icons)

	application := &Application{
		fyneApp:   fyneApp,
		window:    window,
		view:      view,
		loader:    loader,
		settings:  settings,
		logger:    log,
		lifecycle: NewLifecycle(log),
	}

	application.subscribe()
	application.setupHandlers()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":   AppVersion,
		"menu_path": settings.MenuPath(),
	})
	return application, nil
}

func (a *Application) subscribe() {
	a.lifecycle.Track("menus loaded", a.loader.OnMenusLoaded(func(menus []menu.Node) {
		version := ""
		if doc := a.loader.Current(); doc != nil {
			version = doc.Version
		}
		a.view.SetMenus(version, a.visibleMenus(menus))
	}))
	a.lifecycle.Track("menu load error", a.loader.OnLoadError(a.view.ShowLoadError))
	a.lifecycle.Track("load stats", a.logLoadStats)
}

func (a *Application) logLoadStats() {
	for _, s := range a.loader.AllStats() {
		a.logger.Info("Application", "menu load summary", map[string]interface{}{
			"path":        s.Path,
			"successes":   s.Successes,
			"failures":    s.Failures,
			"avg_load_ms": s.AverageDuration().Milliseconds(),
		})
	}
}

func (a *Application) setupHandlers() {
	handlers := NewHandlers(a)

	a.view.SetRouteHandler(handlers.HandleRoute)
	a.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Reload Menus", handlers.HandleReload),
			fyne.NewMenuItem("Open Menu File...", handlers.HandleOpenMenuFile),
		),
	))
}

// visibleMenus applies the operator's permissions; nil permissions show all.
func (a *Application) visibleMenus(menus []menu.Node) []menu.Node {
	if a.settings.Permissions == nil {
		return menus
	}
	return navigation.FilterByPermissions(menus, a.settings.Permissions)
}

// LoadMenusAsync loads path without blocking the UI goroutine.
func (a *Application) LoadMenusAsync(path string) {
	a.view.ShowLoading()
	go func() {
		_ = a.loadMenus(path)
	}()
}

func (a *Application) loadMenus(path string) error {
	a.loadMu.Lock()
	defer a.loadMu.Unlock()

	_, err := a.loader.Load(path)
	if err != nil {
		a.logger.Warning("Application", "keeping previous menus", map[string]interface{}{
			"path": path,
			"kind": menu.KindOf(err).String(),
		})
	}
	return err
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.Shutdown()
		a.window.Close()
	})

	a.LoadMenusAsync(a.settings.MenuPath())
	a.view.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
	return nil
}

// Shutdown detaches from the loader. Safe to call more than once.
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}

// Quit stops the fyne event loop.
func (a *Application) Quit() {
	fyne.Do(a.fyneApp.Quit)
}

func operatorName() string {
	return "Admin"
}
