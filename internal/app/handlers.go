package app

import (
	"admin-panel/internal/menu"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

type Handlers struct {
	app *Application
}

func NewHandlers(a *Application) *Handlers {
	return &Handlers{app: a}
}

// HandleReload reloads the configured menu file on request.
func (h *Handlers) HandleReload() {
	h.app.logger.Info("Handlers", "menu reload requested", nil)
	h.app.LoadMenusAsync(h.app.settings.MenuPath())
}

// HandleOpenMenuFile loads a menu file picked by the operator.
func (h *Handlers) HandleOpenMenuFile() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, h.app.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		h.app.logger.Info("Handlers", "menu file selected", map[string]interface{}{
			"path": path,
		})
		h.app.LoadMenusAsync(path)
	}, h.app.window)
	open.SetFilter(storage.NewExtensionFileFilter([]string{".json", ".jsonc", ".yaml", ".yml"}))
	open.Show()
}

// HandleRoute records navigation to a menu entry.
func (h *Handlers) HandleRoute(node menu.Node) {
	h.app.logger.Debug("Handlers", "route selected", map[string]interface{}{
		"id":    node.ID,
		"route": node.Route,
	})
}
