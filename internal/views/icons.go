package views

import (
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"

	"admin-panel/internal/logger"
	"admin-panel/internal/views/components"
)

// FileIcons resolves menu icon references to image files under dir. Missing
// or unreadable files resolve to nil so the sidebar falls back to theme icons.
func FileIcons(dir string, log logger.Logger) components.IconResolver {
	var mu sync.Mutex
	cache := make(map[string]fyne.Resource)

	return func(ref string) fyne.Resource {
		mu.Lock()
		defer mu.Unlock()

		if res, ok := cache[ref]; ok {
			return res
		}

		path := ref
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, ref)
		}
		res, err := fyne.LoadResourceFromPath(path)
		if err != nil {
			log.Debug("MainView", "menu icon unavailable", map[string]interface{}{
				"icon":  ref,
				"error": err.Error(),
			})
			res = nil
		}
		cache[ref] = res
		return res
	}
}
