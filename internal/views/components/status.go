package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays load status and information about the menu document
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	menuInfo    *widget.Label
	routeInfo   *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.menuInfo = widget.NewLabel("No menus loaded")
	sb.routeInfo = widget.NewLabel("Route: --")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.menuInfo,
		widget.NewSeparator(),
		sb.routeInfo,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetMenuInfo summarises the loaded document
func (sb *StatusBar) SetMenuInfo(version string, entries int) {
	sb.menuInfo.SetText(fmt.Sprintf("Menus: %d entries, version %s", entries, version))
}

func (sb *StatusBar) GetMenuInfo() string {
	return sb.menuInfo.Text
}

func (sb *StatusBar) SetRoute(route string) {
	sb.routeInfo.SetText("Route: " + route)
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.menuInfo.SetText("No menus loaded")
	sb.routeInfo.SetText("Route: --")
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// LoadingIndicator is an indeterminate progress bar shown while menus load
type LoadingIndicator struct {
	container *fyne.Container
	bar       *widget.ProgressBarInfinite
	active    bool
}

func NewLoadingIndicator() *LoadingIndicator {
	li := &LoadingIndicator{bar: widget.NewProgressBarInfinite()}
	li.container = container.NewVBox(li.bar)
	li.container.Hide()
	return li
}

func (li *LoadingIndicator) Start() {
	li.active = true
	li.container.Show()
	li.bar.Start()
}

func (li *LoadingIndicator) Stop() {
	li.active = false
	li.bar.Stop()
	li.container.Hide()
}

func (li *LoadingIndicator) IsActive() bool {
	return li.active
}

func (li *LoadingIndicator) GetContainer() *fyne.Container {
	return li.container
}
