package views

import (
	"errors"

	"admin-panel/internal/menu"
	"admin-panel/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

const sidebarOffset = 0.22

// MainView is the admin shell: sidebar, breadcrumb header, content and status bar
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	sidebar       *components.Sidebar
	header        *components.Header
	content       *components.ContentArea
	statusBar     *components.StatusBar
	loading       *components.LoadingIndicator

	routeHandler func(node menu.Node)
}

// NewMainView creates the main view and installs it as the window content
func NewMainView(window fyne.Window, brand, user string, icons components.IconResolver) *MainView {
	mv := &MainView{
		window: window,
	}

	mv.initializeComponents(brand, user, icons)
	mv.buildLayout()
	mv.setupEventHandlers()

	return mv
}

func (mv *MainView) initializeComponents(brand, user string, icons components.IconResolver) {
	mv.sidebar = components.NewSidebar(brand, icons)
	mv.header = components.NewHeader(user)
	mv.content = components.NewContentArea()
	mv.statusBar = components.NewStatusBar()
	mv.loading = components.NewLoadingIndicator()
}

func (mv *MainView) buildLayout() {
	right := container.NewBorder(
		container.NewVBox(mv.header.GetContainer(), mv.loading.GetContainer()),
		nil, nil, nil,
		mv.content.GetContainer(),
	)

	split := container.NewHSplit(mv.sidebar.GetContainer(), right)
	split.Offset = sidebarOffset

	mv.mainContainer = container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		split,
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.sidebar.SetSelectHandler(mv.navigate)
}

// navigate shows the placeholder page for node and updates the breadcrumb
func (mv *MainView) navigate(node menu.Node) {
	mv.header.SetBreadcrumb(mv.sidebar.Index().Breadcrumb(node.ID))
	mv.content.ShowRoute(node.Route, node.Title)
	mv.statusBar.SetRoute(node.Route)

	if mv.routeHandler != nil {
		mv.routeHandler(node)
	}
}

// SetRouteHandler registers the callback for sidebar navigation
func (mv *MainView) SetRouteHandler(handler func(node menu.Node)) {
	mv.routeHandler = handler
}

// SetMenus replaces the sidebar tree. Safe to call from any goroutine.
func (mv *MainView) SetMenus(version string, menus []menu.Node) {
	fyne.Do(func() {
		mv.applyMenus(version, menus)
	})
}

func (mv *MainView) applyMenus(version string, menus []menu.Node) {
	mv.loading.Stop()
	mv.sidebar.SetMenus(menus)
	mv.header.SetBreadcrumb(nil)
	mv.content.ShowWelcome()
	mv.statusBar.SetStatus("Menus loaded")
	mv.statusBar.SetMenuInfo(version, mv.sidebar.Index().Len())
}

// ShowLoading marks the start of a menu load
func (mv *MainView) ShowLoading() {
	fyne.Do(func() {
		mv.statusBar.SetStatus("Loading menus...")
		mv.loading.Start()
	})
}

// ShowLoadError keeps the current tree and reports why a load failed
func (mv *MainView) ShowLoadError(message string) {
	fyne.Do(func() {
		mv.applyLoadError(message)
		dialog.ShowError(errors.New(message), mv.window)
	})
}

func (mv *MainView) applyLoadError(message string) {
	mv.loading.Stop()
	mv.statusBar.SetStatus("Menu load failed: " + message)
}

// SelectRoute navigates to the entry registered for route
func (mv *MainView) SelectRoute(route string) bool {
	return mv.sidebar.SelectRoute(route)
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, mv.window)
	})
}

func (mv *MainView) Show() {
	mv.window.Show()
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}
