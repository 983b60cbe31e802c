package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"admin-panel/internal/menu"
	"admin-panel/internal/navigation"
)

// IconResolver maps a menu icon reference to a resource; nil means no icon.
type IconResolver func(ref string) fyne.Resource

// Sidebar shows the menu tree and reports selected entries.
type Sidebar struct {
	container *fyne.Container
	tree      *widget.Tree
	title     *widget.Label
	index     *navigation.Index
	icons     IconResolver

	selectHandler func(node menu.Node)
}

// NewSidebar creates an empty sidebar.
func NewSidebar(title string, icons IconResolver) *Sidebar {
	s := &Sidebar{
		index: navigation.NewIndex(nil),
		icons: icons,
	}
	s.createComponents(title)
	s.buildLayout()
	return s
}

func (s *Sidebar) createComponents(title string) {
	s.title = widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	s.tree = widget.NewTree(
		func(uid widget.TreeNodeID) []widget.TreeNodeID {
			return s.index.ChildIDs(uid)
		},
		func(uid widget.TreeNodeID) bool {
			return s.index.IsBranch(uid)
		},
		func(branch bool) fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(nil), widget.NewLabel("menu entry"))
		},
		func(uid widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
			node, ok := s.index.Node(uid)
			if !ok {
				return
			}
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Icon).SetResource(s.iconFor(node))
			row.Objects[1].(*widget.Label).SetText(node.Title)
		},
	)
	s.tree.OnSelected = s.choose
}

func (s *Sidebar) buildLayout() {
	s.container = container.NewBorder(
		container.NewVBox(s.title, widget.NewSeparator()),
		nil, nil, nil,
		s.tree,
	)
}

func (s *Sidebar) iconFor(node menu.Node) fyne.Resource {
	if node.Icon != "" && s.icons != nil {
		if res := s.icons(node.Icon); res != nil {
			return res
		}
	}
	if s.index.IsBranch(node.ID) {
		return theme.FolderIcon()
	}
	return theme.DocumentIcon()
}

// choose handles a tree selection: groups toggle open, routed entries are
// reported to the select handler.
func (s *Sidebar) choose(uid widget.TreeNodeID) {
	node, ok := s.index.Node(uid)
	if !ok {
		return
	}
	if node.Route == "" {
		s.tree.ToggleBranch(uid)
		s.tree.Unselect(uid)
		return
	}
	if s.selectHandler != nil {
		s.selectHandler(node)
	}
}

// SetMenus replaces the displayed tree. Must run on the UI goroutine.
func (s *Sidebar) SetMenus(menus []menu.Node) {
	s.index = navigation.NewIndex(menus)
	s.tree.UnselectAll()
	s.tree.Refresh()
}

// SelectRoute highlights the entry for route and opens its ancestors.
func (s *Sidebar) SelectRoute(route string) bool {
	node, ok := s.index.ByRoute(route)
	if !ok {
		return false
	}
	path := s.index.Path(node.ID)
	for _, id := range path[:len(path)-1] {
		s.tree.OpenBranch(id)
	}
	s.tree.Select(node.ID)
	return true
}

func (s *Sidebar) SetSelectHandler(handler func(node menu.Node)) {
	s.selectHandler = handler
}

// Index returns the navigation index of the displayed tree.
func (s *Sidebar) Index() *navigation.Index {
	return s.index
}

func (s *Sidebar) GetContainer() *fyne.Container {
	return s.container
}
