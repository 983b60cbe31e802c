package components

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	homeCrumb      = "Home"
	crumbSeparator = " / "
)

// Header shows the breadcrumb of the current page and the operator name.
type Header struct {
	container  *fyne.Container
	breadcrumb *widget.Label
	userInfo   *widget.Label
}

func NewHeader(user string) *Header {
	h := &Header{
		breadcrumb: widget.NewLabel(homeCrumb),
		userInfo:   widget.NewLabel(user),
	}
	h.container = container.NewVBox(
		container.NewHBox(h.breadcrumb, layout.NewSpacer(), h.userInfo),
		widget.NewSeparator(),
	)
	return h
}

// SetBreadcrumb shows titles from the root to the current entry.
func (h *Header) SetBreadcrumb(titles []string) {
	if len(titles) == 0 {
		h.breadcrumb.SetText(homeCrumb)
		return
	}
	h.breadcrumb.SetText(strings.Join(titles, crumbSeparator))
}

func (h *Header) Breadcrumb() string {
	return h.breadcrumb.Text
}

func (h *Header) GetContainer() *fyne.Container {
	return h.container
}
