package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ContentArea is the placeholder page shown for the selected route.
type ContentArea struct {
	container *fyne.Container
	title     *widget.Label
	route     *widget.Label
}

func NewContentArea() *ContentArea {
	c := &ContentArea{
		title: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		route: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Monospace: true}),
	}
	c.container = container.NewCenter(container.NewVBox(c.title, c.route))
	c.ShowWelcome()
	return c
}

func (c *ContentArea) ShowWelcome() {
	c.title.SetText("Welcome")
	c.route.SetText("Select an entry in the sidebar")
}

// ShowRoute displays the placeholder page for a routed entry.
func (c *ContentArea) ShowRoute(route, title string) {
	c.title.SetText(title)
	c.route.SetText(route)
}

func (c *ContentArea) Title() string {
	return c.title.Text
}

func (c *ContentArea) Route() string {
	return c.route.Text
}

func (c *ContentArea) GetContainer() *fyne.Container {
	return c.container
}
