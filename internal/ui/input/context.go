package input

import (
	"driveshare/internal/domain"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Tab           domain.Tab
	SelectedIndex int
	ItemCount     int
	IsLoggedIn    bool
}

// ActiveTab returns the tab on screen
func (c *ModelContext) ActiveTab() domain.Tab {
	return c.Tab
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.SelectedIndex
}

// TotalItems returns the number of rows in the active tab's list
func (c *ModelContext) TotalItems() int {
	return c.ItemCount
}

// LoggedIn reports whether a session is active
func (c *ModelContext) LoggedIn() bool {
	return c.IsLoggedIn
}
