package components

import (
	"driveshare/internal/domain"
)

// NavigationState holds the active tab
type NavigationState struct {
	Active domain.Tab
}

// Navigation switches between content sections
type Navigation struct {
	deps  Deps
	state NavigationState
}

// NewNavigation creates and registers the navigation component
func NewNavigation(d Deps) *Navigation {
	d = d.withDefaults()
	n := &Navigation{
		deps:  d,
		state: NavigationState{Active: domain.TabSearch},
	}
	d.Mediator.RegisterComponent(NameNavigation, n)
	return n
}

// State returns a copy of the navigation state
func (n *Navigation) State() NavigationState {
	return n.state
}

// Select handles a click on a tab. Subscribers hear about the change
// before the section is switched.
func (n *Navigation) Select(tab domain.Tab) {
	n.deps.Mediator.Notify(domain.TabChanged{Tab: tab})
	n.setActiveTab(tab)
}

func (n *Navigation) setActiveTab(tab domain.Tab) {
	for _, known := range domain.Tabs() {
		if known == tab {
			n.state.Active = tab
			return
		}
	}
	n.deps.Logger.Warn("no section for tab", "tab", string(tab))
}

// SectionVisible reports whether the section of tab is shown
func (n *Navigation) SectionVisible(tab domain.Tab) bool {
	return n.state.Active == tab
}
