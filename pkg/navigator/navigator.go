package navigator

import (
	"slices"
	"sync"

	"github.com/dmitrymomot/sitekit/pkg/view"
)

const (
	// MenuBreakpoint is the viewport width at and above which the mobile
	// menu is force-closed.
	MenuBreakpoint = 768

	// MenuElementID is the view element representing the mobile menu.
	MenuElementID = "mobile-menu"

	// navControlPrefix maps a section id to its navigation control
	// element ("services" -> "nav-services").
	navControlPrefix = "nav-"
)

// Navigator owns the page's navigation state: the current section out of a
// closed set, per-group active tabs, and the mobile menu boolean. All panel
// and control marking goes through the view adapter.
type Navigator struct {
	mu       sync.Mutex
	view     view.View
	sections []string
	current  string

	tabs      map[string][]string
	activeTab map[string]string

	menuOpen bool
}

// New creates a navigator over a closed section set. The first section
// becomes current and is activated immediately.
func New(v view.View, sections []string) (*Navigator, error) {
	if v == nil {
		return nil, ErrViewRequired
	}
	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	n := &Navigator{
		view:      v,
		sections:  slices.Clone(sections),
		tabs:      make(map[string][]string),
		activeTab: make(map[string]string),
	}
	n.mu.Lock()
	n.applySectionLocked(sections[0], false)
	n.mu.Unlock()

	return n, nil
}

// Current returns the current section id.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Sections returns the closed section set.
func (n *Navigator) Sections() []string {
	return slices.Clone(n.sections)
}

// NavigateTo transitions to the target section: every section panel and nav
// control is deactivated, the target pair is activated, the target scrolls
// into view and the mobile menu closes. Navigating to the current section
// re-applies activation, which keeps the operation idempotent.
func (n *Navigator) NavigateTo(section string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !slices.Contains(n.sections, section) {
		return ErrUnknownSection
	}

	n.applySectionLocked(section, true)
	n.closeMenuLocked()
	return nil
}

func (n *Navigator) applySectionLocked(section string, scroll bool) {
	for _, s := range n.sections {
		n.view.Deactivate(s)
		n.view.Deactivate(navControlPrefix + s)
	}

	n.view.Activate(section)
	n.view.Activate(navControlPrefix + section)
	if scroll {
		n.view.ScrollTo(section)
	}
	n.current = section
}

// RegisterTabs declares a tab group. The first tab becomes active. Tab
// state is independent of section state.
func (n *Navigator) RegisterTabs(group string, tabs ...string) error {
	if group == "" || len(tabs) == 0 {
		return ErrNoTabs
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.tabs[group]; exists {
		return ErrDuplicateTabGroup
	}

	n.tabs[group] = slices.Clone(tabs)
	n.applyTabLocked(group, tabs[0])
	return nil
}

// ActivateTab switches the active tab within a group, mirroring section
// activation at a finer grain.
func (n *Navigator) ActivateTab(group, tab string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	tabs, ok := n.tabs[group]
	if !ok {
		return ErrUnknownTabGroup
	}
	if !slices.Contains(tabs, tab) {
		return ErrUnknownTab
	}

	n.applyTabLocked(group, tab)
	return nil
}

func (n *Navigator) applyTabLocked(group, tab string) {
	for _, t := range n.tabs[group] {
		n.view.Deactivate(t)
	}
	n.view.Activate(tab)
	n.activeTab[group] = tab
}

// ActiveTab returns the active tab of a group.
func (n *Navigator) ActiveTab(group string) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	tab, ok := n.activeTab[group]
	return tab, ok
}
