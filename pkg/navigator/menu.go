package navigator

// MenuOpen reports whether the mobile menu is open.
func (n *Navigator) MenuOpen() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.menuOpen
}

// ToggleMenu flips the mobile menu state.
func (n *Navigator) ToggleMenu() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.menuOpen {
		n.closeMenuLocked()
	} else {
		n.menuOpen = true
		n.view.Activate(MenuElementID)
	}
}

// OpenMenu opens the mobile menu.
func (n *Navigator) OpenMenu() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.menuOpen = true
	n.view.Activate(MenuElementID)
}

// CloseMenu closes the mobile menu.
func (n *Navigator) CloseMenu() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closeMenuLocked()
}

// HandleOutsideClick closes the menu when a press lands outside it.
func (n *Navigator) HandleOutsideClick() {
	n.CloseMenu()
}

// HandleEscape closes the menu on the escape key.
func (n *Navigator) HandleEscape() {
	n.CloseMenu()
}

// HandleResize closes the menu once the viewport crosses the desktop
// breakpoint, where the mobile menu no longer exists.
func (n *Navigator) HandleResize(width int) {
	if width >= MenuBreakpoint {
		n.CloseMenu()
	}
}

func (n *Navigator) closeMenuLocked() {
	n.menuOpen = false
	n.view.Deactivate(MenuElementID)
}
