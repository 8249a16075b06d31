package view

// View is the narrow capability set the toolkit needs from a rendering
// surface: activate/deactivate an element, set its text, toggle classes and
// scroll it into view. A browser host adapts these onto the DOM; tests and
// headless hosts use MemoryView.
//
// Every method must tolerate unknown element ids by doing nothing. Timer
// callbacks routinely outlive the elements they were scheduled for, and a
// dangling callback hitting a missing element is expected, not an error.
type View interface {
	// Activate marks the element as the active one of its group.
	Activate(id string)

	// Deactivate removes the active mark.
	Deactivate(id string)

	// SetText replaces the element's text content.
	SetText(id, text string)

	// AddClass adds a CSS class to the element.
	AddClass(id, class string)

	// RemoveClass removes a CSS class from the element.
	RemoveClass(id, class string)

	// ScrollTo scrolls the element into view.
	ScrollTo(id string)

	// Has reports whether the element exists.
	Has(id string) bool
}

// FallbackRenderer is implemented by views that can replace the entire UI
// with a static message when initialization fails.
type FallbackRenderer interface {
	RenderFallback(message string)
}
