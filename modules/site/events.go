package site

// EventKind identifies which host event fired.
type EventKind string

const (
	EventClick            EventKind = "click"
	EventOutsideClick     EventKind = "outside_click"
	EventKeyDown          EventKind = "keydown"
	EventScroll           EventKind = "scroll"
	EventResize           EventKind = "resize"
	EventIntersect        EventKind = "intersect"
	EventVisibilityChange EventKind = "visibilitychange"
	EventBeforeUnload     EventKind = "beforeunload"
)

// Event is the host's input contract: something happened, with these data
// fields. Only the fields relevant to the kind are read.
type Event struct {
	Kind   EventKind
	Target string  // element id, for click/intersect
	Key    string  // pressed key, for keydown
	Width  int     // viewport width, for resize
	Ratio  float64 // visibility ratio, for intersect
	Hidden bool    // document hidden, for visibilitychange
}
