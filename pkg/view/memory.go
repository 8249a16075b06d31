package view

import (
	"slices"
	"sync"
)

// Element is the recorded state of one element in a MemoryView.
type Element struct {
	Active   bool
	Text     string
	Classes  []string
	Scrolled int // times ScrollTo hit this element
}

// HasClass reports whether the element carries the class.
func (e Element) HasClass(class string) bool {
	return slices.Contains(e.Classes, class)
}

// MemoryView is an in-memory View that records element state. Elements must
// be registered up front with AddElement; calls against unregistered ids
// no-op, mirroring a DOM where the node is gone.
//
// Safe for concurrent use.
type MemoryView struct {
	mu       sync.RWMutex
	elements map[string]*Element
	fallback string
}

// NewMemoryView creates an empty memory view.
func NewMemoryView() *MemoryView {
	return &MemoryView{
		elements: make(map[string]*Element),
	}
}

// AddElement registers element ids with the view.
func (v *MemoryView) AddElement(ids ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, id := range ids {
		if _, ok := v.elements[id]; !ok {
			v.elements[id] = &Element{}
		}
	}
}

// RemoveElement unregisters an element, simulating a node leaving the DOM.
func (v *MemoryView) RemoveElement(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.elements, id)
}

// Element returns a copy of the element's state.
func (v *MemoryView) Element(id string) (Element, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	e, ok := v.elements[id]
	if !ok {
		return Element{}, false
	}
	out := *e
	out.Classes = slices.Clone(e.Classes)
	return out, true
}

// Fallback returns the static fallback message, if one was rendered.
func (v *MemoryView) Fallback() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.fallback
}

func (v *MemoryView) Activate(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if e, ok := v.elements[id]; ok {
		e.Active = true
	}
}

func (v *MemoryView) Deactivate(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if e, ok := v.elements[id]; ok {
		e.Active = false
	}
}

func (v *MemoryView) SetText(id, text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if e, ok := v.elements[id]; ok {
		e.Text = text
	}
}

func (v *MemoryView) AddClass(id, class string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if e, ok := v.elements[id]; ok && !slices.Contains(e.Classes, class) {
		e.Classes = append(e.Classes, class)
	}
}

func (v *MemoryView) RemoveClass(id, class string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if e, ok := v.elements[id]; ok {
		if i := slices.Index(e.Classes, class); i >= 0 {
			e.Classes = slices.Delete(e.Classes, i, i+1)
		}
	}
}

func (v *MemoryView) ScrollTo(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if e, ok := v.elements[id]; ok {
		e.Scrolled++
	}
}

func (v *MemoryView) Has(id string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.elements[id]
	return ok
}

// RenderFallback replaces the whole surface with a static message.
func (v *MemoryView) RenderFallback(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fallback = message
	v.elements = make(map[string]*Element)
}
