// Package animator drives the page's visual transitions: one-shot reveals
// when observed elements first enter the viewport, linear count-up
// counters, typewriter text reveals and eased smooth scrolling.
//
// The host reports element visibility through Intersect; everything
// time-based ticks on a scheduler, so tests advance a virtual clock instead
// of waiting. Reveals fire once per element and are then suppressed for the
// element's lifetime.
package animator
