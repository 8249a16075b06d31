// Package notifier displays short-lived, toast-style user messages on a
// single display surface.
//
// Exactly one notification is visible at a time: a Show call while another
// notification is active replaces the visible content and cancels the old
// expiry timer. Severity selects a visual accent class without altering
// layout. A duration of zero makes the notification sticky until it is
// explicitly hidden.
//
// Messages pass through the sanitizer before display, and expiry runs on a
// scheduler so tests drive it with virtual time.
package notifier
