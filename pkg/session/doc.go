// Package session models one page visit: a CSRF-like opaque token, an
// expiry window and a bounded log of user interactions (capacity 100,
// oldest evicted first). Nothing here is persisted; a reload starts a new
// session.
package session
