// Package navigator tracks which section, tabs and menu state a page is in
// and keeps the mutually exclusive panels consistent through the view
// adapter.
//
// Sections form a closed set fixed at construction. A navigation request
// deactivates every panel and nav control, activates the target pair,
// scrolls it into view and closes the mobile menu. Tab groups follow the
// identical pattern at a finer grain and are independent of section state.
// The mobile menu is an orthogonal boolean that also closes implicitly on
// outside clicks, the escape key, any navigation, or the viewport crossing
// the desktop breakpoint.
package navigator
