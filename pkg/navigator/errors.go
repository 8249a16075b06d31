package navigator

import "errors"

var (
	ErrViewRequired      = errors.New("view is required")
	ErrNoSections        = errors.New("at least one section is required")
	ErrUnknownSection    = errors.New("unknown section")
	ErrNoTabs            = errors.New("at least one tab is required")
	ErrUnknownTabGroup   = errors.New("unknown tab group")
	ErrUnknownTab        = errors.New("unknown tab")
	ErrDuplicateTabGroup = errors.New("tab group already registered")
)
