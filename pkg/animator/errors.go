package animator

import "errors"

var (
	ErrViewRequired      = errors.New("view is required")
	ErrSchedulerRequired = errors.New("scheduler is required")
)
