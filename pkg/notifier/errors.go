package notifier

import "errors"

var (
	ErrSchedulerRequired = errors.New("scheduler is required")
)
