package notifier

import "time"

// Severity classifies a notification for its visual accent. The set is
// closed; unknown values normalize to SeverityInfo.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return true
	}
	return false
}

func normalizeSeverity(s Severity) Severity {
	if s.Valid() {
		return s
	}
	return SeverityInfo
}

// Notification is one displayed message. Duration 0 means the notification
// stays until explicitly hidden.
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	Duration  time.Duration
	CreatedAt time.Time
}

// Sticky reports whether the notification never auto-expires.
func (n Notification) Sticky() bool {
	return n.Duration == 0
}
