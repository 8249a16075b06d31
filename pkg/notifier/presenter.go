package notifier

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sitekit/pkg/sanitizer"
	"github.com/dmitrymomot/sitekit/pkg/scheduler"
	"github.com/dmitrymomot/sitekit/pkg/view"
)

// Presenter queues short-lived user-facing messages onto a single display
// surface. Showing a notification while another is active replaces the
// visible content and cancels the replaced notification's expiry timer.
type Presenter struct {
	mu           sync.Mutex
	sched        scheduler.Scheduler
	active       *Notification
	cancelExpiry func()

	surface   view.View
	surfaceID string
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithSurface binds the presenter to a view element. The element's text
// follows the active message and its classes carry a severity accent
// ("toast-info", "toast-error", ...); layout is untouched.
func WithSurface(v view.View, elementID string) PresenterOption {
	return func(p *Presenter) {
		p.surface = v
		p.surfaceID = elementID
	}
}

// NewPresenter creates a presenter scheduling expiry on sched.
func NewPresenter(sched scheduler.Scheduler, opts ...PresenterOption) (*Presenter, error) {
	if sched == nil {
		return nil, ErrSchedulerRequired
	}

	p := &Presenter{sched: sched}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Show displays a message and returns its id. The message is sanitized
// before display. A zero duration makes the notification sticky until
// Hide or HideAll. Expiry is scheduled now as a single delayed callback;
// it is cancelable only by Hide/HideAll or by being replaced.
func (p *Presenter) Show(message string, severity Severity, duration time.Duration) string {
	n := Notification{
		ID:        uuid.NewString(),
		Message:   sanitizer.SanitizeText(message),
		Severity:  normalizeSeverity(severity),
		Duration:  duration,
		CreatedAt: p.sched.Now(),
	}

	p.mu.Lock()
	p.dropActiveLocked()
	p.active = &n
	if duration > 0 {
		id := n.ID
		p.cancelExpiry = p.sched.After(duration, func() { p.expire(id) })
	}
	p.renderLocked()
	p.mu.Unlock()

	return n.ID
}

// Hide removes the notification if it is still the active one. Hiding an
// already-replaced or expired id is a no-op.
func (p *Presenter) Hide(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active == nil || p.active.ID != id {
		return
	}
	p.dropActiveLocked()
	p.renderLocked()
}

// HideAll clears the display surface unconditionally.
func (p *Presenter) HideAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dropActiveLocked()
	p.renderLocked()
}

// Active returns the currently displayed notification.
func (p *Presenter) Active() (Notification, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == nil {
		return Notification{}, false
	}
	return *p.active, true
}

// expire is the scheduled auto-hide callback. It no-ops when the
// notification was already replaced or hidden.
func (p *Presenter) expire(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active == nil || p.active.ID != id {
		return
	}
	p.active = nil
	p.cancelExpiry = nil
	p.renderLocked()
}

func (p *Presenter) dropActiveLocked() {
	if p.cancelExpiry != nil {
		p.cancelExpiry()
		p.cancelExpiry = nil
	}
	p.active = nil
}

// renderLocked projects the active notification onto the bound surface.
func (p *Presenter) renderLocked() {
	if p.surface == nil {
		return
	}

	for _, s := range []Severity{SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError} {
		p.surface.RemoveClass(p.surfaceID, "toast-"+string(s))
	}

	if p.active == nil {
		p.surface.SetText(p.surfaceID, "")
		p.surface.Deactivate(p.surfaceID)
		return
	}

	p.surface.SetText(p.surfaceID, p.active.Message)
	p.surface.AddClass(p.surfaceID, "toast-"+string(p.active.Severity))
	p.surface.Activate(p.surfaceID)
}
