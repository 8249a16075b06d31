package site

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"strings"
	"sync"

	"github.com/dmitrymomot/sitekit/pkg/animator"
	"github.com/dmitrymomot/sitekit/pkg/logger"
	"github.com/dmitrymomot/sitekit/pkg/navigator"
	"github.com/dmitrymomot/sitekit/pkg/notifier"
	"github.com/dmitrymomot/sitekit/pkg/ratelimit"
	"github.com/dmitrymomot/sitekit/pkg/sanitizer"
	"github.com/dmitrymomot/sitekit/pkg/scheduler"
	"github.com/dmitrymomot/sitekit/pkg/session"
	"github.com/dmitrymomot/sitekit/pkg/validator"
	"github.com/dmitrymomot/sitekit/pkg/view"
)

// ToastElementID is the view element the notification presenter renders to.
const ToastElementID = "toast"

const (
	fallbackMessage = "This page is temporarily unavailable. Please refresh."

	msgSuspicious   = "Unable to process your submission."
	msgValidation   = "Please correct the highlighted fields."
	msgRateLimited  = "Too many attempts. Please try again later."
	msgSubmitFailed = "Something went wrong. Please try again."
	msgSubmitOK     = "Thanks! Your message has been sent."
)

// Service is the page orchestrator: it owns the session, routes host events
// to navigation and animation, and runs form submissions through the
// sanitize/validate/rate-limit pipeline.
type Service struct {
	cfg   Config
	log   *slog.Logger
	sched scheduler.Scheduler
	view  view.View

	sess      *session.Session
	rules     *validator.RuleSet
	limiter   *ratelimit.SlidingWindow
	toasts    *notifier.Presenter
	nav       *navigator.Navigator
	anim      *animator.Animator
	submitter Submitter
	rateStore ratelimit.Store

	mu            sync.Mutex
	attempted     int
	succeeded     int
	lastRejected  map[string]string
	lastSubmitErr error
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithScheduler replaces the wall clock. Tests pass a virtual scheduler so
// submission delays and toast expiry run deterministically.
func WithScheduler(sched scheduler.Scheduler) Option {
	return func(s *Service) {
		if sched != nil {
			s.sched = sched
		}
	}
}

// WithSubmitter sets the submission backend.
func WithSubmitter(sub Submitter) Option {
	return func(s *Service) {
		if sub != nil {
			s.submitter = sub
		}
	}
}

// WithRules replaces the default contact-form rule set.
func WithRules(rules *validator.RuleSet) Option {
	return func(s *Service) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithRateLimitStore sets the durable bucket store for submission limiting.
func WithRateLimitStore(store ratelimit.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.rateStore = store
		}
	}
}

// DefaultContactRules returns the contact form's field rules.
func DefaultContactRules() *validator.RuleSet {
	rules := validator.NewRuleSet()
	rules.AddRule("name", validator.NotEmpty(), "Name is required")
	rules.AddRule("name", validator.MinLen(2), "Name must be at least 2 characters")
	rules.AddRule("email", validator.NotEmpty(), "Email is required")
	rules.AddRule("email", validator.Email(), "Please enter a valid email address")
	rules.AddRule("message", validator.NotEmpty(), "Message is required")
	rules.AddRule("message", validator.MinLen(10), "Message must be at least 10 characters")
	rules.AddRule("message", validator.MaxLen(sanitizer.MaxTextLength), "Message is too long")
	return rules
}

// New wires the full page toolkit over a view and a closed section set. On
// any construction failure the view's fallback is rendered (when supported)
// and ErrInitFailed is returned.
func New(cfg Config, v view.View, sections []string, opts ...Option) (*Service, error) {
	if v == nil {
		return nil, errors.Join(ErrInitFailed, navigator.ErrViewRequired)
	}

	s := &Service{
		cfg:       cfg,
		view:      v,
		log:       logger.New(logger.WithService("site")),
		sched:     scheduler.NewWall(),
		submitter: NewSimulatedSubmitter(),
		rules:     DefaultContactRules(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.rateStore == nil {
		s.rateStore = ratelimit.NewMemoryStore()
	}

	fail := func(err error) (*Service, error) {
		if fr, ok := v.(view.FallbackRenderer); ok {
			fr.RenderFallback(fallbackMessage)
		}
		s.log.Error("site initialization failed", logger.Error(err))
		return nil, errors.Join(ErrInitFailed, err)
	}

	sess, err := session.New(cfg.SessionTTL, cfg.SessionSecret)
	if err != nil {
		return fail(err)
	}
	s.sess = sess

	s.limiter, err = ratelimit.New(s.rateStore, cfg.SubmitLimit, cfg.SubmitWindow,
		ratelimit.WithClock(s.sched.Now))
	if err != nil {
		return fail(err)
	}

	s.toasts, err = notifier.NewPresenter(s.sched, notifier.WithSurface(v, ToastElementID))
	if err != nil {
		return fail(err)
	}

	s.nav, err = navigator.New(v, sections)
	if err != nil {
		return fail(err)
	}

	s.anim, err = animator.New(v, s.sched)
	if err != nil {
		return fail(err)
	}

	return s, nil
}

// HandleSubmit runs one form submission through the pipeline: suspicious
// input gate, sanitization, field validation, rate limiting, then a delayed
// hand-off to the submitter. Each rejection raises a toast and returns its
// taxonomy error; a nil return means the submission is in flight.
func (s *Service) HandleSubmit(ctx context.Context, fields map[string]string) error {
	s.mu.Lock()
	s.attempted++
	s.mu.Unlock()

	s.sess.LogInteraction("submit", "contact-form")
	s.sess.Touch(s.cfg.SessionTTL)

	if sanitizer.DetectSuspiciousFields(fields) {
		s.log.Warn("submission rejected by input screen")
		s.toasts.Show(msgSuspicious, notifier.SeverityError, s.cfg.ToastDuration)
		return ErrSuspiciousInput
	}

	clean := make(map[string]string, len(fields))
	for name, value := range fields {
		clean[name] = sanitizer.RemoveNullBytes(value)
	}
	clean = sanitizer.SanitizeFields(clean)

	s.mu.Lock()
	ok := s.rules.Validate(clean)
	s.mu.Unlock()
	if !ok {
		s.toasts.Show(msgValidation, notifier.SeverityWarning, s.cfg.ToastDuration)
		return ErrValidationFailed
	}

	res, err := s.limiter.Allow(ctx, s.cfg.SubmitRateKey)
	if err != nil {
		s.log.Error("rate limit store failed", logger.Error(err))
		s.toasts.Show(msgSubmitFailed, notifier.SeverityError, s.cfg.ToastDuration)
		return err
	}
	if !res.Allowed {
		s.toasts.Show(msgRateLimited, notifier.SeverityWarning, s.cfg.ToastDuration)
		return ErrRateLimited
	}

	sub := Submission{
		Fields: clean,
		Token:  s.sess.Token,
		At:     s.sched.Now(),
	}
	bg := context.WithoutCancel(ctx)
	s.sched.After(s.cfg.SubmitDelay, func() {
		s.completeSubmission(bg, sub)
	})

	return nil
}

// completeSubmission is the delayed tail of the pipeline, fired by the
// scheduler once the submission delay elapses.
func (s *Service) completeSubmission(ctx context.Context, sub Submission) {
	if err := s.submitter.Submit(ctx, sub); err != nil {
		s.log.Error("submission failed", logger.Error(err))

		s.mu.Lock()
		s.lastRejected = maps.Clone(sub.Fields)
		s.lastSubmitErr = errors.Join(ErrSubmitFailed, err)
		s.mu.Unlock()

		s.toasts.Show(msgSubmitFailed, notifier.SeverityError, s.cfg.ToastDuration)
		return
	}

	s.mu.Lock()
	s.succeeded++
	s.lastRejected = nil
	s.lastSubmitErr = nil
	s.mu.Unlock()

	s.toasts.Show(msgSubmitOK, notifier.SeveritySuccess, s.cfg.ToastDuration)
	if err := s.nav.NavigateTo(s.cfg.PostSubmitSection); err != nil {
		s.log.Warn("post-submit navigation failed", logger.Error(err))
	}
}

// HandleEvent routes one host event. A panicking handler is recovered and
// logged so a single bad event cannot take the page down.
func (s *Service) HandleEvent(e Event) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("event handler panicked",
				slog.String("kind", string(e.Kind)), slog.Any("panic", r))
		}
	}()

	s.sess.LogInteraction(string(e.Kind), e.Target)

	switch e.Kind {
	case EventClick:
		s.handleClick(e.Target)
	case EventOutsideClick:
		s.nav.HandleOutsideClick()
	case EventKeyDown:
		if e.Key == "Escape" {
			s.nav.HandleEscape()
		}
	case EventResize:
		s.nav.HandleResize(e.Width)
	case EventIntersect:
		s.anim.Intersect(e.Target, e.Ratio)
	case EventVisibilityChange:
		if !e.Hidden {
			s.sess.Touch(s.cfg.SessionTTL)
		}
	case EventBeforeUnload:
		s.log.Info("session ending",
			slog.String("session_id", s.sess.ID.String()),
			slog.Int("interactions", len(s.sess.Interactions())))
	}
}

func (s *Service) handleClick(target string) {
	switch {
	case target == "menu-toggle":
		s.nav.ToggleMenu()
	case strings.HasPrefix(target, "nav-"):
		section := strings.TrimPrefix(target, "nav-")
		if err := s.nav.NavigateTo(section); err != nil {
			s.log.Warn("navigation click ignored",
				slog.String("target", target), logger.Error(err))
		}
	}
}

// Session returns the page session.
func (s *Service) Session() *session.Session {
	return s.sess
}

// Navigator exposes navigation for host wiring (tab registration, direct
// section jumps).
func (s *Service) Navigator() *navigator.Navigator {
	return s.nav
}

// Animator exposes animations for host wiring (observation, counters).
func (s *Service) Animator() *animator.Animator {
	return s.anim
}

// Notifications exposes the toast presenter.
func (s *Service) Notifications() *notifier.Presenter {
	return s.toasts
}

// Stats returns the attempted and succeeded submission counts.
func (s *Service) Stats() (attempted, succeeded int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempted, s.succeeded
}

// LastRejected returns a copy of the fields from the most recent backend
// rejection, so the host can repopulate the form for retry.
func (s *Service) LastRejected() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.lastRejected)
}

// LastSubmitError returns the most recent backend failure wrapped in
// ErrSubmitFailed, or nil after a success.
func (s *Service) LastSubmitError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSubmitErr
}

// FieldErrors returns the per-field messages from the last validation run.
func (s *Service) FieldErrors() validator.ValidationErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rules.Errors()
}
