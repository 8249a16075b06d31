package site

import "time"

// Config holds the site module configuration.
type Config struct {
	// SessionTTL is how long a page session stays valid.
	SessionTTL time.Duration `env:"SITE_SESSION_TTL" envDefault:"30m"`

	// SessionSecret signs the session token.
	SessionSecret string `env:"SITE_SESSION_SECRET" envDefault:"sitekit-insecure-dev-secret"`

	// SubmitLimit and SubmitWindow bound form submissions per window.
	SubmitLimit  int           `env:"SITE_SUBMIT_LIMIT" envDefault:"3"`
	SubmitWindow time.Duration `env:"SITE_SUBMIT_WINDOW" envDefault:"10m"`

	// SubmitRateKey is the rate-limit bucket key for form submissions.
	SubmitRateKey string `env:"SITE_SUBMIT_RATE_KEY" envDefault:"form_submission"`

	// SubmitDelay is how long a submission stays in flight before the
	// submitter reports its outcome.
	SubmitDelay time.Duration `env:"SITE_SUBMIT_DELAY" envDefault:"1500ms"`

	// ToastDuration is the default auto-hide delay for notifications.
	ToastDuration time.Duration `env:"SITE_TOAST_DURATION" envDefault:"5s"`

	// PostSubmitSection is navigated to after a successful submission.
	PostSubmitSection string `env:"SITE_POST_SUBMIT_SECTION" envDefault:"home"`
}

// DefaultConfig returns the defaults used when no environment is loaded.
func DefaultConfig() Config {
	return Config{
		SessionTTL:        30 * time.Minute,
		SessionSecret:     "sitekit-insecure-dev-secret",
		SubmitLimit:       3,
		SubmitWindow:      10 * time.Minute,
		SubmitRateKey:     "form_submission",
		SubmitDelay:       1500 * time.Millisecond,
		ToastDuration:     5 * time.Second,
		PostSubmitSection: "home",
	}
}
