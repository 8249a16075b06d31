package site

import (
	"context"
	"time"
)

// Submission is the payload handed to the submitter: sanitized, validated
// fields plus the session token and a timestamp.
type Submission struct {
	Fields map[string]string
	Token  string
	At     time.Time
}

// Submitter is the external collaborator that accepts a submission. A nil
// return means success; any error is a failure the user can retry.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// SimulatedSubmitter stands in for the real backend: it performs no network
// I/O and reports a configured outcome. The in-flight delay is owned by the
// service's scheduler, so the simulation stays deterministic under a
// virtual clock.
type SimulatedSubmitter struct {
	err error
}

// SimulatedSubmitterOption configures a SimulatedSubmitter.
type SimulatedSubmitterOption func(*SimulatedSubmitter)

// WithOutcome makes every submission report err (nil for success).
func WithOutcome(err error) SimulatedSubmitterOption {
	return func(s *SimulatedSubmitter) { s.err = err }
}

// NewSimulatedSubmitter creates a submitter that succeeds unless configured
// otherwise.
func NewSimulatedSubmitter(opts ...SimulatedSubmitterOption) *SimulatedSubmitter {
	s := &SimulatedSubmitter{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, sub Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.err
}
