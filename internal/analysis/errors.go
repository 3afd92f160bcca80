package analysis

import (
	"context"
	"errors"

	"github.com/styleadvisor/styleadvisor/internal/providers"
)

// Reason classifies why an analysis fell back to the default record
type Reason string

const (
	ReasonTransport         Reason = "transport"
	ReasonAuth              Reason = "auth"
	ReasonRateLimit         Reason = "rate_limit"
	ReasonService           Reason = "service"
	ReasonTimeout           Reason = "timeout"
	ReasonCanceled          Reason = "canceled"
	ReasonEmptyReply        Reason = "empty_reply"
	ReasonMalformedReply    Reason = "malformed_reply"
	ReasonUnsupportedDomain Reason = "unsupported_domain"
)

// ErrMalformedReply marks replies that could not be parsed into the domain schema
var ErrMalformedReply = errors.New("malformed reply")

// Failure records why the live analysis could not be used
type Failure struct {
	Reason Reason
	Err    error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return string(f.Reason)
	}
	return string(f.Reason) + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Reported reports whether the failure is surfaced on the error channel.
// Malformed replies are an expected condition and stay silent.
func (f *Failure) Reported() bool {
	return f.Reason != ReasonMalformedReply
}

// Message is the human-readable text shown to the user for a reported failure
func (f *Failure) Message() string {
	if f.Err == nil {
		return "Erreur d'analyse: " + string(f.Reason)
	}
	return "Erreur d'analyse: " + f.Err.Error()
}

// classify maps a provider error onto a failure reason
func classify(err error) *Failure {
	reason := ReasonTransport
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		reason = ReasonTimeout
	case errors.Is(err, context.Canceled):
		reason = ReasonCanceled
	case errors.Is(err, providers.ErrAuth):
		reason = ReasonAuth
	case errors.Is(err, providers.ErrRateLimit):
		reason = ReasonRateLimit
	case errors.Is(err, providers.ErrEmptyReply):
		reason = ReasonEmptyReply
	case errors.Is(err, providers.ErrService):
		reason = ReasonService
	}
	return &Failure{Reason: reason, Err: err}
}
