package providers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
)

// Request is a single vision analysis request: instructions plus one inline image
type Request struct {
	System    string
	Prompt    string
	Image     []byte
	MIMEType  string
	MaxTokens int
}

// DataURI returns the image as an inline base64 data URI
func (r Request) DataURI() string {
	return "data:" + r.MIMEType + ";base64," + r.Base64Image()
}

// Base64Image returns the image bytes in standard base64
func (r Request) Base64Image() string {
	return base64.StdEncoding.EncodeToString(r.Image)
}

// Provider defines the interface for a vision-capable LLM provider
type Provider interface {
	// Name identifies the provider in logs and metrics
	Name() string
	// Complete sends req and returns the reply text exactly as the service produced it
	Complete(ctx context.Context, req Request) (string, error)
}

// Failure classes a provider wraps its errors with
var (
	ErrAuth       = errors.New("authentication failed")
	ErrRateLimit  = errors.New("rate limited")
	ErrService    = errors.New("service error")
	ErrEmptyReply = errors.New("empty reply")
)

// StatusError maps an HTTP status returned by a provider API onto a failure class
func StatusError(status int, body string) error {
	var class error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		class = ErrAuth
	case status == http.StatusTooManyRequests:
		class = ErrRateLimit
	default:
		class = ErrService
	}
	return fmt.Errorf("%w: status %d - %s", class, status, body)
}
