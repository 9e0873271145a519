package opener

import "net/url"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=provider.go -destination=mocks/provider.gen.go -package=mocks

// Outcome is the result a provider reports for an open attempt.
type Outcome int

const (
	// OutcomeFailed means the provider tried and signalled failure.
	OutcomeFailed Outcome = iota
	// OutcomeOpened means a handler was launched for the URI.
	OutcomeOpened
	// OutcomeNotFound means the launcher executable does not exist.
	OutcomeNotFound
	// OutcomeNoHandler means no application is registered for the URI protocol.
	OutcomeNoHandler
)

// String returns a short label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOpened:
		return "opened"
	case OutcomeNotFound:
		return "launcher not found"
	case OutcomeNoHandler:
		return "no handler registered"
	default:
		return "failed"
	}
}

// Provider is a mechanism able to open a URI.
type Provider interface {
	// Name returns the name of the provider
	Name() string

	// Available reports whether the provider can be used on this host
	Available() bool

	// Open hands the URI to the provider. Expected failures are reported
	// through the outcome; the error is reserved for anything else.
	Open(uri *url.URL) (Outcome, error)
}
