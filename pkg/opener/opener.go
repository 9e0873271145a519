// Package opener opens URIs through an ordered chain of providers.
package opener

import (
	"fmt"
	"net/url"

	"github.com/vizioz/task-issues/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=opener.go -destination=mocks/opener.gen.go -package=mocks

// URIOpener opens a URI and reports whether some provider launched a handler.
type URIOpener interface {
	Open(uri string) (bool, error)
}

// NewOpenerParams contains parameters for creating a new Opener.
type NewOpenerParams struct {
	// Preferred providers are tried in order for any absolute URI.
	Preferred []Provider
	// Fallback is tried last, and only for http and https URIs.
	Fallback Provider
	Logger   logger.Logger
}

// Opener tries its preferred providers, then its fallback, stopping at the first success.
type Opener struct {
	preferred []Provider
	fallback  Provider
	logger    logger.Logger
}

// NewOpener creates a new Opener.
func NewOpener(params NewOpenerParams) *Opener {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	return &Opener{
		preferred: params.Preferred,
		fallback:  params.Fallback,
		logger:    l,
	}
}

// Open opens the URI. It returns false without error when the URI is not
// absolute, when its scheme cannot be handed to the fallback, or when every
// provider reported an expected failure. Unexpected provider faults are
// returned as errors and stop the chain.
func (o *Opener) Open(rawURI string) (bool, error) {
	uri, err := url.Parse(rawURI)
	if err != nil || !uri.IsAbs() {
		o.logger.Logf("Refusing to open %q: not an absolute URI", rawURI)
		return false, nil
	}

	for _, provider := range o.preferred {
		opened, err := o.tryPreferred(provider, uri)
		if err != nil {
			return false, err
		}
		if opened {
			return true, nil
		}
	}

	if uri.Scheme != "http" && uri.Scheme != "https" {
		o.logger.Logf("Not handing %s to the system launcher: scheme %q is not http or https", uri, uri.Scheme)
		return false, nil
	}

	return o.tryFallback(uri)
}

// tryPreferred reports whether provider opened uri. An expected failure
// outcome lets the chain continue; an unexpected fault stops it.
func (o *Opener) tryPreferred(provider Provider, uri *url.URL) (bool, error) {
	if provider == nil || !provider.Available() {
		return false, nil
	}

	outcome, err := provider.Open(uri)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrOpenFailed, provider.Name(), err)
	}
	if outcome != OutcomeOpened {
		o.logger.Logf("%s could not open %s: %s", provider.Name(), uri, outcome)
		return false, nil
	}

	o.logger.Logf("Opened %s with %s", uri, provider.Name())
	return true, nil
}

func (o *Opener) tryFallback(uri *url.URL) (bool, error) {
	if o.fallback == nil || !o.fallback.Available() {
		o.logger.Logf("No system launcher available for %s", uri)
		return false, nil
	}

	outcome, err := o.fallback.Open(uri)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrOpenFailed, o.fallback.Name(), err)
	}

	switch outcome {
	case OutcomeOpened:
		o.logger.Logf("Opened %s with %s", uri, o.fallback.Name())
		return true, nil
	default:
		o.logger.Logf("%s could not open %s: %s", o.fallback.Name(), uri, outcome)
		return false, nil
	}
}
