package password

import (
	"github.com/bornholm/jis/internal/authn/oauth2"
	"github.com/bornholm/jis/internal/ratelimit"
)

type Options struct {
	Providers      []oauth2.Provider
	ProviderPrefix string
	SignupEnabled  bool
	RateLimiter    *ratelimit.RateLimiter
	LoginPath      string
	SignupPath     string
	PostLoginPath  string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Providers:      make([]oauth2.Provider, 0),
		ProviderPrefix: "/auth",
		SignupEnabled:  true,
		LoginPath:      "/login",
		SignupPath:     "/signup",
		PostLoginPath:  "/",
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithProviders lists the identity providers offered on the login page.
func WithProviders(prefix string, providers ...oauth2.Provider) OptionFunc {
	return func(opts *Options) {
		opts.ProviderPrefix = prefix
		opts.Providers = providers
	}
}

func WithSignup(enabled bool) OptionFunc {
	return func(opts *Options) {
		opts.SignupEnabled = enabled
	}
}

// WithRateLimiter throttles credential submissions per client address.
func WithRateLimiter(limiter *ratelimit.RateLimiter) OptionFunc {
	return func(opts *Options) {
		opts.RateLimiter = limiter
	}
}
