package oauth2

import (
	"net/http"

	"github.com/pkg/errors"
)

// OnUserAuthenticatedFunc is called once the identity provider confirmed
// the user identity. It is expected to open the visitor's session.
type OnUserAuthenticatedFunc func(w http.ResponseWriter, r *http.Request, user *User) error

type Options struct {
	Providers           []Provider
	Prefix              string
	PostLoginRedirect   string
	PostLogoutRedirect  string
	FailureRedirect     string
	OnUserAuthenticated OnUserAuthenticatedFunc
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Providers:          make([]Provider, 0),
		Prefix:             "",
		PostLoginRedirect:  "/",
		PostLogoutRedirect: "/",
		FailureRedirect:    "/login",
		OnUserAuthenticated: func(w http.ResponseWriter, r *http.Request, user *User) error {
			return errors.New("no user authentication callback configured")
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithProviders(providers ...Provider) OptionFunc {
	return func(opts *Options) {
		opts.Providers = providers
	}
}

func WithPrefix(prefix string) OptionFunc {
	return func(opts *Options) {
		opts.Prefix = prefix
	}
}

func WithPostLoginRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.PostLoginRedirect = path
	}
}

func WithPostLogoutRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.PostLogoutRedirect = path
	}
}

func WithFailureRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.FailureRedirect = path
	}
}

func WithOnUserAuthenticated(fn OnUserAuthenticatedFunc) OptionFunc {
	return func(opts *Options) {
		opts.OnUserAuthenticated = fn
	}
}
