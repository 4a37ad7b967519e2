package authn

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bornholm/jis/pkg/log"
	"github.com/pkg/errors"
)

type Authenticator interface {
	Authenticate(w http.ResponseWriter, r *http.Request) (User, error)
}

type AuthenticateFunc func(w http.ResponseWriter, r *http.Request) (User, error)

func (fn AuthenticateFunc) Authenticate(w http.ResponseWriter, r *http.Request) (User, error) {
	return fn(w, r)
}

func Chain(funcs ...MiddlewareOptionFunc) func(http.Handler) http.Handler {
	opts := NewMiddlewareOptions(funcs...)
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			for _, auth := range opts.Authenticators {
				user, err := auth.Authenticate(w, r)
				if err != nil {
					slog.DebugContext(ctx, "authenticator failed", log.Error(errors.WithStack(err)))
				}

				if user == nil {
					continue
				}

				ctx = WithContextUser(ctx, user)
				ctx = log.WithAttrs(ctx, slog.String("user", fmt.Sprintf("%s@%s", user.UserSubject(), user.UserProvider())))
				r = r.WithContext(ctx)

				rr, err := opts.OnAuthenticated(r, user)
				if err != nil {
					opts.OnError(w, r, err)
					return
				}

				next.ServeHTTP(w, rr)
				return
			}

			if opts.AllowAnonymous {
				r = r.WithContext(WithContextSnapshot(ctx, Anonymous()))
				next.ServeHTTP(w, r)
				return
			}

			opts.UnauthorizedHandler.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

type OnAuthenticatedFunc func(r *http.Request, user User) (*http.Request, error)
type OnErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

type MiddlewareOptions struct {
	UnauthorizedHandler http.Handler
	Authenticators      []Authenticator
	OnAuthenticated     OnAuthenticatedFunc
	OnError             OnErrorFunc
	AllowAnonymous      bool
}

type MiddlewareOptionFunc func(opts *MiddlewareOptions)

func NewMiddlewareOptions(funcs ...MiddlewareOptionFunc) *MiddlewareOptions {
	opts := &MiddlewareOptions{
		OnAuthenticated: func(r *http.Request, user User) (*http.Request, error) {
			ctx := WithContextSnapshot(r.Context(), NewSnapshot(user, false))
			return r.WithContext(ctx), nil
		},
		UnauthorizedHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		}),
		OnError: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.ErrorContext(r.Context(), "authentication error", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithAuthenticators(authenticators ...Authenticator) MiddlewareOptionFunc {
	return func(opts *MiddlewareOptions) {
		opts.Authenticators = authenticators
	}
}

func WithUnauthorizedHandler(h http.Handler) MiddlewareOptionFunc {
	return func(opts *MiddlewareOptions) {
		opts.UnauthorizedHandler = h
	}
}

func WithOnAuthenticated(fn OnAuthenticatedFunc) MiddlewareOptionFunc {
	return func(opts *MiddlewareOptions) {
		opts.OnAuthenticated = fn
	}
}

// WithAnonymous lets unauthenticated requests through with an anonymous
// snapshot instead of calling the unauthorized handler.
func WithAnonymous() MiddlewareOptionFunc {
	return func(opts *MiddlewareOptions) {
		opts.AllowAnonymous = true
	}
}

// RedirectToLogin returns an handler redirecting anonymous visitors to the
// login page.
func RedirectToLogin(loginPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
	})
}
