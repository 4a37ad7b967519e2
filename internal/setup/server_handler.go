package setup

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/jis/internal/admin"
	"github.com/bornholm/jis/internal/authn"
	"github.com/bornholm/jis/internal/authn/password"
	"github.com/bornholm/jis/internal/authz"
	"github.com/bornholm/jis/internal/config"
	"github.com/bornholm/jis/internal/media"
	"github.com/bornholm/jis/internal/pprof"
	"github.com/bornholm/jis/internal/ratelimit"
	"github.com/bornholm/jis/internal/site"
	"github.com/bornholm/jis/internal/ui"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

const loginPath = "/login"

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	store, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessionManager, err := NewSessionManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	navbar, err := NewNavbarFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	oauth2Handler, err := NewOAuth2HandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessionAuthenticator, err := NewSessionAuthenticatorFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	onAuthenticated, err := NewOnAuthenticatedFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	publicAuth := authn.Chain(
		authn.WithAuthenticators(sessionAuthenticator),
		authn.WithOnAuthenticated(onAuthenticated),
		authn.WithAnonymous(),
	)

	privateAuth := authn.Chain(
		authn.WithAuthenticators(sessionAuthenticator),
		authn.WithOnAuthenticated(onAuthenticated),
		authn.WithUnauthorizedHandler(authn.RedirectToLogin(loginPath)),
	)

	mux.Handle(oauth2Prefix+"/", oauth2Handler)

	passwordHandler := password.NewHandler(
		store, sessionManager, navbar,
		password.WithProviders(oauth2Prefix, oauth2Handler.Providers()...),
		password.WithSignup(bool(conf.Auth.Signup.Enabled)),
		password.WithRateLimiter(ratelimit.New(rate.Every(6*time.Second), 10)),
	)

	mux.Handle(loginPath, publicAuth(passwordHandler))
	mux.Handle("/signup", publicAuth(passwordHandler))

	navbarHandler := ui.NewHandler(navbar, sessionManager)
	mux.Handle(navbar.Prefix()+"/", publicAuth(navbarHandler))

	mediaStorage, err := NewMediaStorageFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	adminOptions := make([]admin.OptionFunc, 0)

	if mediaStorage != nil {
		mediaHandler := media.NewHandler(mediaPrefix, mediaStorage)
		mux.Handle(mediaPrefix+"/", mediaHandler)
		adminOptions = append(adminOptions, admin.WithMedia(mediaStorage, mediaHandler))
	}

	adminHandler := admin.NewHandler("/admin", store, navbar, adminOptions...)
	mux.Handle("/admin", privateAuth(adminHandler))
	mux.Handle("/admin/", privateAuth(adminHandler))

	if conf.Debug.Pprof {
		mux.Handle("/debug/pprof/", privateAuth(authz.RequireAdmin(pprof.NewHandler("/debug/pprof"))))
	}

	mux.Handle("/", publicAuth(site.NewHandler(store, navbar)))

	return slogMiddleware(mux), nil
}
