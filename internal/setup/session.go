package setup

import (
	"context"
	"crypto/rand"
	"net/http"
	"time"

	"github.com/bornholm/jis/internal/authn"
	"github.com/bornholm/jis/internal/config"
	"github.com/bornholm/jis/internal/ui"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	authSessionName   = "jis_auth"
	navbarSessionName = "jis_navbar"
)

var NewSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*sessions.CookieStore, error) {
	keyPairs := make([][]byte, 0)
	if len(conf.HTTP.Session.Keys) == 0 {
		key, err := getRandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		keyPairs = append(keyPairs, key)
	} else {
		for _, k := range conf.HTTP.Session.Keys {
			keyPairs = append(keyPairs, []byte(k))
		}
	}

	sessionStore := sessions.NewCookieStore(keyPairs...)

	if conf.HTTP.Session.Cookie.MaxAge != nil {
		sessionStore.MaxAge(int(time.Duration(*conf.HTTP.Session.Cookie.MaxAge).Seconds()))
	}

	sessionStore.Options.Path = string(conf.HTTP.Session.Cookie.Path)
	sessionStore.Options.HttpOnly = bool(conf.HTTP.Session.Cookie.HTTPOnly)
	sessionStore.Options.Secure = bool(conf.HTTP.Session.Cookie.Secure)
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
})

var NewSessionManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*authn.SessionManager, error) {
	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return authn.NewSessionManager(sessionStore, authSessionName), nil
})

var NewNavbarFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*ui.Navbar, error) {
	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	states := ui.NewStateStore(sessionStore, navbarSessionName)

	navbar := ui.NewNavbar(
		states,
		ui.WithBrand(ui.Brand{
			Name:    string(conf.Site.Name),
			Tagline: string(conf.Site.Tagline),
			LogoURL: string(conf.Site.LogoURL),
		}),
		ui.WithPersistedUserCookie(string(conf.UI.PersistedUserCookie)),
	)

	return navbar, nil
})

func getRandomBytes(n int) ([]byte, error) {
	data := make([]byte, n)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != n {
		return nil, errors.Errorf("could not read %d bytes", n)
	}

	return data, nil
}
