package setup

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bornholm/jis/internal/authn/oauth2"
	"github.com/bornholm/jis/internal/config"
	"github.com/bornholm/jis/internal/store"
	"github.com/bornholm/jis/pkg/log"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/gitea"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"github.com/markbates/goth/providers/openidConnect"
	"github.com/pkg/errors"
)

const oauth2Prefix = "/auth"

var NewOAuth2HandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*oauth2.Handler, error) {
	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	st, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessionManager, err := NewSessionManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	gothProviders := make([]goth.Provider, 0)
	providers := make([]oauth2.Provider, 0)

	callbackURL := func(provider string) string {
		return fmt.Sprintf("%s%s/providers/%s/callback", conf.HTTP.BaseURL, oauth2Prefix, provider)
	}

	if conf.Auth.Providers.Google.Key != "" && conf.Auth.Providers.Google.Secret != "" {
		googleProvider := google.New(
			string(conf.Auth.Providers.Google.Key),
			string(conf.Auth.Providers.Google.Secret),
			callbackURL("google"),
			conf.Auth.Providers.Google.Scopes...,
		)

		gothProviders = append(gothProviders, googleProvider)

		providers = append(providers, oauth2.Provider{
			ID:    googleProvider.Name(),
			Label: "Google",
			Icon:  "fa-brands fa-google",
		})
	}

	if conf.Auth.Providers.Github.Key != "" && conf.Auth.Providers.Github.Secret != "" {
		githubProvider := github.New(
			string(conf.Auth.Providers.Github.Key),
			string(conf.Auth.Providers.Github.Secret),
			callbackURL("github"),
			conf.Auth.Providers.Github.Scopes...,
		)

		gothProviders = append(gothProviders, githubProvider)

		providers = append(providers, oauth2.Provider{
			ID:    githubProvider.Name(),
			Label: "Github",
			Icon:  "fa-brands fa-github",
		})
	}

	if conf.Auth.Providers.Gitea.Key != "" && conf.Auth.Providers.Gitea.Secret != "" {
		giteaProvider := gitea.NewCustomisedURL(
			string(conf.Auth.Providers.Gitea.Key),
			string(conf.Auth.Providers.Gitea.Secret),
			callbackURL("gitea"),
			string(conf.Auth.Providers.Gitea.AuthURL),
			string(conf.Auth.Providers.Gitea.TokenURL),
			string(conf.Auth.Providers.Gitea.ProfileURL),
			conf.Auth.Providers.Gitea.Scopes...,
		)

		gothProviders = append(gothProviders, giteaProvider)

		providers = append(providers, oauth2.Provider{
			ID:    giteaProvider.Name(),
			Label: string(conf.Auth.Providers.Gitea.Label),
			Icon:  "fa-brands fa-git-alt",
		})
	}

	if conf.Auth.Providers.OIDC.Key != "" && conf.Auth.Providers.OIDC.Secret != "" {
		oidcProvider, err := openidConnect.New(
			string(conf.Auth.Providers.OIDC.Key),
			string(conf.Auth.Providers.OIDC.Secret),
			callbackURL("openid-connect"),
			string(conf.Auth.Providers.OIDC.DiscoveryURL),
			conf.Auth.Providers.OIDC.Scopes...,
		)
		if err != nil {
			return nil, errors.Wrap(err, "could not configure oidc provider")
		}

		slog.InfoContext(ctx, "oidc provider enabled", log.ScrubbedURL("discoveryUrl", string(conf.Auth.Providers.OIDC.DiscoveryURL)))

		gothProviders = append(gothProviders, oidcProvider)

		providers = append(providers, oauth2.Provider{
			ID:    oidcProvider.Name(),
			Label: string(conf.Auth.Providers.OIDC.Label),
			Icon:  string(conf.Auth.Providers.OIDC.Icon),
		})
	}

	goth.UseProviders(gothProviders...)
	gothic.Store = sessionStore

	onUserAuthenticated := func(w http.ResponseWriter, r *http.Request, user *oauth2.User) error {
		ctx := r.Context()

		storeUser, err := syncOAuth2User(ctx, st, user)
		if err != nil {
			return errors.WithStack(err)
		}

		if err := sessionManager.Login(w, r, storeUser.ID); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}

	handler := oauth2.NewHandler(
		oauth2.WithProviders(providers...),
		oauth2.WithPrefix(oauth2Prefix),
		oauth2.WithOnUserAuthenticated(onUserAuthenticated),
	)

	return handler, nil
})

// syncOAuth2User returns the store user matching the provider identity,
// creating it if needed, refreshing its profile and marking it connected.
func syncOAuth2User(ctx context.Context, st *store.Store, user *oauth2.User) (*store.User, error) {
	storeUser, err := st.FindOrCreateUser(ctx, user.UserSubject(), user.UserProvider())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if storeUser.Email != user.Email || storeUser.Nickname != user.Nickname {
		storeUser.Email = user.Email
		storeUser.Nickname = user.Nickname

		if err := st.UpdateUserProfile(ctx, storeUser); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if err := st.MarkUserConnected(ctx, storeUser.ID); err != nil {
		return nil, errors.WithStack(err)
	}

	return storeUser, nil
}
