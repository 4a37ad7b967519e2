package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/jis/internal/authn"
	"github.com/bornholm/jis/internal/config"
	"github.com/bornholm/jis/internal/store"
	"github.com/pkg/errors"
)

// NewOnAuthenticatedFromConfig derives the admin flag of the session user on
// each request and exposes the resulting snapshot to the views.
func NewOnAuthenticatedFromConfig(ctx context.Context, conf *config.Config) (authn.OnAuthenticatedFunc, error) {
	st, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	policy, err := NewAdminPolicyFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return func(r *http.Request, user authn.User) (*http.Request, error) {
		ctx := r.Context()

		storeUser, ok := user.(*store.User)
		if !ok {
			return nil, errors.Errorf("unexpected user type '%T'", user)
		}

		isAdmin := policy.IsAdmin(ctx, storeUser)

		if storeUser.IsAdmin != isAdmin {
			storeUser.IsAdmin = isAdmin

			if err := st.UpdateUserProfile(ctx, storeUser); err != nil {
				return nil, errors.WithStack(err)
			}
		}

		ctx = authn.WithContextSnapshot(ctx, authn.NewSnapshot(storeUser, isAdmin))

		return r.WithContext(ctx), nil
	}, nil
}

// NewSessionAuthenticatorFromConfig resolves the session user from the store.
func NewSessionAuthenticatorFromConfig(ctx context.Context, conf *config.Config) (authn.Authenticator, error) {
	st, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessionManager, err := NewSessionManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	finder := authn.UserFinderFunc(func(ctx context.Context, userID int64) (authn.User, error) {
		user, err := st.GetUser(ctx, userID)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return user, nil
	})

	return sessionManager.Authenticator(finder), nil
}
