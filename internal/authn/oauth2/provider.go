package oauth2

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/jis/pkg/log"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"
)

func (h *Handler) handleProvider(w http.ResponseWriter, r *http.Request) {
	gothic.BeginAuthHandler(w, r)
}

func (h *Handler) handleProviderCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		slog.ErrorContext(ctx, "could not complete user auth", log.Error(errors.WithStack(err)))
		http.Redirect(w, r, h.failureRedirect, http.StatusSeeOther)
		return
	}

	slog.DebugContext(ctx, "authenticated user", slog.String("provider", gothUser.Provider), slog.String("userID", gothUser.UserID))

	user, err := newUser(gothUser)
	if err != nil {
		slog.ErrorContext(ctx, "could not authenticate user", log.Error(errors.WithStack(err)))
		http.Redirect(w, r, h.failureRedirect, http.StatusSeeOther)
		return
	}

	if err := h.onUserAuthenticated(w, r, user); err != nil {
		slog.ErrorContext(ctx, "could not open user session", log.Error(errors.WithStack(err)))
		http.Redirect(w, r, h.failureRedirect, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, h.postLoginRedirect, http.StatusSeeOther)
}

var (
	ErrMissingEmail    = errors.New("user email missing")
	ErrMissingProvider = errors.New("user provider missing")
)

// newUser maps the identity returned by a provider. The nickname is the
// first non empty of preferred_username, nickname and name.
func newUser(gothUser goth.User) (*User, error) {
	user := &User{
		Subject:  gothUser.UserID,
		Provider: gothUser.Provider,

		Nickname: gothUser.Name,
		Email:    gothUser.Email,
	}

	if gothUser.NickName != "" {
		user.Nickname = gothUser.NickName
	}

	if preferredUsername, ok := gothUser.RawData["preferred_username"].(string); ok && preferredUsername != "" {
		user.Nickname = preferredUsername
	}

	if user.Email == "" {
		return nil, errors.WithStack(ErrMissingEmail)
	}

	if user.Provider == "" {
		return nil, errors.WithStack(ErrMissingProvider)
	}

	return user, nil
}

func (h *Handler) handleProviderLogout(w http.ResponseWriter, r *http.Request) {
	if err := gothic.Logout(w, r); err != nil {
		slog.ErrorContext(r.Context(), "could not logout from provider", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.postLogoutRedirect, http.StatusTemporaryRedirect)
}
