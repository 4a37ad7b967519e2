package authn

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/jis/pkg/log"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const sessionKeyUserID = "userID"

type UserFinder interface {
	FindUser(ctx context.Context, userID int64) (User, error)
}

type UserFinderFunc func(ctx context.Context, userID int64) (User, error)

func (fn UserFinderFunc) FindUser(ctx context.Context, userID int64) (User, error) {
	return fn(ctx, userID)
}

// SessionManager binds an authenticated user to the visitor's session
// cookie.
type SessionManager struct {
	store sessions.Store
	name  string
}

func NewSessionManager(store sessions.Store, name string) *SessionManager {
	return &SessionManager{
		store: store,
		name:  name,
	}
}

func (m *SessionManager) Login(w http.ResponseWriter, r *http.Request, userID int64) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		slog.DebugContext(r.Context(), "discarding invalid auth session", log.Error(errors.WithStack(err)))
	}

	sess.Values[sessionKeyUserID] = userID

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Logout ends the visitor's session by expiring its cookie.
func (m *SessionManager) Logout(w http.ResponseWriter, r *http.Request) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		slog.DebugContext(r.Context(), "discarding invalid auth session", log.Error(errors.WithStack(err)))
	}

	delete(sess.Values, sessionKeyUserID)
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (m *SessionManager) UserID(r *http.Request) (int64, error) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		return 0, errors.Wrap(ErrUnauthenticated, err.Error())
	}

	userID, ok := sess.Values[sessionKeyUserID].(int64)
	if !ok {
		return 0, errors.WithStack(ErrUnauthenticated)
	}

	return userID, nil
}

// Authenticator resolves the session user with finder. Visitors without a
// valid session are left unauthenticated.
func (m *SessionManager) Authenticator(finder UserFinder) Authenticator {
	return AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		userID, err := m.UserID(r)
		if err != nil {
			return nil, nil
		}

		user, err := finder.FindUser(r.Context(), userID)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return user, nil
	})
}
