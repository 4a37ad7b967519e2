package authn

import (
	"context"

	"github.com/pkg/errors"
)

type contextKey string

const (
	contextKeyUser     contextKey = "authnUser"
	contextKeySnapshot contextKey = "authnSnapshot"
)

func ContextUser(ctx context.Context) (User, error) {
	user, ok := ctx.Value(contextKeyUser).(User)
	if !ok {
		return nil, errors.New("no user in context")
	}

	return user, nil
}

func WithContextUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, contextKeyUser, user)
}

// ContextSnapshot returns the snapshot attached to ctx, or an anonymous
// snapshot when there is none.
func ContextSnapshot(ctx context.Context) Snapshot {
	snapshot, ok := ctx.Value(contextKeySnapshot).(Snapshot)
	if !ok {
		return Anonymous()
	}

	return snapshot
}

func WithContextSnapshot(ctx context.Context, snapshot Snapshot) context.Context {
	return context.WithValue(ctx, contextKeySnapshot, snapshot)
}
