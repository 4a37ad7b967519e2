package admin

import (
	"net/http"
	"time"

	"github.com/bornholm/jis/internal/authn"
	"github.com/bornholm/jis/internal/store"
)

// UserTemplateData contains information about a user
type UserTemplateData struct {
	ID          int64
	Provider    string
	Email       string
	DisplayName string
	IsAdmin     bool
	CreatedAt   time.Time
	ConnectedAt time.Time
}

func NewUserTemplateData(user *store.User) UserTemplateData {
	return UserTemplateData{
		ID:          user.ID,
		Provider:    user.Provider,
		Email:       user.Email,
		DisplayName: user.DisplayName(),
		IsAdmin:     user.IsAdmin,
		CreatedAt:   user.CreatedAt,
		ConnectedAt: user.ConnectedAt,
	}
}

// authorID returns the store identifier of the current user, or 0 when the
// user is not backed by the store.
func authorID(r *http.Request) int64 {
	user, err := authn.ContextUser(r.Context())
	if err != nil {
		return 0
	}

	storeUser, ok := user.(*store.User)
	if !ok {
		return 0
	}

	return storeUser.ID
}
