package authz

import (
	"strings"

	"github.com/bornholm/jis/internal/authn"
)

// Nicknamed is implemented by users exposing a display nickname.
type Nicknamed interface {
	UserNickname() string
}

// Admin identifies a user granted admin privileges by configuration.
type Admin struct {
	Email    string
	Provider string
}

func (a Admin) Matches(user authn.User) bool {
	if a.Email == "" {
		return false
	}

	return strings.EqualFold(a.Email, user.UserEmail()) && a.Provider == user.UserProvider()
}

func userEnv(user authn.User) map[string]any {
	nickname := ""
	if n, ok := user.(Nicknamed); ok {
		nickname = n.UserNickname()
	}

	return map[string]any{
		EnvEmail:    user.UserEmail(),
		EnvProvider: user.UserProvider(),
		EnvSubject:  user.UserSubject(),
		EnvNickname: nickname,
	}
}
