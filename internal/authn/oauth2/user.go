package oauth2

import "github.com/bornholm/jis/internal/authn"

// User is the identity returned by an OAuth2 provider.
type User struct {
	Subject  string
	Provider string

	Nickname string
	Email    string
}

// UserProvider implements authn.User.
func (u *User) UserProvider() string {
	return u.Provider
}

// UserSubject implements authn.User.
func (u *User) UserSubject() string {
	return u.Subject
}

// UserEmail implements authn.User.
func (u *User) UserEmail() string {
	return u.Email
}

// UserNickname returns the nickname advertised by the provider.
func (u *User) UserNickname() string {
	return u.Nickname
}

var _ authn.User = &User{}
