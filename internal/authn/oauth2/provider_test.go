package oauth2

import (
	"testing"

	"github.com/markbates/goth"
	"github.com/pkg/errors"
)

func TestNewUser(t *testing.T) {
	type testCase struct {
		Name             string
		GothUser         goth.User
		ExpectedError    error
		ExpectedNickname string
	}

	testCases := []testCase{
		{
			Name:             "name only",
			GothUser:         goth.User{UserID: "42", Provider: "github", Email: "jane@jis.example", Name: "Jane Doe"},
			ExpectedNickname: "Jane Doe",
		},
		{
			Name:             "nickname over name",
			GothUser:         goth.User{UserID: "42", Provider: "github", Email: "jane@jis.example", Name: "Jane Doe", NickName: "jane"},
			ExpectedNickname: "jane",
		},
		{
			Name: "preferred username over nickname",
			GothUser: goth.User{
				UserID: "42", Provider: "openid-connect", Email: "jane@jis.example", NickName: "jane",
				RawData: map[string]any{"preferred_username": "jdoe"},
			},
			ExpectedNickname: "jdoe",
		},
		{
			Name: "empty preferred username",
			GothUser: goth.User{
				UserID: "42", Provider: "openid-connect", Email: "jane@jis.example", NickName: "jane",
				RawData: map[string]any{"preferred_username": ""},
			},
			ExpectedNickname: "jane",
		},
		{
			Name:          "missing email",
			GothUser:      goth.User{UserID: "42", Provider: "github"},
			ExpectedError: ErrMissingEmail,
		},
		{
			Name:          "missing provider",
			GothUser:      goth.User{UserID: "42", Email: "jane@jis.example"},
			ExpectedError: ErrMissingProvider,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			user, err := newUser(tc.GothUser)

			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Fatalf("err: expected '%v', got '%+v'", tc.ExpectedError, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.GothUser.UserID, user.UserSubject(); e != g {
				t.Errorf("user.UserSubject(): expected '%v', got '%v'", e, g)
			}

			if e, g := tc.GothUser.Provider, user.UserProvider(); e != g {
				t.Errorf("user.UserProvider(): expected '%v', got '%v'", e, g)
			}

			if e, g := tc.GothUser.Email, user.UserEmail(); e != g {
				t.Errorf("user.UserEmail(): expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedNickname, user.UserNickname(); e != g {
				t.Errorf("user.UserNickname(): expected '%v', got '%v'", e, g)
			}
		})
	}
}
