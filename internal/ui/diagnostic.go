package ui

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bornholm/jis/pkg/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// persistedUser is the client side representation of the current user.
// Unknown keys are ignored.
type persistedUser struct {
	Email   string `mapstructure:"email"`
	Name    string `mapstructure:"name"`
	Role    string `mapstructure:"role"`
	IsAdmin bool   `mapstructure:"isAdmin"`
}

// logPersistedUser logs the user data persisted client side in the named
// cookie. It is purely diagnostic: failures are logged and never surface.
func logPersistedUser(r *http.Request, cookieName string) {
	ctx := r.Context()

	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		slog.DebugContext(ctx, "no persisted user data", slog.String("cookie", cookieName))
		return
	}

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		slog.WarnContext(ctx, "could not decode persisted user data", slog.String("cookie", cookieName), log.Error(errors.WithStack(err)))
		return
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		slog.WarnContext(ctx, "could not parse persisted user data", slog.String("cookie", cookieName), log.Error(errors.WithStack(err)))
		return
	}

	var user persistedUser

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &user,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not create persisted user decoder", log.Error(errors.WithStack(err)))
		return
	}

	if err := decoder.Decode(data); err != nil {
		slog.WarnContext(ctx, "could not read persisted user data", slog.String("cookie", cookieName), log.Error(errors.WithStack(err)))
		return
	}

	slog.DebugContext(ctx, "persisted user data",
		slog.String("cookie", cookieName),
		slog.Group("user",
			slog.String("email", user.Email),
			slog.String("name", user.Name),
			slog.String("role", user.Role),
			slog.Bool("isAdmin", user.IsAdmin),
		),
	)
}
