package log

import (
	"log/slog"
	"net/url"
	"strings"
)

const redacted = "xxx"

// sensitiveParams are query parameters whose values never reach the logs.
var sensitiveParams = []string{
	"access_token",
	"client_secret",
	"code",
	"password",
	"state",
	"token",
	"x-amz-credential",
	"x-amz-signature",
}

// ScrubbedURL returns an attribute holding rawURL with its password and
// sensitive query values redacted.
func ScrubbedURL(name string, rawURL string) slog.Attr {
	u, err := url.Parse(rawURL)
	if err != nil {
		return slog.String(name, rawURL)
	}

	scrubbed := *u

	if password, hasPassword := u.User.Password(); hasPassword && password != "" {
		scrubbed.User = url.UserPassword(u.User.Username(), redacted)
	}

	if u.RawQuery != "" {
		query := u.Query()
		for key := range query {
			if isSensitiveParam(key) {
				query.Set(key, redacted)
			}
		}
		scrubbed.RawQuery = query.Encode()
	}

	return slog.String(name, scrubbed.String())
}

func isSensitiveParam(key string) bool {
	key = strings.ToLower(key)
	for _, s := range sensitiveParams {
		if key == s {
			return true
		}
	}

	return false
}
