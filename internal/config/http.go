package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type HTTP struct {
	Address InterpolatedString `yaml:"address"`
	BaseURL InterpolatedString `yaml:"baseUrl"`
	Session Session            `yaml:"session"`
}

type Session struct {
	Keys   InterpolatedStringSlice `yaml:"keys"`
	Cookie Cookie                  `yaml:"cookie"`
}

type Cookie struct {
	Path     InterpolatedString    `yaml:"path"`
	HTTPOnly InterpolatedBool      `yaml:"httpOnly"`
	Secure   InterpolatedBool      `yaml:"secure"`
	MaxAge   *InterpolatedDuration `yaml:"maxAge"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address: "${JIS_HTTP_ADDRESS:-:8080}",
		BaseURL: "${JIS_HTTP_BASE_URL:-http://localhost:8080}",
		Session: Session{
			Keys: InterpolatedStringSlice{"${JIS_HTTP_SESSION_KEY}"},
			Cookie: Cookie{
				Path:     "/",
				HTTPOnly: true,
				Secure:   false,
				MaxAge:   NewInterpolatedDuration(24 * time.Hour),
			},
		},
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                       []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":               []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".baseUrl":               []*yaml.Comment{yaml.HeadComment(" Public base URL, used to build OAuth2 callback URLs")},
		".session.keys":          []*yaml.Comment{yaml.HeadComment(" Session cookies signing keys", " A random key is generated at startup when empty")},
		".session.cookie.maxAge": []*yaml.Comment{yaml.HeadComment(" Session cookies lifetime")},
	}
}
