package config

import "github.com/goccy/go-yaml"

type UI struct {
	PersistedUserCookie InterpolatedString `yaml:"persistedUserCookie"`
}

func NewDefaultUIConfig() UI {
	return UI{
		PersistedUserCookie: "${JIS_UI_PERSISTED_USER_COOKIE:-user}",
	}
}

func NewUIConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                     []*yaml.Comment{yaml.HeadComment(" User interface configuration")},
		".persistedUserCookie": []*yaml.Comment{yaml.HeadComment(" Name of the client persisted user cookie, inspected for debug logging only")},
	}
}
