package config

import "github.com/goccy/go-yaml"

type Store struct {
	Path InterpolatedString `yaml:"path"`
}

func NewDefaultStoreConfig() Store {
	return Store{
		Path: "${JIS_STORE_PATH:-data.db}",
	}
}

func NewStoreConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":      []*yaml.Comment{yaml.HeadComment(" Store configuration")},
		".path": []*yaml.Comment{yaml.HeadComment(" SQLite database path")},
	}
}
