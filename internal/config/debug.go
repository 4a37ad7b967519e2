package config

import "github.com/goccy/go-yaml"

type Debug struct {
	Pprof InterpolatedBool `yaml:"pprof"`
}

func NewDefaultDebugConfig() Debug {
	return Debug{
		Pprof: false,
	}
}

func NewDebugConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":       []*yaml.Comment{yaml.HeadComment(" Debug configuration")},
		".pprof": []*yaml.Comment{yaml.HeadComment(" Expose pprof endpoints under /debug/pprof to administrators")},
	}
}
