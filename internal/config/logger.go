package config

import (
	"log/slog"

	"github.com/goccy/go-yaml"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Logger struct {
	Level     InterpolatedInt    `yaml:"level"`
	Format    InterpolatedString `yaml:"format"`
	AddSource InterpolatedBool   `yaml:"addSource"`
}

func NewDefaultLoggerConfig() Logger {
	return Logger{
		Level:     InterpolatedInt(slog.LevelInfo),
		Format:    "${JIS_LOGGER_FORMAT:-text}",
		AddSource: true,
	}
}

func NewLoggerConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":           []*yaml.Comment{yaml.HeadComment(" Logger configuration")},
		".level":     []*yaml.Comment{yaml.HeadComment(" Logging level (debug: -4, info: 0, warn: 4, error: 8)")},
		".format":    []*yaml.Comment{yaml.HeadComment(" Output format, 'text' or 'json'")},
		".addSource": []*yaml.Comment{yaml.HeadComment(" Add the emitting source file and line to each record")},
	}
}
