package config

import "github.com/goccy/go-yaml"

type Site struct {
	Name    InterpolatedString `yaml:"name"`
	Tagline InterpolatedString `yaml:"tagline"`
	LogoURL InterpolatedString `yaml:"logoUrl"`
}

func NewDefaultSiteConfig() Site {
	return Site{
		Name:    "${JIS_SITE_NAME:-JIS}",
		Tagline: "${JIS_SITE_TAGLINE:-Jharkhand IT Solutions}",
		LogoURL: "${JIS_SITE_LOGO_URL:-https://www.jharkhanditsolutions.com/wp-content/uploads/2016/10/logo-1.png}",
	}
}

func NewSiteConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":         []*yaml.Comment{yaml.HeadComment(" Site branding, displayed in the navigation bar")},
		".logoUrl": []*yaml.Comment{yaml.HeadComment(" Brand logo image URL")},
	}
}
