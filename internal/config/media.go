package config

import "github.com/goccy/go-yaml"

type Media struct {
	S3 S3 `yaml:"s3"`
}

// S3 describes an S3 compatible object storage. Media storage is disabled
// when no endpoint is configured.
type S3 struct {
	Endpoint        InterpolatedString `yaml:"endpoint"`
	AccessKeyID     InterpolatedString `yaml:"accessKeyId"`
	SecretAccessKey InterpolatedString `yaml:"secretAccessKey"`
	Bucket          InterpolatedString `yaml:"bucket"`
	Region          InterpolatedString `yaml:"region"`
	Secure          InterpolatedBool   `yaml:"secure"`
}

func NewDefaultMediaConfig() Media {
	return Media{
		S3: S3{
			Endpoint:        "${JIS_MEDIA_S3_ENDPOINT}",
			AccessKeyID:     "${JIS_MEDIA_S3_ACCESS_KEY_ID}",
			SecretAccessKey: "${JIS_MEDIA_S3_SECRET_ACCESS_KEY}",
			Bucket:          "${JIS_MEDIA_S3_BUCKET:-jis}",
			Region:          "${JIS_MEDIA_S3_REGION}",
			Secure:          true,
		},
	}
}

func NewMediaConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                []*yaml.Comment{yaml.HeadComment(" Uploaded media (portfolio images) configuration")},
		".s3":             []*yaml.Comment{yaml.HeadComment(" S3 compatible object storage")},
		".s3.endpoint":    []*yaml.Comment{yaml.HeadComment(" Storage endpoint, i.e. 'minio.example.com:9000'. Uploads are disabled when empty")},
		".s3.accessKeyId": []*yaml.Comment{yaml.HeadComment(" Credentials")},
		".s3.bucket":      []*yaml.Comment{yaml.HeadComment(" Bucket name, created on startup if missing")},
		".s3.secure":      []*yaml.Comment{yaml.HeadComment(" Use TLS to reach the endpoint")},
	}
}
