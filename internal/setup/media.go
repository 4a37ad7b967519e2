package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/jis/internal/config"
	"github.com/bornholm/jis/internal/media"
	"github.com/bornholm/jis/internal/media/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

const mediaPrefix = "/media"

// NewMediaStorageFromConfig returns nil when no storage endpoint is configured.
var NewMediaStorageFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (media.Storage, error) {
	s3Conf := conf.Media.S3

	if s3Conf.Endpoint == "" {
		slog.InfoContext(ctx, "media storage disabled, portfolio image uploads will not be available")
		return nil, nil
	}

	client, err := minio.New(string(s3Conf.Endpoint), &minio.Options{
		Creds:  credentials.NewStaticV4(string(s3Conf.AccessKeyID), string(s3Conf.SecretAccessKey), ""),
		Secure: bool(s3Conf.Secure),
		Region: string(s3Conf.Region),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create s3 client")
	}

	storage := s3.NewStorage(client, string(s3Conf.Bucket))

	if err := storage.EnsureBucket(ctx, string(s3Conf.Region)); err != nil {
		return nil, errors.Wrapf(err, "could not ensure bucket '%s'", s3Conf.Bucket)
	}

	slog.InfoContext(ctx, "media storage enabled", slog.String("endpoint", string(s3Conf.Endpoint)), slog.String("bucket", string(s3Conf.Bucket)))

	return storage, nil
})
