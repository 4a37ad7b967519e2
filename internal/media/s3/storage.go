package s3

import (
	"context"
	"io"

	"github.com/bornholm/jis/internal/media"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// Storage keeps media objects in an S3 compatible bucket.
type Storage struct {
	client *minio.Client
	bucket string
}

// Put implements media.Storage.
func (s *Storage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Get implements media.Storage.
func (s *Storage) Get(ctx context.Context, key string) (io.ReadCloser, media.ObjectInfo, error) {
	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, media.ObjectInfo{}, toMediaError(err)
	}

	stat, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, media.ObjectInfo{}, toMediaError(err)
	}

	info := media.ObjectInfo{
		Key:         stat.Key,
		ContentType: stat.ContentType,
		Size:        stat.Size,
		ModTime:     stat.LastModified,
	}

	return object, info, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *Storage) EnsureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.WithStack(err)
	}

	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func NewStorage(client *minio.Client, bucket string) *Storage {
	return &Storage{
		client: client,
		bucket: bucket,
	}
}

func toMediaError(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return errors.WithStack(media.ErrNotFound)
	}

	return errors.WithStack(err)
}

var _ media.Storage = &Storage{}
