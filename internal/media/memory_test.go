package media

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type memoryObject struct {
	data        []byte
	contentType string
}

type memoryStorage struct {
	mutex   sync.Mutex
	objects map[string]memoryObject
}

func (s *memoryStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.WithStack(err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.objects == nil {
		s.objects = map[string]memoryObject{}
	}

	s.objects[key] = memoryObject{data: data, contentType: contentType}

	return nil
}

func (s *memoryStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	object, exists := s.objects[key]
	if !exists {
		return nil, ObjectInfo{}, errors.WithStack(ErrNotFound)
	}

	info := ObjectInfo{
		Key:         key,
		ContentType: object.contentType,
		Size:        int64(len(object.data)),
		ModTime:     time.Now(),
	}

	return io.NopCloser(bytes.NewReader(object.data)), info, nil
}

var _ Storage = &memoryStorage{}
