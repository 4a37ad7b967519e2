package setup

import (
	"context"
	"sync"

	"github.com/bornholm/jis/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes factory per configuration, so that every
// component built from the same configuration shares the same instance.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var mutex sync.Mutex
	instances := make(map[*config.Config]T)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mutex.Lock()
		defer mutex.Unlock()

		if instance, exists := instances[conf]; exists {
			return instance, nil
		}

		instance, err := factory(ctx, conf)
		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		instances[conf] = instance

		return instance, nil
	}
}
