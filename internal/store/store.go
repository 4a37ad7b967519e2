package store

import (
	"context"

	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitemigration"
	"zombiezen.com/go/sqlite/sqlitex"
)

type Store struct {
	pool         *sqlitemigration.Pool
	passwordCost int
}

var schema = sqlitemigration.Schema{
	Migrations: flatten(
		userMigrations,
		serviceMigrations,
		portfolioMigrations,
	),
}

func (s *Store) HealthCheck(ctx context.Context) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	defer s.pool.Put(conn)

	if err := s.pool.CheckHealth(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Store) Do(ctx context.Context, fn func(conn *sqlite.Conn) error) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	defer s.pool.Put(conn)

	if err := fn(conn); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Store) Tx(ctx context.Context, fn func(conn *sqlite.Conn) error) error {
	return errors.WithStack(s.Do(ctx, func(conn *sqlite.Conn) (err error) {
		defer sqlitex.Save(conn)(&err)
		err = fn(conn)
		return errors.WithStack(err)
	}))
}

func (s *Store) Close() error {
	return errors.WithStack(s.pool.Close())
}

func (s *Store) count(ctx context.Context, table string) (int64, error) {
	var count int64

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		return errors.WithStack(sqlitex.Execute(conn, "SELECT COUNT(*) FROM "+table, &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				count = stmt.ColumnInt64(0)
				return nil
			},
		}))
	})

	return count, errors.WithStack(err)
}

func NewStore(uri string, funcs ...OptionFunc) *Store {
	opts := NewOptions(funcs...)

	pool := sqlitemigration.NewPool(uri, schema, sqlitemigration.Options{
		Flags: sqlite.OpenCreate | sqlite.OpenReadWrite | sqlite.OpenWAL,
		PrepareConn: func(conn *sqlite.Conn) error {
			return sqlitex.ExecuteTransient(conn, "PRAGMA foreign_keys = on", nil)
		},
	})

	return &Store{
		pool:         pool,
		passwordCost: opts.PasswordCost,
	}
}

func flatten[T any](slices ...[]T) []T {
	flattened := make([]T, 0)
	for _, s := range slices {
		flattened = append(flattened, s...)
	}
	return flattened
}
