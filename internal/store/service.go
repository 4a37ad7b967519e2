package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

var serviceMigrations = []string{
	`CREATE TABLE IF NOT EXISTS services (
		id INTEGER PRIMARY KEY,
		public_id TEXT NOT NULL,
		category TEXT NOT NULL,
		title TEXT NOT NULL,
		summary TEXT NOT NULL,
		description TEXT NOT NULL,
		author_id INTEGER,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		UNIQUE (public_id),
		FOREIGN KEY(author_id) REFERENCES users(id) ON DELETE SET NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_services_category ON services(category);`,
}

// Service is an offering published by an administrator on the services pages.
type Service struct {
	ID       int64
	PublicID string

	Category    string
	Title       string
	Summary     string
	Description string

	AuthorID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Store) CreateService(ctx context.Context, service *Service) error {
	if strings.TrimSpace(service.Title) == "" {
		return errors.New("service title is required")
	}

	return s.Tx(ctx, func(conn *sqlite.Conn) error {
		now := time.Now().UTC()

		service.PublicID = xid.New().String()
		service.CreatedAt = now
		service.UpdatedAt = now

		var authorID any
		if service.AuthorID != 0 {
			authorID = service.AuthorID
		}

		err := sqlitex.Execute(conn, `
			INSERT INTO services
				(public_id, category, title, summary, description, author_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id;`,
			&sqlitex.ExecOptions{
				Args: []any{
					service.PublicID, service.Category, service.Title, service.Summary, service.Description,
					authorID, now.Unix(), now.Unix(),
				},
				ResultFunc: func(stmt *sqlite.Stmt) error {
					service.ID = stmt.ColumnInt64(0)
					return nil
				},
			},
		)

		return errors.WithStack(err)
	})
}

// ListServices returns services, newest first. An empty category returns
// every service.
func (s *Store) ListServices(ctx context.Context, category string) ([]*Service, error) {
	services := make([]*Service, 0)

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf("SELECT %s FROM services", serviceAttributes)
		args := []any{}

		if category != "" {
			query += " WHERE category = ?"
			args = append(args, category)
		}

		query += " ORDER BY created_at DESC, id DESC"

		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: args,
			ResultFunc: func(stmt *sqlite.Stmt) error {
				services = append(services, bindService(stmt))
				return nil
			},
		}))
	})

	return services, errors.WithStack(err)
}

func (s *Store) GetService(ctx context.Context, publicID string) (*Service, error) {
	var service *Service

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf("SELECT %s FROM services WHERE public_id = ? LIMIT 1", serviceAttributes)

		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{publicID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				service = bindService(stmt)
				return nil
			},
		}))
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if service == nil {
		return nil, errors.WithStack(ErrNotFound)
	}

	return service, nil
}

func (s *Store) CountServices(ctx context.Context) (int64, error) {
	count, err := s.count(ctx, "services")
	return count, errors.WithStack(err)
}

var serviceAttributes = `id, public_id, category, title, summary, description, author_id, created_at, updated_at`

func bindService(stmt *sqlite.Stmt) *Service {
	return &Service{
		ID:          stmt.ColumnInt64(0),
		PublicID:    stmt.ColumnText(1),
		Category:    stmt.ColumnText(2),
		Title:       stmt.ColumnText(3),
		Summary:     stmt.ColumnText(4),
		Description: stmt.ColumnText(5),
		AuthorID:    stmt.ColumnInt64(6),
		CreatedAt:   time.Unix(stmt.ColumnInt64(7), 0),
		UpdatedAt:   time.Unix(stmt.ColumnInt64(8), 0),
	}
}
