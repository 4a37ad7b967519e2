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

var portfolioMigrations = []string{
	`CREATE TABLE IF NOT EXISTS portfolio_items (
		id INTEGER PRIMARY KEY,
		public_id TEXT NOT NULL,
		title TEXT NOT NULL,
		client TEXT NOT NULL,
		url TEXT NOT NULL,
		image_url TEXT NOT NULL,
		description TEXT NOT NULL,
		author_id INTEGER,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		UNIQUE (public_id),
		FOREIGN KEY(author_id) REFERENCES users(id) ON DELETE SET NULL
	);`,
}

// PortfolioItem is a showcased project.
type PortfolioItem struct {
	ID       int64
	PublicID string

	Title       string
	Client      string
	URL         string
	ImageURL    string
	Description string

	AuthorID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Store) CreatePortfolioItem(ctx context.Context, item *PortfolioItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return errors.New("portfolio item title is required")
	}

	return s.Tx(ctx, func(conn *sqlite.Conn) error {
		now := time.Now().UTC()

		item.PublicID = xid.New().String()
		item.CreatedAt = now
		item.UpdatedAt = now

		var authorID any
		if item.AuthorID != 0 {
			authorID = item.AuthorID
		}

		err := sqlitex.Execute(conn, `
			INSERT INTO portfolio_items
				(public_id, title, client, url, image_url, description, author_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id;`,
			&sqlitex.ExecOptions{
				Args: []any{
					item.PublicID, item.Title, item.Client, item.URL, item.ImageURL, item.Description,
					authorID, now.Unix(), now.Unix(),
				},
				ResultFunc: func(stmt *sqlite.Stmt) error {
					item.ID = stmt.ColumnInt64(0)
					return nil
				},
			},
		)

		return errors.WithStack(err)
	})
}

func (s *Store) ListPortfolioItems(ctx context.Context) ([]*PortfolioItem, error) {
	items := make([]*PortfolioItem, 0)

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf("SELECT %s FROM portfolio_items ORDER BY created_at DESC, id DESC", portfolioAttributes)

		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				items = append(items, &PortfolioItem{
					ID:          stmt.ColumnInt64(0),
					PublicID:    stmt.ColumnText(1),
					Title:       stmt.ColumnText(2),
					Client:      stmt.ColumnText(3),
					URL:         stmt.ColumnText(4),
					ImageURL:    stmt.ColumnText(5),
					Description: stmt.ColumnText(6),
					AuthorID:    stmt.ColumnInt64(7),
					CreatedAt:   time.Unix(stmt.ColumnInt64(8), 0),
					UpdatedAt:   time.Unix(stmt.ColumnInt64(9), 0),
				})
				return nil
			},
		}))
	})

	return items, errors.WithStack(err)
}

func (s *Store) CountPortfolioItems(ctx context.Context) (int64, error) {
	count, err := s.count(ctx, "portfolio_items")
	return count, errors.WithStack(err)
}

var portfolioAttributes = `id, public_id, title, client, url, image_url, description, author_id, created_at, updated_at`
