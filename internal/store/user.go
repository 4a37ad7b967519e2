package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bornholm/jis/internal/authn"
	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

var userMigrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,

		subject TEXT NOT NULL,
		provider TEXT NOT NULL,

		nickname TEXT,
		email TEXT,

		is_admin BOOLEAN NOT NULL DEFAULT FALSE,

		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		connected_at INTEGER,

		password BLOB,

		UNIQUE (subject, provider)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);`,
}

type User struct {
	ID int64

	Provider string
	Subject  string

	IsAdmin bool

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConnectedAt time.Time

	Nickname string
	Email    string

	Password []byte
}

// UserProvider implements authn.User.
func (u *User) UserProvider() string {
	return u.Provider
}

// UserSubject implements authn.User.
func (u *User) UserSubject() string {
	return u.Subject
}

// UserEmail implements authn.User.
func (u *User) UserEmail() string {
	return u.Email
}

// UserNickname implements authz.Nicknamed.
func (u *User) UserNickname() string {
	return u.Nickname
}

// DisplayName returns the nickname, falling back to the email address.
func (u *User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}

	return u.Email
}

var _ authn.User = &User{}

func (s *Store) FindOrCreateUser(ctx context.Context, subject, provider string) (*User, error) {
	var user *User
	err := s.Tx(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf(`SELECT %s FROM users WHERE subject = ? AND provider = ? LIMIT 1`, userAttributes)
		err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{subject, provider},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user = &User{}
				return errors.WithStack(bindUser(stmt, user))
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		if user != nil {
			return nil
		}

		user, err = insertUser(conn, subject, provider, nil)
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

func insertUser(conn *sqlite.Conn, subject, provider string, password []byte) (*User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users
			(subject, provider, email, password, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING %s;`,
		userAttributes,
	)

	now := time.Now().UTC().Unix()

	var email any
	if provider == LocalProvider {
		email = subject
	}

	var user *User
	err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{subject, provider, email, password, now, now},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			user = &User{}
			return errors.WithStack(bindUser(stmt, user))
		},
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*User, error) {
	users, err := s.GetUsers(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(users) == 0 {
		return nil, errors.WithStack(ErrNotFound)
	}

	return users[0], nil
}

func (s *Store) GetUsers(ctx context.Context, userIDs ...int64) ([]*User, error) {
	var users []*User

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		var query string
		var args []any

		if len(userIDs) > 0 {
			placeholders := make([]string, len(userIDs))
			args = make([]any, len(userIDs))

			for i, id := range userIDs {
				placeholders[i] = "?"
				args[i] = id
			}

			query = fmt.Sprintf("SELECT %s FROM users WHERE id IN (%s) ORDER BY id",
				userAttributes, strings.Join(placeholders, ", "))
		} else {
			query = fmt.Sprintf("SELECT %s FROM users ORDER BY id", userAttributes)
		}

		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: args,
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user := &User{}
				if err := bindUser(stmt, user); err != nil {
					return errors.WithStack(err)
				}

				users = append(users, user)
				return nil
			},
		}))
	})

	return users, errors.WithStack(err)
}

// ListRecentUsers returns the most recently connected users first.
func (s *Store) ListRecentUsers(ctx context.Context, limit int) ([]*User, error) {
	var users []*User

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf("SELECT %s FROM users ORDER BY COALESCE(connected_at, created_at) DESC, id DESC LIMIT ?", userAttributes)

		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{limit},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user := &User{}
				if err := bindUser(stmt, user); err != nil {
					return errors.WithStack(err)
				}

				users = append(users, user)
				return nil
			},
		}))
	})

	return users, errors.WithStack(err)
}

// UpdateUserProfile persists the identity attributes refreshed from the
// identity provider and the derived admin flag.
func (s *Store) UpdateUserProfile(ctx context.Context, user *User) error {
	return s.Tx(ctx, func(conn *sqlite.Conn) error {
		user.UpdatedAt = time.Now().UTC()

		err := sqlitex.Execute(conn, `UPDATE users SET email = ?, nickname = ?, is_admin = ?, updated_at = ? WHERE id = ?`, &sqlitex.ExecOptions{
			Args: []any{user.Email, user.Nickname, user.IsAdmin, user.UpdatedAt.Unix(), user.ID},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		if conn.Changes() == 0 {
			return errors.WithStack(ErrNotFound)
		}

		return nil
	})
}

func (s *Store) MarkUserConnected(ctx context.Context, userID int64) error {
	return s.Do(ctx, func(conn *sqlite.Conn) error {
		return errors.WithStack(sqlitex.Execute(conn, `UPDATE users SET connected_at = ? WHERE id = ?`, &sqlitex.ExecOptions{
			Args: []any{time.Now().UTC().Unix(), userID},
		}))
	})
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	count, err := s.count(ctx, "users")
	return count, errors.WithStack(err)
}

var userAttributes = `id, subject, provider, nickname, email, created_at, updated_at, connected_at, password, is_admin`

func bindUser(stmt *sqlite.Stmt, user *User) error {
	user.ID = stmt.ColumnInt64(0)
	user.Subject = stmt.ColumnText(1)
	user.Provider = stmt.ColumnText(2)
	user.Nickname = stmt.ColumnText(3)
	user.Email = stmt.ColumnText(4)
	user.CreatedAt = time.Unix(stmt.ColumnInt64(5), 0)
	user.UpdatedAt = time.Unix(stmt.ColumnInt64(6), 0)

	if connectedAt := stmt.ColumnInt64(7); connectedAt != 0 {
		user.ConnectedAt = time.Unix(connectedAt, 0)
	}

	user.Password = make([]byte, stmt.ColumnLen(8))
	stmt.ColumnBytes(8, user.Password)
	user.IsAdmin = stmt.ColumnBool(9)

	return nil
}
