package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/bornholm/jis/internal/authn"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// LocalProvider identifies accounts created with an email and a password.
const LocalProvider = "local"

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreatePasswordUser registers a local account. The normalized email is
// used as the account subject.
func (s *Store) CreatePasswordUser(ctx context.Context, email string, password string) (*User, error) {
	email = NormalizeEmail(email)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), s.passwordCost)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var user *User
	err = s.Tx(ctx, func(conn *sqlite.Conn) error {
		exists := false
		err := sqlitex.Execute(conn, `SELECT 1 FROM users WHERE subject = ? AND provider = ? LIMIT 1`, &sqlitex.ExecOptions{
			Args: []any{email, LocalProvider},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				exists = true
				return nil
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		if exists {
			return errors.WithStack(ErrAlreadyExists)
		}

		user, err = insertUser(conn, email, LocalProvider, passwordHash)
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

// Authenticate verifies the credentials of a local account.
func (s *Store) Authenticate(ctx context.Context, email string, password string) (*User, error) {
	email = NormalizeEmail(email)

	var user *User
	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf("SELECT %s FROM users WHERE subject = ? AND provider = ? LIMIT 1", userAttributes)
		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{email, LocalProvider},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user = &User{}
				return errors.WithStack(bindUser(stmt, user))
			},
		}))
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if user == nil || !verifyPassword([]byte(password), user.Password) {
		return nil, errors.WithStack(authn.ErrUnauthenticated)
	}

	return user, nil
}

func verifyPassword(password, hash []byte) bool {
	if len(hash) == 0 {
		return false
	}

	err := bcrypt.CompareHashAndPassword(hash, password)
	return err == nil
}
