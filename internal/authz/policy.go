package authz

import (
	"context"
	"log/slog"

	"github.com/bornholm/jis/internal/authn"
	"github.com/bornholm/jis/pkg/log"
	"github.com/pkg/errors"
)

// AdminPolicy decides whether a user has admin privileges, either because
// it is listed as an admin or because one of the rules grants it.
type AdminPolicy struct {
	admins []Admin
	rules  []Rule
}

func NewAdminPolicy(admins []Admin, rules ...Rule) *AdminPolicy {
	return &AdminPolicy{
		admins: admins,
		rules:  rules,
	}
}

// IsAdmin evaluates the policy for user. Failing rules are logged and do
// not grant privileges.
func (p *AdminPolicy) IsAdmin(ctx context.Context, user authn.User) bool {
	if user == nil {
		return false
	}

	for _, a := range p.admins {
		if a.Matches(user) {
			return true
		}
	}

	for _, r := range p.rules {
		allowed, err := r.Exec(userEnv(user))
		if err != nil {
			slog.ErrorContext(ctx, "could not execute admin rule", slog.Any("rule", r), log.Error(errors.WithStack(err)))
			continue
		}

		if allowed {
			return true
		}
	}

	return false
}
