package setup

import (
	"context"

	"github.com/bornholm/jis/internal/authz"
	"github.com/bornholm/jis/internal/authz/expr"
	"github.com/bornholm/jis/internal/config"
	"github.com/bornholm/jis/internal/store"
	"github.com/pkg/errors"
)

var NewAdminPolicyFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*authz.AdminPolicy, error) {
	admins := make([]authz.Admin, 0, len(conf.Auth.Admins))
	for _, a := range conf.Auth.Admins {
		if a.Email == "" {
			continue
		}

		provider := string(a.Provider)
		if provider == "" {
			provider = store.LocalProvider
		}

		admins = append(admins, authz.Admin{
			Email:    store.NormalizeEmail(string(a.Email)),
			Provider: provider,
		})
	}

	rules := make([]authz.Rule, 0, len(conf.Auth.AdminRules))
	for _, script := range conf.Auth.AdminRules {
		rule := expr.NewRule(script)

		if err := rule.Compile(); err != nil {
			return nil, errors.Wrapf(err, "could not compile admin rule '%s'", script)
		}

		rules = append(rules, rule)
	}

	return authz.NewAdminPolicy(admins, rules...), nil
})
