package expr

import (
	"strings"

	"github.com/bornholm/jis/internal/authz"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/conf"
	"github.com/pkg/errors"
)

// WithRuleAPI declares the rule environment and helpers available to admin
// rules.
func WithRuleAPI() expr.Option {
	options := []expr.Option{
		expr.Env(map[string]any{
			authz.EnvEmail:    "",
			authz.EnvProvider: "",
			authz.EnvSubject:  "",
			authz.EnvNickname: "",
		}),
		expr.Function(
			"domain",
			func(params ...any) (any, error) {
				email, ok := params[0].(string)
				if !ok {
					return nil, errors.Errorf("unexpected parameter type '%T', expected string", params[0])
				}

				_, domain, found := strings.Cut(email, "@")
				if !found {
					return "", nil
				}

				return strings.ToLower(domain), nil
			},
			new(func(string) string),
		),
	}

	return func(c *conf.Config) {
		for _, opt := range options {
			opt(c)
		}
	}
}
