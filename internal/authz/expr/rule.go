package expr

import (
	"sync"

	"github.com/bornholm/jis/internal/authz"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
)

type Rule struct {
	script  string
	program *vm.Program

	compileOnce sync.Once
	compileErr  error
}

// Exec implements authz.Rule.
func (r *Rule) Exec(env map[string]any) (bool, error) {
	program, err := r.getProgram()
	if err != nil {
		return false, errors.WithStack(err)
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return false, errors.WithStack(err)
	}

	allowed, ok := result.(bool)
	if !ok {
		return false, errors.Errorf("unexpected rule '%s' result type '%T', expected boolean", r.script, result)
	}

	return allowed, nil
}

// Compile checks the rule script without executing it.
func (r *Rule) Compile() error {
	if _, err := r.getProgram(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (r *Rule) getProgram() (*vm.Program, error) {
	r.compileOnce.Do(func() {
		program, err := expr.Compile(r.script, expr.AsBool(), WithRuleAPI())
		if err != nil {
			r.compileErr = errors.WithStack(err)
			return
		}

		r.program = program
	})
	if r.compileErr != nil {
		return nil, errors.WithStack(r.compileErr)
	}

	return r.program, nil
}

func (r *Rule) String() string {
	return r.script
}

func NewRule(script string) *Rule {
	return &Rule{script: script}
}

var _ authz.Rule = &Rule{}
