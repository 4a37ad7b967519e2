package authz

// Rule is an admin privilege rule evaluated against the attributes of a
// user.
type Rule interface {
	Exec(env map[string]any) (bool, error)
}

const (
	EnvEmail    = "email"
	EnvProvider = "provider"
	EnvSubject  = "subject"
	EnvNickname = "nickname"
)
