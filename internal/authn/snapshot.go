package authn

// Identity is the part of the authenticated user exposed to views.
type Identity struct {
	Email string
}

// Snapshot is a point-in-time, read-only view of the visitor's
// authentication status. The zero value describes an anonymous visitor.
type Snapshot struct {
	IsAuthenticated bool
	IsAdmin         bool
	User            *Identity
}

func Anonymous() Snapshot {
	return Snapshot{}
}

func NewSnapshot(user User, isAdmin bool) Snapshot {
	if user == nil {
		return Anonymous()
	}

	return Snapshot{
		IsAuthenticated: true,
		IsAdmin:         isAdmin,
		User: &Identity{
			Email: user.UserEmail(),
		},
	}
}

// Email returns the authenticated user email, or an empty string.
func (s Snapshot) Email() string {
	if s.User == nil {
		return ""
	}

	return s.User.Email
}
