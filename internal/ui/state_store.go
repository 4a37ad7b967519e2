package ui

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/jis/pkg/log"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	stateKeyMobileMenuOpen = "mobileMenuOpen"
	stateKeyActiveDropdown = "activeDropdown"
)

// StateStore keeps the navbar state in a dedicated session cookie.
type StateStore struct {
	store sessions.Store
	name  string
}

func NewStateStore(store sessions.Store, name string) *StateStore {
	return &StateStore{
		store: store,
		name:  name,
	}
}

// Load returns the visitor's navbar state. Missing or unreadable sessions
// yield the initial state.
func (s *StateStore) Load(r *http.Request) NavbarState {
	sess, err := s.store.Get(r, s.name)
	if err != nil {
		slog.DebugContext(r.Context(), "could not read navbar state, using defaults", log.Error(errors.WithStack(err)))
		return NavbarState{}
	}

	state := NavbarState{}

	if open, ok := sess.Values[stateKeyMobileMenuOpen].(bool); ok {
		state.MobileMenuOpen = open
	}

	if rawDropdown, ok := sess.Values[stateKeyActiveDropdown].(string); ok {
		dropdown, err := ParseDropdown(rawDropdown)
		if err != nil {
			slog.DebugContext(r.Context(), "ignoring stored dropdown", log.Error(errors.WithStack(err)))
		}

		state.ActiveDropdown = dropdown
	}

	return state
}

func (s *StateStore) Save(w http.ResponseWriter, r *http.Request, state NavbarState) error {
	sess, err := s.store.Get(r, s.name)
	if err != nil {
		slog.DebugContext(r.Context(), "replacing unreadable navbar state", log.Error(errors.WithStack(err)))
	}

	sess.Values[stateKeyMobileMenuOpen] = state.MobileMenuOpen
	sess.Values[stateKeyActiveDropdown] = state.ActiveDropdown.String()

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
