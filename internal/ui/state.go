package ui

import (
	"github.com/pkg/errors"
)

var ErrUnknownDropdown = errors.New("unknown dropdown")

// Dropdown identifies a mobile disclosure widget. At most one is expanded
// at a time.
type Dropdown int

const (
	DropdownNone Dropdown = iota
	DropdownServices
	DropdownAdmin
)

func (d Dropdown) String() string {
	switch d {
	case DropdownServices:
		return "services"
	case DropdownAdmin:
		return "admin"
	default:
		return ""
	}
}

func ParseDropdown(raw string) (Dropdown, error) {
	switch raw {
	case "services":
		return DropdownServices, nil
	case "admin":
		return DropdownAdmin, nil
	case "":
		return DropdownNone, nil
	default:
		return DropdownNone, errors.Wrapf(ErrUnknownDropdown, "'%s'", raw)
	}
}

// NavbarState is the transient, per visitor, state of the navigation bar.
// The zero value is the initial state: mobile menu closed, no dropdown
// expanded.
type NavbarState struct {
	MobileMenuOpen bool
	ActiveDropdown Dropdown
}

func (s *NavbarState) ToggleMobileMenu() {
	s.MobileMenuOpen = !s.MobileMenuOpen
}

func (s *NavbarState) CloseMobileMenu() {
	s.MobileMenuOpen = false
}

// ToggleDropdown collapses d if it is the expanded dropdown, otherwise
// expands it in place of the current one.
func (s *NavbarState) ToggleDropdown(d Dropdown) {
	if s.ActiveDropdown == d {
		s.ActiveDropdown = DropdownNone
		return
	}

	s.ActiveDropdown = d
}

func (s NavbarState) IsExpanded(d Dropdown) bool {
	return d != DropdownNone && s.ActiveDropdown == d
}
