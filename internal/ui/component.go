package ui

import (
	"net/http"

	"github.com/bornholm/jis/internal/authn"
)

// Navbar mounts the navigation bar in pages. The auth snapshot is read from
// the request context, the transient state from the visitor's state store.
type Navbar struct {
	prefix              string
	brand               Brand
	states              *StateStore
	persistedUserCookie string
}

func NewNavbar(states *StateStore, funcs ...NavbarOptionFunc) *Navbar {
	opts := NewNavbarOptions(funcs...)

	return &Navbar{
		prefix:              opts.Prefix,
		brand:               opts.Brand,
		states:              states,
		persistedUserCookie: opts.PersistedUserCookie,
	}
}

func (n *Navbar) Prefix() string {
	return n.prefix
}

// Mount returns the navbar data of a full page render.
func (n *Navbar) Mount(r *http.Request) NavbarTemplateData {
	if n.persistedUserCookie != "" {
		logPersistedUser(r, n.persistedUserCookie)
	}

	return n.TemplateData(r, n.states.Load(r))
}

func (n *Navbar) TemplateData(r *http.Request, state NavbarState) NavbarTemplateData {
	return NewNavbarTemplateData(n.prefix, n.brand, authn.ContextSnapshot(r.Context()), state)
}

// Page returns the common data of a full page.
func (n *Navbar) Page(r *http.Request, title string) PageTemplateData {
	return PageTemplateData{
		HeadTemplateData: HeadTemplateData{
			PageTitle: title,
			SiteName:  n.brand.Name,
		},
		Navbar: n.Mount(r),
	}
}

type NavbarOptions struct {
	Prefix              string
	Brand               Brand
	PersistedUserCookie string
}

type NavbarOptionFunc func(opts *NavbarOptions)

func NewNavbarOptions(funcs ...NavbarOptionFunc) *NavbarOptions {
	opts := &NavbarOptions{
		Prefix: "/ui/navbar",
		Brand: Brand{
			Name: "JIS",
		},
		PersistedUserCookie: "user",
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithPrefix(prefix string) NavbarOptionFunc {
	return func(opts *NavbarOptions) {
		opts.Prefix = prefix
	}
}

func WithBrand(brand Brand) NavbarOptionFunc {
	return func(opts *NavbarOptions) {
		opts.Brand = brand
	}
}

// WithPersistedUserCookie sets the cookie inspected on mount. An empty name
// disables the inspection.
func WithPersistedUserCookie(name string) NavbarOptionFunc {
	return func(opts *NavbarOptions) {
		opts.PersistedUserCookie = name
	}
}
