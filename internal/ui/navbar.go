package ui

import (
	"net/url"
	"strings"

	"github.com/bornholm/jis/internal/authn"
)

type NavbarItem struct {
	Label string
	// MobileLabel overrides Label in the mobile menu
	MobileLabel string
	URL         string
	Icon        string
}

// Slug returns the item path without its leading slash.
func (i NavbarItem) Slug() string {
	return strings.TrimPrefix(i.URL, "/")
}

type Brand struct {
	Name    string
	Tagline string
	LogoURL string
}

var (
	NavbarItemHome      = NavbarItem{Label: "Home", URL: "/"}
	NavbarItemCompany   = NavbarItem{Label: "About", URL: "/company"}
	NavbarItemHireUs    = NavbarItem{Label: "Hire Us", URL: "/hire-us"}
	NavbarItemPortfolio = NavbarItem{Label: "Portfolio", URL: "/portfolio"}
	NavbarItemBlog      = NavbarItem{Label: "Blog", URL: "/blog"}
	NavbarItemContact   = NavbarItem{Label: "Contact", URL: "/contact"}
	NavbarItemServices  = NavbarItem{Label: "Services", URL: "/services", Icon: "fa-chevron-down"}

	NavbarItemLogin  = NavbarItem{Label: "Login", URL: "/login"}
	NavbarItemSignup = NavbarItem{Label: "Sign Up", URL: "/signup"}
	NavbarItemLogout = NavbarItem{Label: "Logout", Icon: "fa-sign-out-alt"}
)

// PrimaryLinks are the top level links, in display order.
var PrimaryLinks = []NavbarItem{
	NavbarItemHome,
	NavbarItemCompany,
	NavbarItemHireUs,
	NavbarItemPortfolio,
	NavbarItemBlog,
	NavbarItemContact,
}

// ServiceLinks are the fixed entries of the services submenu.
var ServiceLinks = []NavbarItem{
	{Label: "Web Design & Graphics", URL: "/web-design-&-graphics"},
	{Label: "Web Development", URL: "/web-development"},
	{Label: "Software & Mobile", URL: "/software-&-mobile"},
	{Label: "Web Marketing", URL: "/web-marketing"},
}

// AdminActions are the entries of the admin menu.
var AdminActions = []NavbarItem{
	{Label: "Admin Panel", MobileLabel: "Dashboard", URL: "/admin", Icon: "fa-cog"},
	{Label: "Create Service", URL: "/admin/create-service", Icon: "fa-file-circle-plus"},
	{Label: "Create Portfolio", URL: "/admin/create-portfolio", Icon: "fa-plus"},
}

type NavbarTemplateData struct {
	Prefix       string
	Brand        Brand
	PrimaryLinks []NavbarItem
	Services     NavbarItem
	ServiceLinks []NavbarItem
	AdminActions []NavbarItem
	Login        NavbarItem
	Signup       NavbarItem
	Logout       NavbarItem
	Auth         authn.Snapshot
	State        NavbarState
}

// NewNavbarTemplateData builds the navbar view model. It only depends on
// its arguments.
func NewNavbarTemplateData(prefix string, brand Brand, snapshot authn.Snapshot, state NavbarState) NavbarTemplateData {
	return NavbarTemplateData{
		Prefix:       prefix,
		Brand:        brand,
		PrimaryLinks: PrimaryLinks,
		Services:     NavbarItemServices,
		ServiceLinks: ServiceLinks,
		AdminActions: AdminActions,
		Login:        NavbarItemLogin,
		Signup:       NavbarItemSignup,
		Logout:       NavbarItemLogout,
		Auth:         snapshot,
		State:        state,
	}
}

func (d NavbarTemplateData) ShowGuestControls() bool {
	return !d.Auth.IsAuthenticated
}

func (d NavbarTemplateData) ShowAdminMenu() bool {
	return d.Auth.IsAuthenticated && d.Auth.IsAdmin
}

func (d NavbarTemplateData) ShowPlainLogout() bool {
	return d.Auth.IsAuthenticated && !d.Auth.IsAdmin
}

func (d NavbarTemplateData) Email() string {
	return d.Auth.Email()
}

func (d NavbarTemplateData) MobileMenuOpen() bool {
	return d.State.MobileMenuOpen
}

// IsExpanded reports whether the named mobile dropdown is expanded.
func (d NavbarTemplateData) IsExpanded(name string) bool {
	dropdown, err := ParseDropdown(name)
	if err != nil {
		return false
	}

	return d.State.IsExpanded(dropdown)
}

// NavigateURL returns the URL of a mobile link to path: following it closes
// the mobile menu before navigating.
func (d NavbarTemplateData) NavigateURL(path string) string {
	return d.Prefix + "/navigate?" + url.Values{"to": []string{path}}.Encode()
}
