package ui

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/bornholm/jis/internal/authn"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// hiddenOverride matches a rule forcing elements carrying the hidden
// attribute out of the layout, whatever their class rules say.
var hiddenOverride = regexp.MustCompile(`\[hidden\]\s*\{\s*display:\s*none\s*!important;?\s*\}`)

func TestHeadStylesKeepHiddenEffective(t *testing.T) {
	styles := renderHeadStyles(t)

	if !hiddenOverride.MatchString(styles) {
		t.Errorf("styles: expected a '[hidden] { display: none !important; }' rule")
	}

	// Collapsed disclosures are marked with the hidden attribute only
	for _, selector := range []string{".navbar-mobile", ".navbar-disclosure-panel"} {
		if !strings.Contains(styles, selector) {
			t.Errorf("styles: expected a rule for '%s'", selector)
		}
	}

	if !strings.Contains(styles, ".navbar-mobile-admin button") {
		t.Errorf("styles: expected the mobile admin toggle to be styled through its form")
	}
}

func TestNavbarCollapsedPanelsAreHidden(t *testing.T) {
	data := NewNavbarTemplateData("/ui/navbar", testBrand, authn.NewSnapshot(&testIdentity{email: "a@x.com"}, true), NavbarState{MobileMenuOpen: true})
	doc := renderNavbar(t, data)

	for _, marker := range []string{"mobile-services-panel", "mobile-admin-panel"} {
		panels := findByNav(doc, marker)
		if e, g := 1, len(panels); e != g {
			t.Fatalf("len(%s): expected '%v', got '%v'", marker, e, g)
		}

		if !hasAttr(panels[0], "hidden") {
			t.Errorf("%s: expected collapsed panel to carry the hidden attribute", marker)
		}
	}

	admin := findByNav(doc, "mobile-admin")
	if e, g := 1, len(admin); e != g {
		t.Fatalf("len(mobile-admin): expected '%v', got '%v'", e, g)
	}

	// The admin toggle is nested in a form, not a direct child
	toggle := findByNav(admin[0], "mobile-admin-toggle")
	if e, g := 1, len(toggle); e != g {
		t.Fatalf("len(mobile-admin-toggle): expected '%v', got '%v'", e, g)
	}

	if toggle[0].Parent == admin[0] {
		t.Errorf("mobile-admin-toggle: unexpected direct child of the disclosure")
	}
}

func renderHeadStyles(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "head", HeadTemplateData{PageTitle: "Home", SiteName: "JIS"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var styles strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "style" {
			styles.WriteString(textContent(n))
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	return styles.String()
}
