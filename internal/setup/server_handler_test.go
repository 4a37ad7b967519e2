package setup

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bornholm/jis/internal/config"
	"github.com/pkg/errors"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ctx := context.Background()

	conf := config.NewDefaultConfig()
	if err := config.Interpolate(conf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	conf.Store.Path = config.InterpolatedString(filepath.Join(t.TempDir(), "data.db"))
	conf.Media.S3.Endpoint = ""
	conf.Auth.Admins = []config.User{
		{Email: "admin@jis.example", Provider: "local"},
	}

	handler, err := NewHandlerFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	st, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	server := httptest.NewServer(handler)

	t.Cleanup(func() {
		server.Close()

		if err := st.Close(); err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}
	})

	return server
}

func newTestClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return &http.Client{Jar: jar}
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return string(body)
}

func signup(t *testing.T, client *http.Client, server *httptest.Server, email string) string {
	t.Helper()

	res, err := client.PostForm(server.URL+"/signup", url.Values{
		"email":                {email},
		"password":             {"correct horse"},
		"passwordConfirmation": {"correct horse"},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "/", res.Request.URL.Path; e != g {
		t.Errorf("res.Request.URL.Path: expected '%v', got '%v'", e, g)
	}

	return readBody(t, res)
}

func TestNavbarLifecycle(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t)

	res, err := client.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	body := readBody(t, res)

	if !strings.Contains(body, `data-nav="login"`) || !strings.Contains(body, `data-nav="signup"`) {
		t.Errorf("expected guest controls for anonymous visitor")
	}

	body = signup(t, client, server, "admin@jis.example")

	if !strings.Contains(body, `data-nav="admin-menu"`) {
		t.Errorf("expected admin menu for configured admin")
	}

	if !strings.Contains(body, "admin@jis.example") {
		t.Errorf("expected admin email in navbar")
	}

	if strings.Contains(body, `data-nav="login"`) {
		t.Errorf("expected no login link for authenticated visitor")
	}

	res, err = client.PostForm(server.URL+"/ui/navbar/mobile", nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if body := readBody(t, res); !strings.Contains(body, `data-open="true"`) {
		t.Errorf("expected mobile menu to be open")
	}

	res, err = client.PostForm(server.URL+"/ui/navbar/logout", url.Values{"variant": {"mobile"}})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "/", res.Request.URL.Path; e != g {
		t.Errorf("res.Request.URL.Path: expected '%v', got '%v'", e, g)
	}

	body = readBody(t, res)

	if !strings.Contains(body, `data-nav="login"`) {
		t.Errorf("expected guest controls after logout")
	}

	if !strings.Contains(body, `data-open="false"`) {
		t.Errorf("expected mobile menu to be closed after mobile logout")
	}
}

func TestNonAdminAccess(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t)

	res, err := client.Get(server.URL + "/admin")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	readBody(t, res)

	if e, g := "/login", res.Request.URL.Path; e != g {
		t.Errorf("anonymous admin access: expected redirect to '%v', got '%v'", e, g)
	}

	body := signup(t, client, server, "member@jis.example")

	if !strings.Contains(body, `data-nav="logout"`) {
		t.Errorf("expected plain logout for non admin user")
	}

	if strings.Contains(body, `data-nav="admin-menu"`) {
		t.Errorf("expected no admin menu for non admin user")
	}

	res, err = client.Get(server.URL + "/admin")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	readBody(t, res)

	if e, g := http.StatusForbidden, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected '%v', got '%v'", e, g)
	}

	res, err = client.Get(server.URL + "/debug/pprof/")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	readBody(t, res)

	if e, g := http.StatusNotFound, res.StatusCode; e != g {
		t.Errorf("disabled pprof: expected '%v', got '%v'", e, g)
	}
}
