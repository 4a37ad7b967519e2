package config

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestInterpolateDefaults(t *testing.T) {
	withEnv(t, map[string]string{
		"JIS_HTTP_ADDRESS":     ":9090",
		"JIS_SITE_NAME":        "ACME",
		"JIS_AUTH_ADMIN_EMAIL": "admin@acme.test",
	})

	conf := NewDefaultConfig()

	if err := Interpolate(conf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := ":9090", string(conf.HTTP.Address); e != g {
		t.Errorf("conf.HTTP.Address: expected '%v', got '%v'", e, g)
	}

	if e, g := "ACME", string(conf.Site.Name); e != g {
		t.Errorf("conf.Site.Name: expected '%v', got '%v'", e, g)
	}

	if e, g := "Jharkhand IT Solutions", string(conf.Site.Tagline); e != g {
		t.Errorf("conf.Site.Tagline: expected '%v', got '%v'", e, g)
	}

	if e, g := 0, len(conf.HTTP.Session.Keys); e != g {
		t.Errorf("len(conf.HTTP.Session.Keys): expected '%v', got '%v'", e, g)
	}

	if e, g := 24*time.Hour, time.Duration(*conf.HTTP.Session.Cookie.MaxAge); e != g {
		t.Errorf("conf.HTTP.Session.Cookie.MaxAge: expected '%v', got '%v'", e, g)
	}

	if e, g := "admin@acme.test", string(conf.Auth.Admins[0].Email); e != g {
		t.Errorf("conf.Auth.Admins[0].Email: expected '%v', got '%v'", e, g)
	}

	if e, g := "local", string(conf.Auth.Admins[0].Provider); e != g {
		t.Errorf("conf.Auth.Admins[0].Provider: expected '%v', got '%v'", e, g)
	}

	if e, g := LogFormatText, string(conf.Logger.Format); e != g {
		t.Errorf("conf.Logger.Format: expected '%v', got '%v'", e, g)
	}

	if e, g := "", string(conf.Media.S3.Endpoint); e != g {
		t.Errorf("conf.Media.S3.Endpoint: expected '%v', got '%v'", e, g)
	}

	if e, g := "jis", string(conf.Media.S3.Bucket); e != g {
		t.Errorf("conf.Media.S3.Bucket: expected '%v', got '%v'", e, g)
	}

	if e, g := "user", string(conf.UI.PersistedUserCookie); e != g {
		t.Errorf("conf.UI.PersistedUserCookie: expected '%v', got '%v'", e, g)
	}
}

func TestLoadFile(t *testing.T) {
	withEnv(t, map[string]string{
		"PORT": "3000",
	})

	conf := NewDefaultConfig()

	if err := LoadFile("testdata/config.yml", conf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := ":3000", string(conf.HTTP.Address); e != g {
		t.Errorf("conf.HTTP.Address: expected '%v', got '%v'", e, g)
	}

	if e, g := "ACME", string(conf.Site.Name); e != g {
		t.Errorf("conf.Site.Name: expected '%v', got '%v'", e, g)
	}

	if e, g := false, bool(conf.Auth.Signup.Enabled); e != g {
		t.Errorf("conf.Auth.Signup.Enabled: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, len(conf.Auth.AdminRules); e != g {
		t.Errorf("len(conf.Auth.AdminRules): expected '%v', got '%v'", e, g)
	}

	if e, g := "minio:9000", string(conf.Media.S3.Endpoint); e != g {
		t.Errorf("conf.Media.S3.Endpoint: expected '%v', got '%v'", e, g)
	}

	if e, g := false, bool(conf.Media.S3.Secure); e != g {
		t.Errorf("conf.Media.S3.Secure: expected '%v', got '%v'", e, g)
	}
}

func TestDumpComments(t *testing.T) {
	var buff bytes.Buffer

	if err := Dump(&buff, NewDefaultConfig()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	dumped := buff.String()

	for _, expected := range []string{"Webserver configuration", "Site branding", "adminRules", "object storage"} {
		if !strings.Contains(dumped, expected) {
			t.Errorf("dump: expected to contain '%s'", expected)
		}
	}
}
