package password

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bornholm/jis/internal/authn"
	"github.com/bornholm/jis/internal/ratelimit"
	"github.com/bornholm/jis/internal/store"
	"github.com/bornholm/jis/internal/ui"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

const testSessionCookie = "test_auth"

func newTestHandler(t *testing.T, funcs ...OptionFunc) (*Handler, *store.Store, *authn.SessionManager) {
	t.Helper()

	st := store.NewStore(filepath.Join(t.TempDir(), "store.db"), store.WithPasswordCost(bcrypt.MinCost))

	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}
	})

	if err := st.HealthCheck(context.Background()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	cookieStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	sessionManager := authn.NewSessionManager(cookieStore, testSessionCookie)
	navbar := ui.NewNavbar(ui.NewStateStore(cookieStore, "test_navbar"))

	return NewHandler(st, sessionManager, navbar, funcs...), st, sessionManager
}

func postForm(handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	return res
}

func sessionUserID(t *testing.T, sessionManager *authn.SessionManager, res *httptest.ResponseRecorder) int64 {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range res.Result().Cookies() {
		req.AddCookie(c)
	}

	userID, err := sessionManager.UserID(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return userID
}

func TestSignupThenLogin(t *testing.T) {
	handler, st, sessionManager := newTestHandler(t)

	res := postForm(handler, "/signup", url.Values{
		"email":                {"New@JIS.example"},
		"password":             {"correct horse"},
		"passwordConfirmation": {"correct horse"},
	})

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	if e, g := "/", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%v', got '%v'", e, g)
	}

	userID := sessionUserID(t, sessionManager, res)

	user, err := st.GetUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "new@jis.example", user.Email; e != g {
		t.Errorf("user.Email: expected '%v', got '%v'", e, g)
	}

	res = postForm(handler, "/login", url.Values{
		"email":    {"new@jis.example"},
		"password": {"correct horse"},
	})

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	if e, g := userID, sessionUserID(t, sessionManager, res); e != g {
		t.Errorf("session user: expected '%v', got '%v'", e, g)
	}

	res = postForm(handler, "/signup", url.Values{
		"email":                {"new@jis.example"},
		"password":             {"another password"},
		"passwordConfirmation": {"another password"},
	})

	if e, g := http.StatusConflict, res.Code; e != g {
		t.Errorf("res.Code: expected '%v', got '%v'", e, g)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	handler, st, _ := newTestHandler(t)

	if _, err := st.CreatePasswordUser(context.Background(), "u@jis.example", "correct horse"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for _, form := range []url.Values{
		{"email": {"u@jis.example"}, "password": {"wrong"}},
		{"email": {"unknown@jis.example"}, "password": {"correct horse"}},
	} {
		res := postForm(handler, "/login", form)

		if e, g := http.StatusUnauthorized, res.Code; e != g {
			t.Errorf("res.Code: expected '%v', got '%v'", e, g)
		}

		if !strings.Contains(res.Body.String(), "Invalid email or password.") {
			t.Errorf("expected error message, got '%s'", res.Body.String())
		}

		if g := len(res.Result().Cookies()); g != 0 {
			t.Errorf("expected no session cookie, got '%v'", g)
		}
	}
}

func TestSignupValidation(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	testCases := []url.Values{
		{"email": {"not an email"}, "password": {"correct horse"}, "passwordConfirmation": {"correct horse"}},
		{"email": {"u@jis.example"}, "password": {"short"}, "passwordConfirmation": {"short"}},
		{"email": {"u@jis.example"}, "password": {"correct horse"}, "passwordConfirmation": {"battery staple"}},
	}

	for i, form := range testCases {
		res := postForm(handler, "/signup", form)

		if e, g := http.StatusBadRequest, res.Code; e != g {
			t.Errorf("testCases[%d] res.Code: expected '%v', got '%v'", i, e, g)
		}
	}
}

func TestSignupDisabled(t *testing.T) {
	handler, _, _ := newTestHandler(t, WithSignup(false))

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/signup", nil))

	if e, g := http.StatusNotFound, res.Code; e != g {
		t.Errorf("res.Code: expected '%v', got '%v'", e, g)
	}

	res = postForm(handler, "/signup", url.Values{
		"email":                {"u@jis.example"},
		"password":             {"correct horse"},
		"passwordConfirmation": {"correct horse"},
	})

	if e, g := http.StatusNotFound, res.Code; e != g {
		t.Errorf("res.Code: expected '%v', got '%v'", e, g)
	}
}

func TestLoginRateLimit(t *testing.T) {
	handler, _, _ := newTestHandler(t, WithRateLimiter(ratelimit.New(rate.Limit(0), 1)))

	form := url.Values{"email": {"u@jis.example"}, "password": {"wrong"}}

	if e, g := http.StatusUnauthorized, postForm(handler, "/login", form).Code; e != g {
		t.Errorf("first attempt: expected '%v', got '%v'", e, g)
	}

	if e, g := http.StatusTooManyRequests, postForm(handler, "/login", form).Code; e != g {
		t.Errorf("second attempt: expected '%v', got '%v'", e, g)
	}
}

func TestLoginPageRedirectsAuthenticated(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req = req.WithContext(authn.WithContextSnapshot(req.Context(), authn.Snapshot{IsAuthenticated: true, User: &authn.Identity{Email: "u@jis.example"}}))

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Errorf("res.Code: expected '%v', got '%v'", e, g)
	}
}
