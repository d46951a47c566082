package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/parkstaff/recruitment-api/internal/core/domain"
	"github.com/parkstaff/recruitment-api/internal/core/service"
)

type stubPersonRepo struct {
	persons map[string]*domain.Person
	finds   int
}

func (r *stubPersonRepo) FindByUsername(_ context.Context, username string) (*domain.Person, error) {
	r.finds++
	if p, ok := r.persons[username]; ok {
		return p, nil
	}
	return nil, domain.ErrPersonNotFound
}

func (r *stubPersonRepo) Create(_ context.Context, person *domain.Person) (*domain.Person, error) {
	r.persons[person.Username] = person
	return person, nil
}

func newContext(t *testing.T, cookie string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func cookieCleared(rec *httptest.ResponseRecorder) bool {
	for _, sc := range rec.Header().Values("Set-Cookie") {
		if strings.HasPrefix(sc, AuthCookieName+"=;") && strings.Contains(sc, "Max-Age=0") {
			return true
		}
	}
	return false
}

func runSession(t *testing.T, cookie string, required domain.Role, repo *stubPersonRepo) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	tokens := service.NewTokenService("secret", time.Minute)
	c, rec := newContext(t, cookie)

	called := false
	mw := Session(tokens, repo, required)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func signedToken(t *testing.T, username string, role domain.Role) string {
	t.Helper()
	token, err := service.NewTokenService("secret", time.Minute).Issue(username, role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func applicantRepo() *stubPersonRepo {
	return &stubPersonRepo{persons: map[string]*domain.Person{
		"alice1": {ID: 1, Username: "alice1", Role: domain.RoleApplicant},
	}}
}

func TestSession_Admitted(t *testing.T) {
	repo := applicantRepo()
	token := signedToken(t, "alice1", domain.RoleApplicant)

	tokens := service.NewTokenService("secret", time.Minute)
	c, rec := newContext(t, token)

	mw := Session(tokens, repo, domain.RoleApplicant)
	handler := mw(func(c echo.Context) error {
		if c.Get("username") != "alice1" {
			t.Fatalf("username not injected")
		}
		if c.Get("role") != domain.RoleApplicant {
			t.Fatalf("role not injected")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSession_NoCookie(t *testing.T) {
	rec, called := runSession(t, "", domain.RoleApplicant, applicantRepo())

	if called {
		t.Fatalf("next called without a cookie")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No auth token") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	// No cookie was presented, so none is cleared.
	if len(rec.Header().Values("Set-Cookie")) != 0 {
		t.Fatalf("unexpected Set-Cookie on missing-cookie rejection")
	}
}

func TestSession_InvalidToken(t *testing.T) {
	rec, called := runSession(t, "not-a-token", domain.RoleApplicant, applicantRepo())

	if called {
		t.Fatalf("next called with an invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid auth token") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if !cookieCleared(rec) {
		t.Fatalf("cookie not cleared")
	}
}

func TestSession_RoleMismatch(t *testing.T) {
	repo := applicantRepo()
	token := signedToken(t, "alice1", domain.RoleApplicant)

	rec, called := runSession(t, token, domain.RoleRecruiter, repo)

	if called {
		t.Fatalf("applicant admitted to recruiter route")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	// Same message as any other invalid-token rejection.
	if !strings.Contains(rec.Body.String(), "Invalid auth token") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if !cookieCleared(rec) {
		t.Fatalf("cookie not cleared")
	}
	if repo.finds != 0 {
		t.Fatalf("role mismatch should reject before the identity lookup")
	}
}

func TestSession_StaleIdentity(t *testing.T) {
	// Token for a person that no longer exists in the store.
	token := signedToken(t, "ghost1", domain.RoleApplicant)
	repo := &stubPersonRepo{persons: map[string]*domain.Person{}}

	rec, called := runSession(t, token, domain.RoleApplicant, repo)

	if called {
		t.Fatalf("vanished identity admitted")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid auth token") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if !cookieCleared(rec) {
		t.Fatalf("cookie not cleared")
	}
}

func TestSession_ExpiredToken(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice1",
		"role":     int(domain.RoleApplicant),
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	raw, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec, called := runSession(t, raw, domain.RoleApplicant, applicantRepo())

	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expired token admitted: called=%v code=%d", called, rec.Code)
	}
	if !cookieCleared(rec) {
		t.Fatalf("cookie not cleared")
	}
}
