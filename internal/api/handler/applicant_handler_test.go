package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/parkstaff/recruitment-api/internal/core/domain"
	"github.com/parkstaff/recruitment-api/internal/validation"
)

type stubApplicantService struct {
	listFn   func(ctx context.Context, lang string) ([]domain.Competence, error)
	submitFn func(ctx context.Context, username string, app *domain.Application) error
	lists    int
	submits  int
}

func (s *stubApplicantService) ListCompetences(ctx context.Context, lang string) ([]domain.Competence, error) {
	s.lists++
	return s.listFn(ctx, lang)
}

func (s *stubApplicantService) SubmitApplication(ctx context.Context, username string, app *domain.Application) error {
	s.submits++
	return s.submitFn(ctx, username, app)
}

func getRequest(t *testing.T, path, acceptLanguage string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestApplicantHandler_Competences(t *testing.T) {
	stub := &stubApplicantService{
		listFn: func(ctx context.Context, lang string) ([]domain.Competence, error) {
			if lang != "sv" {
				t.Fatalf("expected sv, got %q", lang)
			}
			return []domain.Competence{
				{ID: 1, Name: "biljettförsäljning"},
				{ID: 2, Name: "lotterier"},
			}, nil
		},
	}
	h := NewApplicantHandler(stub)

	decode := func(rec *httptest.ResponseRecorder) competenceListResponse {
		var resp competenceListResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		return resp
	}

	c, rec := getRequest(t, "/applicant", "sv-SE,sv;q=0.9")
	if err := h.Competences(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	first := decode(rec)
	if len(first.Competences) != 2 || first.Competences[0].Name != "biljettförsäljning" {
		t.Fatalf("unexpected listing: %+v", first)
	}

	// A repeat call with the same header yields the same listing.
	c, rec = getRequest(t, "/applicant", "sv-SE,sv;q=0.9")
	if err := h.Competences(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	second := decode(rec)
	if len(second.Competences) != len(first.Competences) ||
		second.Competences[0] != first.Competences[0] ||
		second.Competences[1] != first.Competences[1] {
		t.Fatalf("listing changed between calls: %+v vs %+v", first, second)
	}
}

func TestApplicantHandler_ApplyCheck(t *testing.T) {
	h := NewApplicantHandler(&stubApplicantService{})

	c, rec := getRequest(t, "/applicant/apply", "")
	if err := h.ApplyCheck(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "result") {
		t.Fatalf("expected result payload, got %s", rec.Body.String())
	}
}

func applyContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := postJSON(t, "/applicant/apply", body)
	c.Set("username", "alice1")
	c.Set("role", domain.RoleApplicant)
	return c, rec
}

func TestApplicantHandler_Apply_Success(t *testing.T) {
	var got *domain.Application
	stub := &stubApplicantService{
		submitFn: func(ctx context.Context, username string, app *domain.Application) error {
			if username != "alice1" {
				t.Fatalf("unexpected username %q", username)
			}
			got = app
			return nil
		},
	}
	h := NewApplicantHandler(stub)

	body := `{"competences":[{"id":1,"experience":3.5},{"id":3,"experience":0}],
		"availabilities":[{"from":"2026-06-01","to":"2026-08-15"}]}`
	c, rec := applyContext(t, body)
	if err := h.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got == nil || len(got.Competences) != 2 || len(got.Availabilities) != 1 {
		t.Fatalf("unexpected application: %+v", got)
	}
	if got.Competences[0].CompetenceID != 1 || got.Competences[0].YearsOfExperience != 3.5 {
		t.Fatalf("unexpected competence entry: %+v", got.Competences[0])
	}
	if got.Availabilities[0].FromDate != "2026-06-01" || got.Availabilities[0].ToDate != "2026-08-15" {
		t.Fatalf("unexpected availability: %+v", got.Availabilities[0])
	}
}

// Reversed ranges pass through untouched; the period endpoints are stored as
// submitted.
func TestApplicantHandler_Apply_ReversedRangeAccepted(t *testing.T) {
	stub := &stubApplicantService{
		submitFn: func(ctx context.Context, username string, app *domain.Application) error {
			return nil
		},
	}
	h := NewApplicantHandler(stub)

	body := `{"competences":[{"id":1,"experience":1}],
		"availabilities":[{"from":"2026-08-15","to":"2026-06-01"}]}`
	c, rec := applyContext(t, body)
	if err := h.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.submits != 1 {
		t.Fatalf("expected one submission, got %d", stub.submits)
	}
}

func TestApplicantHandler_Apply_InvalidPayload(t *testing.T) {
	stub := &stubApplicantService{}
	h := NewApplicantHandler(stub)

	bodies := []string{
		`{"competences":[],"availabilities":[{"from":"2026-06-01","to":"2026-08-15"}]}`,
		`{"competences":[{"id":1,"experience":1}],"availabilities":[]}`,
		`{"competences":[{"id":0,"experience":1}],"availabilities":[{"from":"2026-06-01","to":"2026-08-15"}]}`,
		`{"competences":[{"id":1,"experience":-1}],"availabilities":[{"from":"2026-06-01","to":"2026-08-15"}]}`,
		`{"competences":[{"id":1,"experience":1}],"availabilities":[{"from":"2026-junk","to":"2026-08-15"}]}`,
		`{"competences":[{"id":1,"experience":1}],"availabilities":[{"from":"2026-02-30","to":"2026-08-15"}]}`,
	}
	for _, body := range bodies {
		c, _ := applyContext(t, body)
		err := h.Apply(c)

		var ve *validation.Error
		if !errors.As(err, &ve) {
			t.Fatalf("body %s: expected *validation.Error, got %v", body, err)
		}
	}
	if stub.submits != 0 {
		t.Fatalf("service reached despite invalid payload: %d submissions", stub.submits)
	}
}

func TestApplicantHandler_Apply_MissingSession(t *testing.T) {
	stub := &stubApplicantService{}
	h := NewApplicantHandler(stub)

	body := `{"competences":[{"id":1,"experience":1}],
		"availabilities":[{"from":"2026-06-01","to":"2026-08-15"}]}`
	c, _ := postJSON(t, "/applicant/apply", body)

	err := h.Apply(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if stub.submits != 0 {
		t.Fatalf("service reached without session")
	}
}
