package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parkstaff/recruitment-api/internal/api/metrics"
	"github.com/parkstaff/recruitment-api/internal/core/domain"
	"github.com/parkstaff/recruitment-api/internal/core/ports"
	"github.com/parkstaff/recruitment-api/internal/i18n"
)

// ApplicantHandler handles the applicant-facing routes. All of them sit
// behind the Session middleware requiring the applicant role.
type ApplicantHandler struct {
	service ports.ApplicantService
}

func NewApplicantHandler(service ports.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{service: service}
}

// Competences handles GET /applicant.
//
// @Summary      List competences, localized by Accept-Language
// @Tags         applicant
// @Produce      json
// @Success      200  {object}  competenceListResponse
// @Failure      401  {object}  errorResponse
// @Router       /applicant [get]
func (h *ApplicantHandler) Competences(c echo.Context) error {
	list, err := h.service.ListCompetences(c.Request().Context(), reqLang(c))
	if err != nil {
		return err
	}

	resp := competenceListResponse{Competences: make([]competenceResponse, 0, len(list))}
	for _, comp := range list {
		resp.Competences = append(resp.Competences, competenceResponse{ID: comp.ID, Name: comp.Name})
	}
	return c.JSON(http.StatusOK, resp)
}

// ApplyCheck handles GET /applicant/apply. It carries no payload; reaching it
// proves the session admits the applicant role, which the frontend uses to
// gate the application form.
func (h *ApplicantHandler) ApplyCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, resultResponse{Result: i18n.T(reqLang(c), "apply.authorized")})
}

// Apply handles POST /applicant/apply.
//
// @Summary      Submit an application
// @Tags         applicant
// @Accept       json
// @Produce      json
// @Param        body  body      applyRequest  true  "Competence profiles and availability periods"
// @Success      200   {object}  resultResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /applicant/apply [post]
func (h *ApplicantHandler) Apply(c echo.Context) error {
	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	competences := make([]domain.CompetenceProfile, 0, len(req.Competences))
	for _, entry := range req.Competences {
		competences = append(competences, domain.CompetenceProfile{
			CompetenceID:      entry.ID,
			YearsOfExperience: entry.Experience,
		})
	}
	availabilities := make([]domain.AvailabilityPeriod, 0, len(req.Availabilities))
	for _, period := range req.Availabilities {
		availabilities = append(availabilities, domain.AvailabilityPeriod{
			FromDate: period.From,
			ToDate:   period.To,
		})
	}

	app, err := domain.NewApplication(username, competences, availabilities)
	if err != nil {
		return err
	}

	if err := h.service.SubmitApplication(c.Request().Context(), username, app); err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return c.JSON(http.StatusOK, resultResponse{Result: i18n.T(reqLang(c), "apply.success")})
}
