package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parkstaff/recruitment-api/internal/api/metrics"
	"github.com/parkstaff/recruitment-api/internal/api/middleware"
	"github.com/parkstaff/recruitment-api/internal/core/domain"
	"github.com/parkstaff/recruitment-api/internal/core/ports"
	"github.com/parkstaff/recruitment-api/internal/i18n"
)

type AuthHandler struct {
	authService ports.AuthService
	tokens      ports.TokenService
}

func NewAuthHandler(authService ports.AuthService, tokens ports.TokenService) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens}
}

// SignUp handles POST /signup.
//
// @Summary      Register a new applicant
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Sign-up form fields"
// @Success      200   {object}  signUpResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	person, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Pnr:      req.Pnr,
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		return err
	}

	token, err := h.tokens.Issue(person.Username, person.Role)
	if err != nil {
		return err
	}
	middleware.SetAuthCookie(c, token)

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusOK, signUpResponse{
		Result: i18n.T(reqLang(c), "signup.success"),
		Person: personResponse{
			Name:     person.Name,
			Surname:  person.Surname,
			Username: person.Username,
		},
	})
}

// SignIn handles POST /signin.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  signInResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	person, err := h.authService.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrWrongCredentials) {
			metrics.SigninsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	token, err := h.tokens.Issue(person.Username, person.Role)
	if err != nil {
		return err
	}
	middleware.SetAuthCookie(c, token)

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, signInResponse{
		Result: i18n.T(reqLang(c), "signin.success"),
		Person: personResponse{
			Name:     person.Name,
			Surname:  person.Surname,
			Username: person.Username,
		},
		Role: person.Role.String(),
	})
}
