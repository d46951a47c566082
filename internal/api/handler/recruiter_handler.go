package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RecruiterHandler handles the recruiter landing route. The route exists so
// the frontend can confirm a recruiter session before rendering its homepage;
// there is no payload yet.
type RecruiterHandler struct{}

func NewRecruiterHandler() *RecruiterHandler {
	return &RecruiterHandler{}
}

// Home handles GET /recruiter.
func (h *RecruiterHandler) Home(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
