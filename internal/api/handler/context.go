package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parkstaff/recruitment-api/internal/i18n"
)

// ctxUsername returns the username injected by the Session middleware. It is
// only valid on routes behind that middleware; an empty value means the
// middleware did not run, which is a wiring error, not a recoverable state.
func ctxUsername(c echo.Context) (string, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}

// reqLang resolves the response language from the Accept-Language header.
func reqLang(c echo.Context) string {
	return i18n.Match(c.Request().Header.Get("Accept-Language"))
}
