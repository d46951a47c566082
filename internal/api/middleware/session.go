package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parkstaff/recruitment-api/internal/api/metrics"
	"github.com/parkstaff/recruitment-api/internal/core/domain"
	"github.com/parkstaff/recruitment-api/internal/core/ports"
)

// AuthCookieName is the fixed name of the session cookie.
const AuthCookieName = "personAuth"

const (
	msgNoToken      = "Unauthorized. No auth token"
	msgInvalidToken = "Unauthorized. Invalid auth token"
)

// SetAuthCookie attaches the signed session token to the response as an
// HTTP-only session cookie (no Expires/Max-Age, so it dies with the browser
// session; the token's own expiry bounds its server-side validity).
func SetAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// ClearAuthCookie instructs the client to drop the session cookie.
func ClearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// Session gates a route on a verified session token carrying the required
// role. On admission the claim's username and role are injected into the
// request context; on any rejection a 401 is written and the chain stops.
//
// An expired or tampered token, a role mismatch and a username that no longer
// resolves in the person store all produce the identical invalid-token
// response, so a caller cannot tell which condition failed. Only the missing
// cookie case leaves the cookie untouched; every other rejection clears it.
func Session(tokens ports.TokenService, persons ports.PersonRepository, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AuthCookieName)
			if err != nil || cookie.Value == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("no_token").Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": msgNoToken})
			}

			claim, err := tokens.Verify(cookie.Value)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return rejectInvalid(c)
			}

			if claim.Role != required {
				metrics.AuthRejectionsTotal.WithLabelValues("role_mismatch").Inc()
				return rejectInvalid(c)
			}

			// The token may outlive the account it was issued for.
			if _, err := persons.FindByUsername(c.Request().Context(), claim.Username); err != nil {
				if errors.Is(err, domain.ErrPersonNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("stale_identity").Inc()
					return rejectInvalid(c)
				}
				return err
			}

			c.Set("username", claim.Username)
			c.Set("role", claim.Role)
			return next(c)
		}
	}
}

func rejectInvalid(c echo.Context) error {
	ClearAuthCookie(c)
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": msgInvalidToken})
}
