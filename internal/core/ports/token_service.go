package ports

import "github.com/parkstaff/recruitment-api/internal/core/domain"

// TokenService issues and verifies the signed session tokens carried by the
// auth cookie. Tokens are stateless: no storage is consulted and there is no
// server-side revocation, so expiry is the only cap on a leaked token.
type TokenService interface {
	// Issue produces a signed token encoding username and role with a fixed
	// absolute expiration.
	Issue(username string, role domain.Role) (string, error)
	// Verify checks signature and expiration. It fails with
	// domain.ErrTokenExpired past the deadline and domain.ErrTokenInvalid for
	// a bad signature or malformed token.
	Verify(raw string) (*domain.Claim, error)
}
