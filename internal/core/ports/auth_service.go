package ports

import (
	"context"

	"github.com/parkstaff/recruitment-api/internal/core/domain"
)

// SignUpInput carries the validated sign-up form fields.
type SignUpInput struct {
	Name     string
	Surname  string
	Pnr      string
	Email    string
	Password string
	Username string
}

type AuthService interface {
	// SignUp registers a new applicant. Returns domain.ErrUsernameTaken when
	// the username is already in use.
	SignUp(ctx context.Context, input SignUpInput) (*domain.Person, error)
	// SignIn checks the credentials and returns the matching person, or
	// domain.ErrWrongCredentials. Unknown username and wrong password are
	// indistinguishable to the caller.
	SignIn(ctx context.Context, username, password string) (*domain.Person, error)
}
