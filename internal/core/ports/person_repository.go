package ports

import (
	"context"

	"github.com/parkstaff/recruitment-api/internal/core/domain"
)

// PersonRepository defines the persistence interface for person records.
type PersonRepository interface {
	// FindByUsername returns the person holding username, or
	// domain.ErrPersonNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.Person, error)
	// Create inserts person and returns it with its generated id. A username
	// collision surfaces as domain.ErrUsernameTaken.
	Create(ctx context.Context, person *domain.Person) (*domain.Person, error)
}
