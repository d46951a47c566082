package ports

import (
	"context"

	"github.com/parkstaff/recruitment-api/internal/core/domain"
)

type ApplicantService interface {
	// ListCompetences returns the competence list localized into lang,
	// falling back to the default names when no translation exists. Repeated
	// calls with the same lang yield identical lists.
	ListCompetences(ctx context.Context, lang string) ([]domain.Competence, error)
	// SubmitApplication records app for the person holding username.
	SubmitApplication(ctx context.Context, username string, app *domain.Application) error
}
