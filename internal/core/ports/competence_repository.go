package ports

import (
	"context"

	"github.com/parkstaff/recruitment-api/internal/core/domain"
)

// CompetenceRepository reads the competence reference data seeded out-of-band.
type CompetenceRepository interface {
	// ListAll returns every competence under its default name.
	ListAll(ctx context.Context) ([]domain.Competence, error)
	// ListByLanguage returns every competence translated into lang. An empty
	// slice means no translations exist for that language.
	ListByLanguage(ctx context.Context, lang string) ([]domain.Competence, error)
}

// CompetenceCache is a read-through cache of localized competence lists.
// A cache miss is (nil, nil), not an error.
type CompetenceCache interface {
	Get(ctx context.Context, lang string) ([]domain.Competence, error)
	Set(ctx context.Context, lang string, competences []domain.Competence) error
}
