package ports

import (
	"context"

	"github.com/parkstaff/recruitment-api/internal/core/domain"
)

// ApplicationRepository persists submitted applications. All availability and
// competence-profile rows of one application are written with explicit
// person_id foreign keys inside a single transaction; partial failure leaves
// no orphan rows.
type ApplicationRepository interface {
	Create(ctx context.Context, personID int, app *domain.Application) error
}
