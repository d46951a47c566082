package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/parkstaff/recruitment-api/internal/core/domain"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create writes all rows of one application inside a single transaction. The
// person_id foreign key is set explicitly on every row before the batched
// inserts; a failure on any row rolls back the whole application.
func (r *ApplicationRepository) Create(ctx context.Context, personID int, app *domain.Application) error {
	availabilities := make([]availabilityModel, 0, len(app.Availabilities))
	for _, period := range app.Availabilities {
		availabilities = append(availabilities, availabilityModel{
			PersonID: personID,
			FromDate: period.FromDate,
			ToDate:   period.ToDate,
		})
	}

	profiles := make([]competenceProfileModel, 0, len(app.Competences))
	for _, cp := range app.Competences {
		profiles = append(profiles, competenceProfileModel{
			PersonID:          personID,
			CompetenceID:      cp.CompetenceID,
			YearsOfExperience: cp.YearsOfExperience,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(availabilities) > 0 {
			if err := tx.Create(&availabilities).Error; err != nil {
				return err
			}
		}
		if len(profiles) > 0 {
			if err := tx.Create(&profiles).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("store application: %w", err)
	}
	return nil
}
