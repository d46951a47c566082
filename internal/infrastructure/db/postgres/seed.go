package postgres

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed inserts the reference data the application expects: the two roles, the
// competences and their translations. Existing rows are left untouched, so
// Seed is safe to run on every startup.
func Seed(db *gorm.DB) error {
	roles := []roleModel{
		{RoleID: 1, Name: "recruiter"},
		{RoleID: 2, Name: "applicant"},
	}

	competences := []competenceModel{
		{CompetenceID: 1, Name: "ticket sales"},
		{CompetenceID: 2, Name: "lotteries"},
		{CompetenceID: 3, Name: "roller coaster operation"},
	}

	names := []competenceNameModel{
		{CompetenceID: 1, Language: "en", Name: "ticket sales"},
		{CompetenceID: 2, Language: "en", Name: "lotteries"},
		{CompetenceID: 3, Language: "en", Name: "roller coaster operation"},
		{CompetenceID: 1, Language: "sv", Name: "biljettförsäljning"},
		{CompetenceID: 2, Language: "sv", Name: "lotterier"},
		{CompetenceID: 3, Language: "sv", Name: "berg- och dalbanedrift"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error; err != nil {
			return fmt.Errorf("seed roles: %w", err)
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&competences).Error; err != nil {
			return fmt.Errorf("seed competences: %w", err)
		}
		for _, name := range names {
			err := tx.Where(competenceNameModel{CompetenceID: name.CompetenceID, Language: name.Language}).
				Attrs(competenceNameModel{Name: name.Name}).
				FirstOrCreate(&competenceNameModel{}).Error
			if err != nil {
				return fmt.Errorf("seed competence names: %w", err)
			}
		}
		return nil
	})
}
