package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/parkstaff/recruitment-api/internal/core/domain"
)

type CompetenceRepository struct {
	db *gorm.DB
}

func NewCompetenceRepository(db *gorm.DB) *CompetenceRepository {
	return &CompetenceRepository{db: db}
}

func (r *CompetenceRepository) ListAll(ctx context.Context) ([]domain.Competence, error) {
	var models []competenceModel
	if err := r.db.WithContext(ctx).Order("competence_id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list competences: %w", err)
	}

	list := make([]domain.Competence, 0, len(models))
	for _, cm := range models {
		list = append(list, domain.Competence{ID: cm.CompetenceID, Name: cm.Name})
	}
	return list, nil
}

func (r *CompetenceRepository) ListByLanguage(ctx context.Context, lang string) ([]domain.Competence, error) {
	var rows []competenceNameModel
	err := r.db.WithContext(ctx).
		Where("language = ?", lang).
		Order("competence_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list competences by language: %w", err)
	}

	list := make([]domain.Competence, 0, len(rows))
	for _, row := range rows {
		list = append(list, domain.Competence{ID: row.CompetenceID, Name: row.Name})
	}
	return list, nil
}
