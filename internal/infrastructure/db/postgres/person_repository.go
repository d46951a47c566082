package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/parkstaff/recruitment-api/internal/core/domain"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) FindByUsername(ctx context.Context, username string) (*domain.Person, error) {
	var pm personModel
	err := r.db.WithContext(ctx).First(&pm, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPersonNotFound
		}
		return nil, fmt.Errorf("find person: %w", err)
	}
	return toDomainPerson(&pm), nil
}

func (r *PersonRepository) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	pm := personModel{
		Name:     person.Name,
		Surname:  person.Surname,
		Pnr:      person.Pnr,
		Email:    person.Email,
		Password: person.PasswordHash,
		RoleID:   int(person.Role),
		Username: person.Username,
	}

	if err := r.db.WithContext(ctx).Create(&pm).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create person: %w", err)
	}
	return toDomainPerson(&pm), nil
}

func toDomainPerson(pm *personModel) *domain.Person {
	return &domain.Person{
		ID:           pm.PersonID,
		Name:         pm.Name,
		Surname:      pm.Surname,
		Pnr:          pm.Pnr,
		Email:        pm.Email,
		PasswordHash: pm.Password,
		Role:         domain.Role(pm.RoleID),
		Username:     pm.Username,
	}
}
