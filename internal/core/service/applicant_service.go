package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/parkstaff/recruitment-api/internal/core/domain"
	"github.com/parkstaff/recruitment-api/internal/core/ports"
)

// ApplicantService implements the applicant-facing operations: the localized
// competence listing and application submission.
type ApplicantService struct {
	competences  ports.CompetenceRepository
	applications ports.ApplicationRepository
	persons      ports.PersonRepository
	cache        ports.CompetenceCache
	logger       zerolog.Logger
}

// NewApplicantService wires the applicant service. cache may be nil, in which
// case every listing goes straight to the repository.
func NewApplicantService(
	competences ports.CompetenceRepository,
	applications ports.ApplicationRepository,
	persons ports.PersonRepository,
	cache ports.CompetenceCache,
	logger zerolog.Logger,
) *ApplicantService {
	return &ApplicantService{
		competences:  competences,
		applications: applications,
		persons:      persons,
		cache:        cache,
		logger:       logger,
	}
}

// ListCompetences returns the competence list for lang, read through the
// cache. Untranslated languages fall back to the default competence names. A
// cache failure is logged and bypassed, never surfaced to the client.
func (s *ApplicantService) ListCompetences(ctx context.Context, lang string) ([]domain.Competence, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, lang)
		if err != nil {
			s.logger.Warn().Err(err).Str("lang", lang).Msg("competence cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	list, err := s.competences.ListByLanguage(ctx, lang)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		list, err = s.competences.ListAll(ctx)
		if err != nil {
			return nil, err
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, lang, list); err != nil {
			s.logger.Warn().Err(err).Str("lang", lang).Msg("competence cache write failed")
		}
	}
	return list, nil
}

// SubmitApplication resolves the owning person and persists the application
// rows with explicit foreign keys in one transaction.
func (s *ApplicantService) SubmitApplication(ctx context.Context, username string, app *domain.Application) error {
	person, err := s.persons.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := s.applications.Create(ctx, person.ID, app); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to store application")
		return err
	}

	s.logger.Info().
		Str("username", username).
		Int("competences", len(app.Competences)).
		Int("availabilities", len(app.Availabilities)).
		Msg("application submitted")
	return nil
}
