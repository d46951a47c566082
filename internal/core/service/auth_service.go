package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/parkstaff/recruitment-api/internal/core/domain"
	"github.com/parkstaff/recruitment-api/internal/core/ports"
)

// AuthService implements sign-up and sign-in against the person store.
type AuthService struct {
	persons    ports.PersonRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(persons ports.PersonRepository, bcryptCost int, logger zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{persons: persons, bcryptCost: bcryptCost, logger: logger}
}

// SignUp registers a new applicant. The availability check and the insert are
// two separate store operations; a concurrent sign-up racing past the check is
// caught by the unique index on username, which the repository reports as
// domain.ErrUsernameTaken.
func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.Person, error) {
	_, err := s.persons.FindByUsername(ctx, input.Username)
	if err == nil {
		return nil, domain.ErrUsernameTaken
	}
	if !errors.Is(err, domain.ErrPersonNotFound) {
		return nil, err
	}

	person, err := domain.NewPerson(input.Name, input.Surname, input.Pnr, input.Email, input.Username, domain.RoleApplicant)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	person.PasswordHash = string(hash)

	created, err := s.persons.Create(ctx, person)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("person registered")
	return created, nil
}

// SignIn verifies the credentials. Unknown usernames and wrong passwords both
// yield domain.ErrWrongCredentials so the response leaks neither.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*domain.Person, error) {
	person, err := s.persons.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrPersonNotFound) {
			return nil, domain.ErrWrongCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrWrongCredentials
	}
	return person, nil
}
