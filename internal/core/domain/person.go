package domain

import "github.com/parkstaff/recruitment-api/internal/validation"

// Role is the closed set of roles a person can hold. The numeric values are
// the role_id column of the role table and are carried verbatim inside the
// session token.
type Role int

const (
	RoleRecruiter Role = 1
	RoleApplicant Role = 2
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleRecruiter || r == RoleApplicant
}

func (r Role) String() string {
	switch r {
	case RoleRecruiter:
		return "recruiter"
	case RoleApplicant:
		return "applicant"
	default:
		return "unknown"
	}
}

// Person models a registered identity: an applicant or a recruiter.
type Person struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Pnr          string `json:"pnr"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Username     string `json:"username"`
}

// NewPerson constructs a Person and re-runs the field checks the API layer
// already performed, so an invalid person cannot be built by a caller that
// skipped them. The password hash is set separately by the auth service.
func NewPerson(name, surname, pnr, email, username string, role Role) (*Person, error) {
	if err := validation.Alpha(name, "name"); err != nil {
		return nil, err
	}
	if err := validation.Alpha(surname, "surname"); err != nil {
		return nil, err
	}
	if err := validation.NotEmpty(pnr, "pnr"); err != nil {
		return nil, err
	}
	if err := validation.LengthBetween(pnr, 10, 10, "pnr"); err != nil {
		return nil, err
	}
	if err := validation.Email(email, "email"); err != nil {
		return nil, err
	}
	if err := validation.AlphaNumeric(username, "username"); err != nil {
		return nil, err
	}
	if err := validation.LengthBetween(username, 5, 30, "username"); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, &validation.Error{Field: "role", Rule: "oneof"}
	}
	return &Person{
		Name:     name,
		Surname:  surname,
		Pnr:      pnr,
		Email:    email,
		Role:     role,
		Username: username,
	}, nil
}

// Claim is the decoded payload of a verified session token.
type Claim struct {
	Username string
	Role     Role
}
