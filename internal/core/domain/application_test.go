package domain

import (
	"errors"
	"testing"

	"github.com/parkstaff/recruitment-api/internal/validation"
)

func validCompetences() []CompetenceProfile {
	return []CompetenceProfile{{CompetenceID: 1, YearsOfExperience: 2.5}}
}

func validAvailabilities() []AvailabilityPeriod {
	return []AvailabilityPeriod{{FromDate: "2024-01-01", ToDate: "2024-01-10"}}
}

func TestNewApplication_Valid(t *testing.T) {
	app, err := NewApplication("alice1", validCompetences(), validAvailabilities())
	if err != nil {
		t.Fatalf("NewApplication returned error: %v", err)
	}
	if app.Username != "alice1" {
		t.Fatalf("unexpected username: %s", app.Username)
	}
}

func TestNewApplication_RejectsInvalidFields(t *testing.T) {
	cases := []struct {
		name           string
		competences    []CompetenceProfile
		availabilities []AvailabilityPeriod
	}{
		{"empty competences", nil, validAvailabilities()},
		{"empty availabilities", validCompetences(), nil},
		{"zero competence id", []CompetenceProfile{{CompetenceID: 0, YearsOfExperience: 1}}, validAvailabilities()},
		{"negative experience", []CompetenceProfile{{CompetenceID: 1, YearsOfExperience: -1}}, validAvailabilities()},
		{"bad from date", validCompetences(), []AvailabilityPeriod{{FromDate: "01/01/2024", ToDate: "2024-01-10"}}},
		{"impossible to date", validCompetences(), []AvailabilityPeriod{{FromDate: "2024-01-01", ToDate: "2024-02-30"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewApplication("alice1", tc.competences, tc.availabilities)
			var ve *validation.Error
			if !errors.As(err, &ve) {
				t.Fatalf("expected *validation.Error, got %v", err)
			}
		})
	}
}

func TestNewApplication_AcceptsReversedRange(t *testing.T) {
	// There is no cross-field from<=to rule; a reversed range is stored as
	// submitted.
	_, err := NewApplication("alice1", validCompetences(),
		[]AvailabilityPeriod{{FromDate: "2024-02-01", ToDate: "2024-01-01"}})
	if err != nil {
		t.Fatalf("reversed range should be accepted: %v", err)
	}
}

func TestNewPerson_RejectsInvalidFields(t *testing.T) {
	if _, err := NewPerson("Alice9", "Smith", "1234567890", "alice@example.com", "alice1", RoleApplicant); err == nil {
		t.Fatalf("numeric name accepted")
	}
	if _, err := NewPerson("Alice", "Smith", "12345", "alice@example.com", "alice1", RoleApplicant); err == nil {
		t.Fatalf("short pnr accepted")
	}
	if _, err := NewPerson("Alice", "Smith", "1234567890", "nope", "alice1", RoleApplicant); err == nil {
		t.Fatalf("bad email accepted")
	}
	if _, err := NewPerson("Alice", "Smith", "1234567890", "alice@example.com", "al", RoleApplicant); err == nil {
		t.Fatalf("short username accepted")
	}
	if _, err := NewPerson("Alice", "Smith", "1234567890", "alice@example.com", "alice1", Role(9)); err == nil {
		t.Fatalf("unknown role accepted")
	}
}

func TestRole(t *testing.T) {
	if RoleRecruiter.String() != "recruiter" || RoleApplicant.String() != "applicant" {
		t.Fatalf("unexpected role names")
	}
	if !RoleRecruiter.Valid() || Role(0).Valid() || Role(3).Valid() {
		t.Fatalf("role validity broken")
	}
}
