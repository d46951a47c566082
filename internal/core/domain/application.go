package domain

import "github.com/parkstaff/recruitment-api/internal/validation"

// CompetenceProfile is one competence entry of an application: a competence
// reference plus the applicant's experience in years.
type CompetenceProfile struct {
	CompetenceID      int
	YearsOfExperience float64
}

// AvailabilityPeriod is one period an applicant is available for work. Dates
// are calendar dates on format YYYY-MM-DD.
type AvailabilityPeriod struct {
	FromDate string
	ToDate   string
}

// Application is a person's job application: the competence profiles and the
// availability periods submitted together. Applications are created wholesale
// and never edited afterwards.
type Application struct {
	Username       string
	Competences    []CompetenceProfile
	Availabilities []AvailabilityPeriod
}

// NewApplication constructs an Application, re-running the field checks so
// invalid data cannot be constructed even when the API-layer checks were
// bypassed. There is no cross-field check that FromDate precedes ToDate; the
// stored range mirrors what the applicant submitted.
func NewApplication(username string, competences []CompetenceProfile, availabilities []AvailabilityPeriod) (*Application, error) {
	if err := validation.AlphaNumeric(username, "username"); err != nil {
		return nil, err
	}
	if len(competences) == 0 {
		return nil, &validation.Error{Field: "competences", Rule: "required"}
	}
	if len(availabilities) == 0 {
		return nil, &validation.Error{Field: "availabilities", Rule: "required"}
	}
	for _, cp := range competences {
		if err := validation.ID(cp.CompetenceID, "competence id"); err != nil {
			return nil, err
		}
		if err := validation.Experience(cp.YearsOfExperience, "experience"); err != nil {
			return nil, err
		}
	}
	for _, av := range availabilities {
		if err := validation.DateString(av.FromDate, "from"); err != nil {
			return nil, err
		}
		if err := validation.DateString(av.ToDate, "to"); err != nil {
			return nil, err
		}
	}
	return &Application{
		Username:       username,
		Competences:    competences,
		Availabilities: availabilities,
	}, nil
}
