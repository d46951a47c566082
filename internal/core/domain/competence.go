package domain

// Competence is a reference entity describing one professional competence,
// e.g. ticket sales. Its name may be localized through the competence_name
// table; the default name is used when no translation exists.
type Competence struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
