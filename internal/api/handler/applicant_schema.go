package handler

// --- Request / Response types ---

type competenceEntryRequest struct {
	ID         int     `json:"id"         validate:"required,gte=1"`
	Experience float64 `json:"experience" validate:"gte=0"`
}

type availabilityRequest struct {
	From string `json:"from" validate:"required,dateonly"`
	To   string `json:"to"   validate:"required,dateonly"`
}

type applyRequest struct {
	Competences    []competenceEntryRequest `json:"competences"    validate:"required,min=1,dive"`
	Availabilities []availabilityRequest    `json:"availabilities" validate:"required,min=1,dive"`
}

type competenceResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type competenceListResponse struct {
	Competences []competenceResponse `json:"competences"`
}

type resultResponse struct {
	Result string `json:"result"`
}
