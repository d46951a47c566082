package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type signUpRequest struct {
	Name     string `json:"name"     validate:"required,alpha,min=2,max=30"`
	Surname  string `json:"surname"  validate:"required,alpha,min=2,max=30"`
	Pnr      string `json:"pnr"      validate:"required,numeric,len=10"`
	Email    string `json:"email"    validate:"required,min=5,max=50,email"`
	Password string `json:"password" validate:"required,min=5,containsdigit"`
	Username string `json:"username" validate:"required,alphanum,min=5,max=30"`
}

type signInRequest struct {
	Username string `json:"username" validate:"required,alphanum"`
	Password string `json:"password" validate:"required"`
}

// personResponse echoes the public profile fields; the national id, email and
// password hash never leave the server.
type personResponse struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
}

type signUpResponse struct {
	Result string         `json:"result"`
	Person personResponse `json:"person"`
}

type signInResponse struct {
	Result string         `json:"result"`
	Person personResponse `json:"person"`
	Role   string         `json:"role"`
}
