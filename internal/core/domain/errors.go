package domain

import "errors"

// Sentinel errors for the recruitment domain. The HTTP layer maps these to
// status codes in one place; everything unrecognized becomes a 500 with the
// detail suppressed from the client.
var (
	ErrPersonNotFound   = errors.New("person not found")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrWrongCredentials = errors.New("wrong username or password")
	ErrTokenExpired     = errors.New("auth token expired")
	ErrTokenInvalid     = errors.New("auth token invalid")
)
