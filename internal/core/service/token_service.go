package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/parkstaff/recruitment-api/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// TokenService signs and verifies the HS256 session tokens carried by the
// auth cookie. The signing secret and TTL are injected at construction; there
// is no ambient configuration.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(username string, role domain.Role) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     int(role),
		"exp":      time.Now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *TokenService) Verify(raw string) (*domain.Claim, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	username, _ := claims["username"].(string)
	roleNum, _ := claims["role"].(float64) // JSON numbers decode as float64
	role := domain.Role(int(roleNum))
	if username == "" || !role.Valid() {
		return nil, domain.ErrTokenInvalid
	}
	return &domain.Claim{Username: username, Role: role}, nil
}
