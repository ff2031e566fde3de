package service

import (
	"errors"
	"fmt"
	"time"

	"payment-orchestrator/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// operatorClaims is the JWT body of an operator or scheduler token. Which
// roles may call which route is decided by the HTTP layer.
type operatorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenService issues and checks HS256 operator tokens.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

// Generate signs a token for subject with the given role.
func (s *JWTTokenService) Generate(subject string, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, operatorClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing operator token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate checks signature, issuer and expiry and returns the claims. Only
// HMAC algorithms are accepted.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	var claims operatorClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing operator token: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("operator token has no subject")
	}
	if claims.Role == "" {
		return nil, errors.New("operator token has no role")
	}

	return &ports.TokenClaims{Subject: claims.Subject, Role: claims.Role}, nil
}
