package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// StateSigner signs and validates the state tokens that accompany a
// temporary credential through an external login round trip.
type StateSigner struct {
	secret []byte
	issuer string
}

// NewStateSigner creates a new signer.
// secret must be at least 32 characters for HS256 security.
func NewStateSigner(secret string, issuer string) *StateSigner {
	return &StateSigner{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// StateClaims is the payload carried by a state token.
type StateClaims struct {
	CredentialID uuid.UUID
	UserID       uuid.UUID
	Purpose      string
}

type stateClaims struct {
	jwt.RegisteredClaims
	Purpose string `json:"purpose,omitempty"`
}

// Sign creates a signed HS256 token. The token id is the credential id and
// the subject is the user id.
func (s *StateSigner) Sign(c StateClaims, issuedAt, expiresAt time.Time) (string, error) {
	claims := stateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        c.CredentialID.String(),
			Subject:   c.UserID.String(),
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
		Purpose: c.Purpose,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Parse validates a state token and returns its claims.
func (s *StateSigner) Parse(tokenString string) (StateClaims, error) {
	if tokenString == "" {
		return StateClaims{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &stateClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return StateClaims{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*stateClaims)
	if !ok || !token.Valid {
		return StateClaims{}, fmt.Errorf("invalid token claims")
	}

	credID, err := uuid.Parse(claims.ID)
	if err != nil {
		return StateClaims{}, fmt.Errorf("invalid token id: %w", err)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return StateClaims{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return StateClaims{CredentialID: credID, UserID: userID, Purpose: claims.Purpose}, nil
}
