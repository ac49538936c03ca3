package service

import "github.com/golang-jwt/jwt/v5"

// TokenService defines the interface for issuing and validating the admin
// access token. Token issuance lives entirely in the delivery layer; the
// employee service itself never sees tokens.
type TokenService interface {
	// GenerateToken creates a signed access token for the given employee id.
	GenerateToken(employeeID int64) (string, error)

	// ValidateToken checks a token string and returns the parsed token.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
