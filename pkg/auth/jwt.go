package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(capabilityID, kind string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("alpha-points-dev-secret")

// SetSecret replaces the signing key; called once from app wiring with the
// configured value.
func SetSecret(secret string) {
	if secret != "" {
		secretKey = []byte(secret)
	}
}

// Claims binds a bearer token to one capability row. The token proves the
// holder presented the capability secret; the row still existing at request
// time is checked separately, so revocation wins over an unexpired token.
type Claims struct {
	CapabilityID string `json:"capability_id"`
	Kind         string `json:"kind"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(capabilityID, kind string, expirationTime time.Time) (string, error) {
	claims := Claims{
		CapabilityID: capabilityID,
		Kind:         kind,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "alphapoints",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.CapabilityID == "" || claims.Issuer != "alphapoints" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
