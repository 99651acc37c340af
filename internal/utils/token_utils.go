package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ActorClaims are the claims the API trusts: the subject is the actor ID and
// Role names the capability the identity provider granted.
type ActorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateActorToken generates a new HS256 JWT for an actor and role.
func GenerateActorToken(actorID string, role string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := ActorClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actorID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateActorToken parses a JWT token string, validates its signature and standard claims.
// When issuer is non-empty the token's iss claim must match it.
func ParseAndValidateActorToken(tokenString string, secretKey string, issuer string) (*ActorClaims, error) {
	claims := &ActorClaims{}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	}, opts...)

	if err != nil {
		return nil, err // This will include errors like token expired, signature invalid, etc.
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
