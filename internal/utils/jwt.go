package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether tokenString is a JWT whose exp claim lies in
// the past. The signature is deliberately not verified: the client only wants
// to avoid sending a request that the server is guaranteed to reject with 401.
//
// Opaque (non-JWT) tokens and tokens without an exp claim are never considered
// expired; the server remains the authority on their validity.
func TokenExpired(tokenString string, now time.Time) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(now)
}
