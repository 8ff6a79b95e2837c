package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionFromToken decodes a bearer token into a Session. The client does
// not hold the signing secret, so claims are read without signature
// verification; the store remains the authoritative enforcement point on
// every request. An expired or undecodable token yields Anonymous.
func SessionFromToken(tokenString string, now time.Time) Session {
	if tokenString == "" {
		return Anonymous
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return Anonymous
	}

	if exp, ok := claims["exp"].(float64); ok {
		if now.Unix() > int64(exp) {
			return Anonymous
		}
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Anonymous
	}

	role := RoleUser
	if r, ok := claims["role"].(string); ok && r != "" {
		role = Role(r)
	}

	return Session{
		Authenticated: true,
		User:          &User{ID: sub, Role: role},
	}
}
