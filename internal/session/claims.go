package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned by Decode when the token cannot be parsed.
var ErrMalformedToken = errors.New("session: malformed token")

// Role is the role claim embedded in the session token. It decides which
// screen tree the operator lands on after login.
type Role int

const (
	RoleUnknown Role = 0
	RoleCook    Role = 1
	RoleWaiter  Role = 2
	RoleManager Role = 3
)

// String returns a short display name for the role.
func (r Role) String() string {
	switch r {
	case RoleCook:
		return "cook"
	case RoleWaiter:
		return "waiter"
	case RoleManager:
		return "manager"
	default:
		return "unknown"
	}
}

// Valid reports whether the role code is one the client knows how to route.
func (r Role) Valid() bool {
	return r == RoleCook || r == RoleWaiter || r == RoleManager
}

// Claims are the identity claims the backend embeds in the session token.
type Claims struct {
	Subject    string `json:"sub"`
	Issuer     string `json:"iss"`
	UserID     int    `json:"idUsuario"`
	EmployeeID int    `json:"funcionario"`
	Status     int    `json:"statusGeral"`
	Role       Role   `json:"cargo"`
	ExpiresAt  int64  `json:"exp"`
}

// Expired reports whether the token's expiry claim has passed.
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != 0 && now.Unix() >= c.ExpiresAt
}

// Decode extracts the claims from a session token without verifying its
// signature. Verification is the server's job on every subsequent request;
// the client only needs the role and identity claims for navigation.
func Decode(token string) (Claims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Claims{}, ErrMalformedToken
	}

	c := Claims{
		Subject:    stringClaim(claims, "sub"),
		Issuer:     stringClaim(claims, "iss"),
		UserID:     intClaim(claims, "idUsuario"),
		EmployeeID: intClaim(claims, "funcionario"),
		Status:     intClaim(claims, "statusGeral"),
		Role:       Role(intClaim(claims, "cargo")),
		ExpiresAt:  int64(intClaim(claims, "exp")),
	}
	return c, nil
}

func stringClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func intClaim(m jwt.MapClaims, key string) int {
	// encoding/json decodes JWT numbers as float64
	if v, ok := m[key].(float64); ok {
		return int(v)
	}
	return 0
}
