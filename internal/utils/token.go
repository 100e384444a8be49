package utils // package utils provides helper functions for token creation and hashing

import (
    "time" // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AdminRole is the role claim carried by dashboard tokens.  The service
// has exactly one privileged role; visitor sessions carry no token at all.
const AdminRole = "ADMIN"

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  The token is handed to the browser as the
// admin_token cookie and presented back on every dashboard request.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewAdminToken builds and signs an HS256 JWT for the dashboard admin.
// It takes the signing secret, the admin's email and a TTL in minutes,
// and returns an AccessToken with the signed token and its expiration.
// The JWT includes standard claims: subject (sub), role, expiration
// (exp) and issued at (iat).
func NewAdminToken(secret, email string, ttlMin int) (AccessToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sub":  email,
        "role": AdminRole,
        "exp":  exp.Unix(),
        "iat":  time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}
