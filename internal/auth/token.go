package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired reports a well-formed token past its TTL.
	ErrExpired = errors.New("token expired")
	// ErrInvalidToken reports a malformed, tampered, or wrongly signed token.
	ErrInvalidToken = errors.New("invalid token")
)

// Issuer signs and verifies identity tokens with a server-held HS256 secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs the given identity claims. The claims are arbitrary fields
// (at minimum an email); expiry and issue time are added here.
func (i *Issuer) Issue(claims map[string]interface{}) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	now := time.Now()
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(i.ttl).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(i.secret)
}

// Verify checks signature and expiry, returning the embedded claims.
func (i *Issuer) Verify(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
