package jwt

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUndecodableCredential = errors.New("credential could not be decoded")

// GoogleClaims is the subset of a Google Identity Services ID token payload
// the storefront reads.
type GoogleClaims struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Picture       string `json:"picture"`
	jwt.RegisteredClaims
}

// DecodeGoogleCredential reads the payload without checking the signature,
// issuer, audience or expiry. Callers must not treat the result as proof of
// identity.
func DecodeGoogleCredential(credential string) (*GoogleClaims, error) {
	if credential == "" {
		return nil, ErrUndecodableCredential
	}
	claims := &GoogleClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, claims); err != nil {
		return nil, errors.Join(ErrUndecodableCredential, err)
	}
	return claims, nil
}
