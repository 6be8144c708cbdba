// Package token issues and verifies the two bearer-token kinds the service
// uses: session tokens presented on authenticated requests, and activation
// tokens embedded in account-activation links. The two kinds are signed with
// independent secrets so an activation link can never pass as a session.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"legal-assistant/internal/data/entity"
)

// SessionClaims identify a logged-in user.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ActivationClaims identify a pending user allowed to set a password.
type ActivationClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 tokens under a single secret.
type Issuer struct {
	secret []byte
	expiry time.Duration
}

func NewIssuer(secret string, expiry time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), expiry: expiry}
}

// IssueSession signs a session token carrying the username as subject and
// the role as a custom claim.
func (i *Issuer) IssueSession(username string, role entity.UserRole) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// VerifySession parses and validates a session token.
func (i *Issuer) VerifySession(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	t, err := jwt.ParseWithClaims(tokenStr, claims, i.keyFunc)
	if err != nil || !t.Valid {
		return nil, entity.ErrInvalidToken
	}
	if claims.Subject == "" || !entity.ValidRole(entity.UserRole(claims.Role)) {
		return nil, entity.ErrInvalidToken
	}

	return claims, nil
}

// IssueActivation signs an activation token for a pending user.
func (i *Issuer) IssueActivation(email string, role entity.UserRole) (string, error) {
	now := time.Now()
	claims := ActivationClaims{
		Email: email,
		Role:  string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// VerifyActivation parses and validates an activation token.
func (i *Issuer) VerifyActivation(tokenStr string) (*ActivationClaims, error) {
	claims := &ActivationClaims{}

	t, err := jwt.ParseWithClaims(tokenStr, claims, i.keyFunc)
	if err != nil || !t.Valid {
		return nil, entity.ErrInvalidToken
	}
	if claims.Email == "" || !entity.ValidRole(entity.UserRole(claims.Role)) {
		return nil, entity.ErrInvalidToken
	}

	return claims, nil
}

func (i *Issuer) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, entity.ErrInvalidToken
	}
	return i.secret, nil
}
