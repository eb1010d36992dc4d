package sharelink

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Quote share links let a client view and approve a sent quote without an
// account. The token is an HS256-signed claim on the event id; possession of
// the link is the authorization.

const tokenTTL = 30 * 24 * time.Hour

// Issuer signs and resolves share tokens for sent quotes.
type Issuer struct {
	secret  string
	baseURL string
}

// NewIssuer creates an Issuer. baseURL is the public front-end origin the
// quote page is served from.
func NewIssuer(secret, baseURL string) *Issuer {
	return &Issuer{secret: secret, baseURL: strings.TrimRight(baseURL, "/")}
}

// Link returns the shareable quote URL for an event.
func (i *Issuer) Link(eventID string) (string, error) {
	token, err := i.sign(eventID)
	if err != nil {
		return "", err
	}
	return i.baseURL + "/p/" + token, nil
}

// EventID validates a share token and returns the event id it grants access to.
func (i *Issuer) EventID(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(i.secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid share token")
	}
	return claims.Subject, nil
}

func (i *Issuer) sign(eventID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   eventID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(i.secret))
}
