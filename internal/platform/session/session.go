// Package session manages the admin's browser session.
//
// The dashboard keeps no server-side state: the backend-issued bearer token
// is wrapped in a signed HS256 JWT and stored in an HTTP-only cookie. The
// token itself stays opaque; the signature only makes the cookie
// tamper-evident.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the name of the session cookie.
const CookieName = "trade_admin_session"

// ContextToken is the gin context key holding the backend bearer token.
const ContextToken = "backendToken"

var (
	// ErrNoSession is returned when the request carries no session cookie.
	ErrNoSession = errors.New("no session")

	// ErrInvalidSession is returned when the session cookie is expired,
	// tampered with, or otherwise unparsable.
	ErrInvalidSession = errors.New("invalid session")
)

// Manager issues, reads and clears session cookies.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a Manager with the provided signing secret and cookie
// lifetime.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue wraps the backend token in a signed cookie on the response.
func (m *Manager) Issue(c *gin.Context, backendToken string) error {
	claims := jwt.MapClaims{
		"tok": backendToken,
		"exp": time.Now().Add(m.ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}
	c.SetCookie(CookieName, signed, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Token extracts and verifies the backend token from the request cookie.
func (m *Manager) Token(c *gin.Context) (string, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return "", ErrNoSession
	}
	token, err := jwt.Parse(cookie, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidSession
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidSession
	}
	tok, ok := claims["tok"].(string)
	if !ok || tok == "" {
		return "", ErrInvalidSession
	}
	return tok, nil
}

// Clear expires the session cookie on the response.
func (m *Manager) Clear(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
