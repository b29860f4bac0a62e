package utils

import (
	"errors"
	"strconv"
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidSession is returned for tokens that fail signature, expiry or claim checks
var ErrInvalidSession = errors.New("invalid session token")

// SessionClaims is what a signed session token carries
type SessionClaims struct {
	UserID               uint   `json:"user_id"`  // Authenticated user
	Username             string `json:"username"` // Shown in page headers without a lookup
	jwt.RegisteredClaims        // Standard JWT claims
}

// SessionSigner issues and verifies session tokens with one HMAC secret
type SessionSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionSigner creates a signer whose tokens live for ttl
func NewSessionSigner(secret string, ttl time.Duration) *SessionSigner {
	return &SessionSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is the lifetime of issued tokens
func (s *SessionSigner) TTL() time.Duration { return s.ttl }

// Issue creates a session token for a given user
func (s *SessionSigner) Issue(userID uint, username string) (string, error) {
	now := s.now()
	claims := SessionClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString(s.secret)                        // Sign the token with the secret
}

// Parse validates a session token string and returns its claims
func (s *SessionSigner) Parse(tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		return s.secret, nil // Return the secret key for validation
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidSession, err)
	}
	// Validate token and extract claims
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
