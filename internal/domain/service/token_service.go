package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes access tokens from refresh tokens.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Verification failures. Callers at the HTTP boundary collapse them into a
// single unauthenticated outcome.
var (
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenWrongType        = errors.New("token type does not match")
	ErrTokenMalformed        = errors.New("token is malformed")
)

// Claims is the fixed claim set carried by every token.
type Claims struct {
	TokenType TokenKind `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is the result of a login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService issues and verifies signed, expiring tokens.
type TokenService interface {
	// Issue signs a token of the given kind for subject, valid for ttl from now.
	Issue(subject string, kind TokenKind, ttl time.Duration) (string, error)

	// IssuePair issues an access and a refresh token with the configured lifetimes.
	IssuePair(subject string) (*TokenPair, error)

	// IssueAccess issues an access token with the configured lifetime.
	IssueAccess(subject string) (string, error)

	// Verify checks signature, expiry and kind and returns the claims.
	Verify(tokenString string, expected TokenKind) (*Claims, error)

	// Digest returns the value persisted for a refresh token.
	Digest(token string) string
}
