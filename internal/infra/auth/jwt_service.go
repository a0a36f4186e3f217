// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"foodies/config"
	"foodies/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte            // Process-wide HMAC secret.
	method     jwt.SigningMethod // Declared signing algorithm.
	accessTTL  time.Duration     // Time-to-live for access tokens.
	refreshTTL time.Duration     // Time-to-live for refresh tokens.
	now        func() time.Time
	parser     *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg.Token, time.Now)
}

func newJWTService(cfg config.TokenConfig, now func() time.Time) (*jwtService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt signing algorithm %q", cfg.Algorithm)
	}

	return &jwtService{
		secret:     []byte(cfg.Secret),
		method:     method,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{method.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithTimeFunc(now),
		),
	}, nil
}

// Issue signs a token of the given kind for subject.
func (s *jwtService) Issue(subject string, kind service.TokenKind, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("token subject must not be empty")
	}

	now := s.now()
	claims := service.Claims{
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign %s token", kind)
	}

	return signed, nil
}

// IssuePair creates a new access token and refresh token for subject.
func (s *jwtService) IssuePair(subject string) (*service.TokenPair, error) {
	accessToken, err := s.Issue(subject, service.TokenKindAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.Issue(subject, service.TokenKindRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// IssueAccess creates a new access token for subject.
func (s *jwtService) IssueAccess(subject string) (string, error) {
	return s.Issue(subject, service.TokenKindAccess, s.accessTTL)
}

// Verify parses tokenString and checks it is a live token of the expected kind.
func (s *jwtService) Verify(tokenString string, expected service.TokenKind) (*service.Claims, error) {
	claims := &service.Claims{}
	if _, err := s.parser.ParseWithClaims(tokenString, claims, s.keyFunc); err != nil {
		return nil, classifyParseError(err)
	}

	if claims.Subject == "" || claims.TokenType == "" || claims.IssuedAt == nil {
		return nil, errors.Wrap(service.ErrTokenMalformed, "required claims are missing")
	}

	if claims.TokenType != expected {
		return nil, errors.Wrapf(service.ErrTokenWrongType, "expected %s token, got %s", expected, claims.TokenType)
	}

	return claims, nil
}

// Digest returns the hex SHA-256 of a token. Only digests of refresh tokens are persisted.
func (s *jwtService) Digest(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func (s *jwtService) keyFunc(*jwt.Token) (any, error) {
	return s.secret, nil
}

// classifyParseError maps jwt parser failures onto the domain verification failures.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Wrap(service.ErrTokenInvalidSignature, err.Error())
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
