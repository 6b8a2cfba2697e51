package service

import (
	"fmt"
	"time"

	"pdf-tools-server/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// JWTSessionService issues and verifies the signed first-party session cookie
// value. The cookie carries real claims checked locally on every protected
// request, not a bare presence flag.
type JWTSessionService struct {
	secret []byte
	maxAge time.Duration
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewSessionService creates a session service signing with HS256.
func NewSessionService(secret string, maxAgeSeconds int) *JWTSessionService {
	return &JWTSessionService{
		secret: []byte(secret),
		maxAge: time.Duration(maxAgeSeconds) * time.Second,
	}
}

// Issue signs a session token for the verified user.
func (s *JWTSessionService) Issue(user *domain.SupabaseUser) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses a session token, checking signature and expiry.
func (s *JWTSessionService) Verify(tokenStr string) (*domain.Session, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Session{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}
