package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"banglabet-backend/internal/config"
)

// SessionDuration is the lifetime of the session cookie.
const SessionDuration = 7 * 24 * time.Hour

type SessionClaims struct {
	UserID    int64  `json:"user_id"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// SessionService signs and validates the token carried by the session
// cookie. The token alone never authenticates a request: the middleware
// still checks the session registry and the credential store, so logout
// revokes immediately and a deleted user falls back to unauthenticated.
type SessionService struct {
	secret []byte
}

func NewSessionService(cfg *config.Config) *SessionService {
	return &SessionService{secret: []byte(cfg.SessionSecret)}
}

func (s *SessionService) IssueToken(userID int64, sessionID string) (string, error) {
	claims := SessionClaims{
		UserID:    userID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *SessionService) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}
