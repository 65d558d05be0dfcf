package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CookieName is the name of the session cookie.
const CookieName = "sessionId"

// SessionClaims is the signed payload of the session cookie.
// The token ID is the server-side session id; the user and role live in the SessionStore.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionService issues and validates signed session tokens.
type SessionService struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionService creates a new session service with the given secret and lifetime.
func NewSessionService(secret string, ttl time.Duration) *SessionService {
	return &SessionService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// SigningKey returns the HMAC key used for session tokens.
func (s *SessionService) SigningKey() []byte {
	return s.secret
}

// NewClaims returns an empty claims value for token parsing.
func (s *SessionService) NewClaims(echo.Context) jwt.Claims {
	return new(SessionClaims)
}

// Issue creates a new session id and the signed token carrying it.
func (s *SessionService) Issue(userID uint) (sessionID string, token string, err error) {
	sessionID = uuid.New().String()
	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	return sessionID, token, err
}

// Parse validates a session token and returns its session id.
func (s *SessionService) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	return sessionIDFromToken(token)
}

func sessionIDFromToken(token *jwt.Token) (string, error) {
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.ID == "" {
		return "", errors.New("session id not found")
	}
	return claims.ID, nil
}
