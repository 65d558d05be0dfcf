package auth

import (
	"log/slog"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/model"
)

const (
	tokenContextKey     = "session_token"
	principalContextKey = "principal"
	sessionIDContextKey = "session_id"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID uint
	Role   model.Role
}

// PrincipalFrom returns the caller attached by LoadSession.
func PrincipalFrom(c echo.Context) (*Principal, bool) {
	p, ok := c.Get(principalContextKey).(*Principal)
	return p, ok && p != nil
}

// SessionIDFrom returns the session id of the current request, if any.
func SessionIDFrom(c echo.Context) string {
	id, _ := c.Get(sessionIDContextKey).(string)
	return id
}

// Middleware resolves session cookies into principals and gates routes by role.
type Middleware struct {
	sessions *SessionService
	store    SessionStore
	logger   *slog.Logger
}

// NewMiddleware creates the session middleware set. A nil logger uses slog.Default.
func NewMiddleware(sessions *SessionService, store SessionStore, logger *slog.Logger) *Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &Middleware{sessions: sessions, store: store, logger: logger}
}

// LoadSession validates the session cookie when present and attaches the principal.
// Requests without a valid session continue anonymously.
func (m *Middleware) LoadSession() echo.MiddlewareFunc {
	parse := echojwt.WithConfig(echojwt.Config{
		SigningKey:             m.sessions.SigningKey(),
		TokenLookup:            "cookie:" + CookieName,
		ContextKey:             tokenContextKey,
		NewClaimsFunc:          m.sessions.NewClaims,
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return parse(func(c echo.Context) error {
			token, ok := c.Get(tokenContextKey).(*jwt.Token)
			if !ok {
				return next(c)
			}
			sessionID, err := sessionIDFromToken(token)
			if err != nil {
				return next(c)
			}
			session, err := m.store.Get(c.Request().Context(), sessionID)
			if err != nil {
				// an unreachable store degrades to anonymous; guarded routes still answer 401
				m.logger.Warn("session lookup failed", "error", err)
				return next(c)
			}
			if session != nil {
				c.Set(sessionIDContextKey, sessionID)
				c.Set(principalContextKey, &Principal{UserID: session.UserID, Role: session.Role})
			}
			return next(c)
		})
	}
}

// RequireAuth rejects requests without a session.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := PrincipalFrom(c); !ok {
			return deny(apperrors.ErrUnauthorized)
		}
		return next(c)
	}
}

// RequireRole rejects requests whose principal has none of roles.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return deny(apperrors.ErrUnauthorized)
			}
			for _, role := range roles {
				if p.Role == role {
					return next(c)
				}
			}
			return deny(apperrors.ErrForbidden)
		}
	}
}

// SetCookie writes the session cookie.
func SetCookie(c echo.Context, token string, maxAge int, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(c echo.Context, secure bool) {
	SetCookie(c, "", -1, secure)
}

func deny(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
