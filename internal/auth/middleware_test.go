package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"varmepumpe/internal/model"
)

func newTestServer(t *testing.T) (*echo.Echo, *SessionService, *MemorySessionStore) {
	t.Helper()
	sessions := NewSessionService("secret", time.Hour)
	store := NewMemorySessionStore()
	mw := NewMiddleware(sessions, store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	e.Use(mw.LoadSession())
	e.GET("/open", func(c echo.Context) error {
		if p, ok := PrincipalFrom(c); ok {
			return c.String(http.StatusOK, string(p.Role))
		}
		return c.String(http.StatusOK, "anonymous")
	})
	e.GET("/private", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RequireAuth)
	e.GET("/admin", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RequireRole(model.RoleAdmin))
	return e, sessions, store
}

func login(t *testing.T, sessions *SessionService, store SessionStore, role model.Role) *http.Cookie {
	t.Helper()
	sessionID, token, err := sessions.Issue(1)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), sessionID, Session{UserID: 1, Role: role}, time.Hour))
	return &http.Cookie{Name: CookieName, Value: token}
}

func do(e *echo.Echo, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoadSession_Anonymous(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := do(e, "/open", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())

	rec = do(e, "/open", &http.Cookie{Name: CookieName, Value: "garbage"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestLoadSession_ResolvesPrincipal(t *testing.T) {
	e, sessions, store := newTestServer(t)
	cookie := login(t, sessions, store, model.RoleInstaller)

	rec := do(e, "/open", cookie)
	assert.Equal(t, "installer", rec.Body.String())
}

func TestLoadSession_DestroyedSessionIsAnonymous(t *testing.T) {
	e, sessions, store := newTestServer(t)
	sessionID, token, err := sessions.Issue(1)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), sessionID, Session{UserID: 1, Role: model.RoleAdmin}, time.Hour))
	require.NoError(t, store.Delete(context.Background(), sessionID))

	rec := do(e, "/private", &http.Cookie{Name: CookieName, Value: token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	e, sessions, store := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, do(e, "/admin", nil).Code)
	assert.Equal(t, http.StatusForbidden, do(e, "/admin", login(t, sessions, store, model.RoleCustomer)).Code)
	assert.Equal(t, http.StatusOK, do(e, "/admin", login(t, sessions, store, model.RoleAdmin)).Code)
}

type unreachableStore struct {
	MemorySessionStore
}

func (*unreachableStore) Get(context.Context, string) (*Session, error) {
	return nil, errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
}

func TestLoadSession_StoreErrorIsAnonymous(t *testing.T) {
	sessions := NewSessionService("secret", time.Hour)
	mw := NewMiddleware(sessions, &unreachableStore{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	e.Use(mw.LoadSession())
	e.GET("/open", func(c echo.Context) error {
		if _, ok := PrincipalFrom(c); ok {
			return c.String(http.StatusOK, "signed in")
		}
		return c.String(http.StatusOK, "anonymous")
	})
	e.GET("/private", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RequireAuth)

	_, token, err := sessions.Issue(1)
	require.NoError(t, err)
	cookie := &http.Cookie{Name: CookieName, Value: token}

	rec := do(e, "/open", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, do(e, "/private", cookie).Code)
}
