package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vinyl/config"
	"vinyl/internal/delivery/http/cookie"
	"vinyl/internal/domain/entity"
	"vinyl/internal/domain/repository"
	mockRepo "vinyl/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestGuard(t *testing.T) (*SessionGuard, *mockRepo.MockSessionStore) {
	store := mockRepo.NewMockSessionStore(t)
	guard := NewSessionGuard(store, &config.Config{Session: &config.SessionConfig{}}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return guard, store
}

func newGuardContext(method, userAgent, ip, sessionID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/me", nil)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(echo.HeaderXRealIP, ip)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: sessionID})
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func boundSession(userID uuid.UUID) *entity.Session {
	return &entity.Session{
		ID:        "opaque-session-id",
		UserID:    userID,
		Username:  "melomane",
		UserAgent: "Mozilla/5.0",
		IPAddress: "203.0.113.7",
		CSRFToken: "csrf-token",
	}
}

func TestSessionGuard_ValidSessionPasses(t *testing.T) {
	guard, store := newTestGuard(t)
	userID := uuid.New()
	session := boundSession(userID)

	store.EXPECT().Get(mock.Anything, session.ID).Return(session, nil)
	store.EXPECT().Touch(mock.Anything, session).Return(nil)

	c, _ := newGuardContext(http.MethodGet, "Mozilla/5.0", "203.0.113.7", session.ID)

	nextCalled := false
	err := guard.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, userID, c.Get(KeyUserID))
	assert.Equal(t, "melomane", c.Get(KeyUsername))
}

func TestSessionGuard_MissingCookie(t *testing.T) {
	guard, _ := newTestGuard(t)

	c, rec := newGuardContext(http.MethodGet, "Mozilla/5.0", "203.0.113.7", "")

	err := guard.Authenticate(func(c echo.Context) error {
		t.Fatal("next should not run")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionGuard_UserAgentMismatchDestroysSession(t *testing.T) {
	guard, store := newTestGuard(t)
	session := boundSession(uuid.New())

	store.EXPECT().Get(mock.Anything, session.ID).Return(session, nil)
	store.EXPECT().Delete(mock.Anything, session.ID).Return(nil)

	c, rec := newGuardContext(http.MethodGet, "curl/8.5.0", "203.0.113.7", session.ID)

	err := guard.Authenticate(func(c echo.Context) error {
		t.Fatal("next should not run")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login?hijacked=true", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionGuard_IPMismatchDestroysSession(t *testing.T) {
	guard, store := newTestGuard(t)
	session := boundSession(uuid.New())

	store.EXPECT().Get(mock.Anything, session.ID).Return(session, nil)
	store.EXPECT().Delete(mock.Anything, session.ID).Return(nil)

	c, rec := newGuardContext(http.MethodGet, "Mozilla/5.0", "198.51.100.99", session.ID)

	err := guard.Authenticate(func(c echo.Context) error {
		t.Fatal("next should not run")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login?hijacked=true", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionGuard_UnsafeMethodRequiresCSRFToken(t *testing.T) {
	guard, store := newTestGuard(t)
	session := boundSession(uuid.New())

	store.EXPECT().Get(mock.Anything, session.ID).Return(session, nil)

	c, rec := newGuardContext(http.MethodDelete, "Mozilla/5.0", "203.0.113.7", session.ID)

	err := guard.Authenticate(func(c echo.Context) error {
		t.Fatal("next should not run")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSessionGuard_UnsafeMethodWithCSRFTokenPasses(t *testing.T) {
	guard, store := newTestGuard(t)
	session := boundSession(uuid.New())

	store.EXPECT().Get(mock.Anything, session.ID).Return(session, nil)
	store.EXPECT().Touch(mock.Anything, session).Return(nil)

	c, _ := newGuardContext(http.MethodDelete, "Mozilla/5.0", "203.0.113.7", session.ID)
	c.Request().Header.Set(HeaderCSRFToken, session.CSRFToken)

	nextCalled := false
	err := guard.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestSessionGuard_ExpiredSessionClearsCookie(t *testing.T) {
	guard, store := newTestGuard(t)

	store.EXPECT().Get(mock.Anything, "gone-session").Return(nil, repository.ErrSessionNotFound)

	c, rec := newGuardContext(http.MethodGet, "Mozilla/5.0", "203.0.113.7", "gone-session")

	err := guard.Authenticate(func(c echo.Context) error {
		t.Fatal("next should not run")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, cookie.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}

func TestSessionGuard_UnboundSessionSkipsClientCheck(t *testing.T) {
	guard, store := newTestGuard(t)
	session := &entity.Session{
		ID:        "legacy-session-id",
		UserID:    uuid.New(),
		Username:  "oldtimer",
		CSRFToken: "csrf-token",
	}

	store.EXPECT().Get(mock.Anything, session.ID).Return(session, nil)
	store.EXPECT().Touch(mock.Anything, session).Return(nil)

	c, _ := newGuardContext(http.MethodGet, "curl/8.5.0", "198.51.100.99", session.ID)

	nextCalled := false
	err := guard.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestSessionGuard_ScreenDestroysHijackedSessionOnPublicRoute(t *testing.T) {
	guard, store := newTestGuard(t)
	session := boundSession(uuid.New())

	store.EXPECT().Get(mock.Anything, session.ID).Return(session, nil)
	store.EXPECT().Delete(mock.Anything, session.ID).Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/albums", nil)
	req.Header.Set("User-Agent", "curl/8.5.0")
	req.Header.Set(echo.HeaderXRealIP, session.IPAddress)
	req.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: session.ID})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := guard.Screen(func(c echo.Context) error {
		t.Fatal("handler must not run for a hijacked session")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login?hijacked=true", rec.Header().Get(echo.HeaderLocation))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookie.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}

func TestSessionGuard_ScreenPassesAnonymousRequests(t *testing.T) {
	guard, _ := newTestGuard(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/albums", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	err := guard.Screen(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestSessionGuard_ScreenPassesMatchingSession(t *testing.T) {
	guard, store := newTestGuard(t)
	session := boundSession(uuid.New())

	store.EXPECT().Get(mock.Anything, session.ID).Return(session, nil)

	c, _ := newGuardContext(http.MethodGet, session.UserAgent, session.IPAddress, session.ID)

	nextCalled := false
	err := guard.Screen(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}
