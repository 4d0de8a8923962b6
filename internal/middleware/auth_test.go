package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"members-service/internal/session"
	"members-service/internal/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(store session.Store, ttl time.Duration, sliding bool) *gin.Engine {
	mw := NewAuthMiddleware(
		store,
		session.CookieOptions{SameSite: http.SameSiteLaxMode},
		ttl,
		sliding,
	)

	r := gin.New()

	members := r.Group("/")
	members.Use(mw.RequireSession())
	members.GET("/members", func(c *gin.Context) {
		sess, ok := SessionFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": sess.User})
	})

	admin := r.Group("/")
	admin.Use(mw.RequireSession(), mw.RequireRole(user.RoleAdmin))
	admin.GET("/admin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func seedSession(t *testing.T, store session.Store, role user.Role, expiresAt time.Time) session.Session {
	t.Helper()

	id, err := session.GenerateID()
	require.NoError(t, err)

	sess := session.Session{
		ID: id,
		User: session.Identity{
			UserID: "u1",
			Name:   "Alice",
			Email:  "alice@x.com",
			Role:   role,
		},
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
	require.NoError(t, store.Create(context.Background(), sess))
	return sess
}

func doRequest(r *gin.Engine, path, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSession_NoCookieRedirectsToLogin(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store, time.Hour, false)

	w := doRequest(r, "/members", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSession_UnknownSessionRedirectsToLogin(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store, time.Hour, false)

	w := doRequest(r, "/members", "no-such-session")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSession_ValidSessionPasses(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store, time.Hour, false)

	sess := seedSession(t, store, user.RoleUser, time.Now().Add(time.Hour))

	w := doRequest(r, "/members", sess.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@x.com")
}

func TestRequireSession_ExpiredSessionRedirectsAndEvicts(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store, time.Hour, false)

	sess := seedSession(t, store, user.RoleUser, time.Now().Add(-time.Minute))

	w := doRequest(r, "/members", sess.ID)
	assert.Equal(t, http.StatusFound, w.Code)

	got, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// every later attempt with the same id keeps denying
	w = doRequest(r, "/members", sess.ID)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestRequireRole_WrongRoleIsForbiddenNotRedirected(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store, time.Hour, false)

	sess := seedSession(t, store, user.RoleUser, time.Now().Add(time.Hour))

	w := doRequest(r, "/admin", sess.ID)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store, time.Hour, false)

	sess := seedSession(t, store, user.RoleAdmin, time.Now().Add(time.Hour))

	w := doRequest(r, "/admin", sess.ID)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSession_SlidingRenewal(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store, time.Hour, true)

	shortExpiry := time.Now().Add(10 * time.Minute)
	sess := seedSession(t, store, user.RoleUser, shortExpiry)

	w := doRequest(r, "/members", sess.ID)
	require.Equal(t, http.StatusOK, w.Code)

	renewed, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	require.NotNil(t, renewed)
	assert.True(t, renewed.ExpiresAt.After(shortExpiry), "expiry must slide forward")

	// the renewed cookie accompanies the response
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sess.ID, cookies[0].Value)
}
