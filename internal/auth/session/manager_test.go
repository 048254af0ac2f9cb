package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reclaimhq/reclaim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(cookie *http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		c.Request.AddCookie(cookie)
	}
	return c, recorder
}

func TestNewManagerCookieName(t *testing.T) {
	assert.Equal(t, DefaultCookieName, NewManager(config.Config{}).CookieName())
	assert.Equal(t, "reclaim_session", NewManager(config.Config{SessionCookieName: "reclaim_session"}).CookieName())
}

func TestReadTokenMissingOrBlank(t *testing.T) {
	m := NewManager(config.Config{})

	c, _ := newTestContext(nil)
	_, ok := m.ReadToken(c)
	assert.False(t, ok)

	c, _ = newTestContext(&http.Cookie{Name: DefaultCookieName, Value: "   "})
	_, ok = m.ReadToken(c)
	assert.False(t, ok)
}

func TestReadTokenHonorsConfiguredName(t *testing.T) {
	m := NewManager(config.Config{SessionCookieName: "reclaim_session"})
	c, _ := newTestContext(&http.Cookie{Name: "reclaim_session", Value: "tok"})

	token, ok := m.ReadToken(c)

	require.True(t, ok)
	assert.Equal(t, "tok", token)
}

func TestSetWritesHardenedCookie(t *testing.T) {
	m := NewManager(config.Config{})
	c, recorder := newTestContext(nil)

	m.Set(c, "tok", time.Now().Add(time.Hour))

	cookies := recorder.Header().Values("Set-Cookie")
	require.Len(t, cookies, 1)
	assert.Contains(t, cookies[0], DefaultCookieName+"=tok")
	assert.Contains(t, cookies[0], "HttpOnly")
	assert.Contains(t, cookies[0], "SameSite=Lax")
	assert.Contains(t, cookies[0], "Path=/")
}

func TestClearExpiresCookie(t *testing.T) {
	m := NewManager(config.Config{})
	c, recorder := newTestContext(nil)

	m.Clear(c)

	cookies := recorder.Header().Values("Set-Cookie")
	require.Len(t, cookies, 1)
	assert.Contains(t, cookies[0], "Max-Age=0")
}
