package session

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// issueCookie runs Issue through a real gin handler and returns the cookie it set.
func issueCookie(t *testing.T, m *Manager, backendToken string) *http.Cookie {
	t.Helper()

	r := gin.New()
	r.GET("/issue", func(c *gin.Context) {
		require.NoError(t, m.Issue(c, backendToken))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/issue", nil)
	r.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()
	for _, ck := range res.Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	t.Fatal("session cookie was not set")
	return nil
}

// readToken runs Token through a real gin handler for the given cookie.
func readToken(m *Manager, cookie *http.Cookie) (string, error) {
	var (
		tok string
		err error
	)
	r := gin.New()
	r.GET("/read", func(c *gin.Context) {
		tok, err = m.Token(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)
	return tok, err
}

func TestManager_IssueAndToken(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)
	cookie := issueCookie(t, m, "backend-token-123")

	assert.True(t, cookie.HttpOnly, "session cookie must be http-only")

	tok, err := readToken(m, cookie)
	require.NoError(t, err)
	assert.Equal(t, "backend-token-123", tok)
}

func TestManager_Token_NoCookie(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)
	_, err := readToken(m, nil)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_Token_Tampered(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)
	cookie := issueCookie(t, m, "backend-token-123")
	cookie.Value += "x"

	_, err := readToken(m, cookie)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestManager_Token_WrongSecret(t *testing.T) {
	t.Parallel()

	issued := NewManager("secret-a", time.Hour)
	cookie := issueCookie(t, issued, "backend-token-123")

	other := NewManager("secret-b", time.Hour)
	_, err := readToken(other, cookie)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestManager_Token_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", -time.Minute)
	cookie := issueCookie(t, m, "backend-token-123")

	_, err := readToken(m, cookie)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestRequired_RedirectsWithoutSession(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)
	called := false

	r := gin.New()
	auth := r.Group("/", m.Required())
	auth.GET("/users", func(c *gin.Context) {
		called = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.False(t, called, "handler must not run without a session")
}

func TestRequired_PassesTokenToHandler(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)
	cookie := issueCookie(t, m, "backend-token-123")

	var got string
	r := gin.New()
	auth := r.Group("/", m.Required())
	auth.GET("/users", func(c *gin.Context) {
		got = TokenFromContext(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "backend-token-123", got)
}
