package symbols

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade_admin/internal/backend"
	"trade_admin/internal/platform/session"
	"trade_admin/internal/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newManager() *session.Manager {
	return session.NewManager("test-secret", time.Hour)
}

func sessionCookie(t *testing.T, m *session.Manager) *http.Cookie {
	t.Helper()

	r := gin.New()
	r.GET("/issue", func(c *gin.Context) {
		require.NoError(t, m.Issue(c, "backend-token"))
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/issue", nil))

	res := w.Result()
	defer res.Body.Close()
	for _, ck := range res.Cookies() {
		if ck.Name == session.CookieName {
			return ck
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func newRouter(backendURL string, m *session.Manager) *gin.Engine {
	api := backend.NewClient(backendURL, &http.Client{Timeout: time.Second})
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	auth := r.Group("/", m.Required())
	New(api, m).Register(auth)
	return r
}

func TestSymbols_CreateForm_OffersAssetNames(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/getSymbols", r.URL.Path)
		_, _ = w.Write([]byte(`{"symbols":[],"assetNames":["Gold","Crude Oil"]}`))
	}))
	defer srv.Close()

	m := newManager()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/symbols/new", nil)
	req.AddCookie(sessionCookie(t, m))
	newRouter(srv.URL, m).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Gold")
	assert.Contains(t, body, "Crude Oil")
}

func TestSymbols_Create_PostsDraft(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/getSymbols":
			_, _ = w.Write([]byte(`{"symbols":[],"assetNames":["Gold"]}`))
		case "/createSymbol":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"message":"Symbol created"}`))
		}
	}))
	defer srv.Close()

	m := newManager()
	form := url.Values{
		"name":      {"XAUUSD"},
		"type":      {"Futures"},
		"code":      {"GC"},
		"assetName": {"Gold"},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/symbols", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(sessionCookie(t, m))
	newRouter(srv.URL, m).ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "XAUUSD", got["name"])
	assert.Equal(t, "Futures", got["type"])
	assert.Equal(t, "GC", got["code"])
	assert.Equal(t, "Gold", got["assetName"])
	assert.NotContains(t, got, "symbolId")
}

func TestSymbols_Delete_PostsSymbolID(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/deleteSymbol", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message":"Symbol deleted"}`))
	}))
	defer srv.Close()

	m := newManager()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/symbols/delete/5", nil)
	req.AddCookie(sessionCookie(t, m))
	newRouter(srv.URL, m).ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/symbols", w.Header().Get("Location"))
	assert.Equal(t, map[string]any{"symbolId": float64(5)}, got)
}
