package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformhttp "trade_admin/internal/platform/http"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL, platformhttp.NewHTTPClient(2*time.Second))
}

func TestClient_ListUsers(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/getUsers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"users": [
				{"id": 1, "companyEmail": "admin@gmail.com", "email": "a@b.com", "name": "Alice",
				 "allow": "Allow", "balance": 1000, "usedMargin": 50, "totalProfit": 10,
				 "type": "Live", "createdAt": "2024-05-01T10:00:00Z", "updatedAt": "2024-05-02T10:00:00Z"}
			],
			"companyEmail": ["admin@gmail.com", "broker@gmail.com"]
		}`))
	}))
	defer srv.Close()

	list, err := newTestClient(srv).ListUsers(context.Background(), "tok-123")
	require.NoError(t, err)

	assert.Equal(t, "tok-123", gotAuth, "token must be sent verbatim")
	require.Len(t, list.Users, 1)
	assert.Equal(t, int64(1), list.Users[0].ID)
	assert.Equal(t, "Alice", list.Users[0].Name)
	assert.Equal(t, 1000.0, list.Users[0].Balance)
	assert.Equal(t, []string{"admin@gmail.com", "broker@gmail.com"}, list.CompanyEmails)
}

func TestClient_ListUsers_EmptyCollection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"users": [], "companyEmail": []}`))
	}))
	defer srv.Close()

	list, err := newTestClient(srv).ListUsers(context.Background(), "tok")
	require.NoError(t, err, "an empty collection is a valid, non-error state")
	assert.Empty(t, list.Users)
}

func TestClient_Unauthorized(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"state": "session expired"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)

	_, err := c.ListUsers(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.CreateAsset(context.Background(), "stale", AssetDraft{Name: "Gold", PipSize: "0.01"})
	assert.ErrorIs(t, err, ErrUnauthorized, "writes map 401 the same way reads do")
}

func TestClient_BusinessError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "message field",
			body:        `{"message": "Symbol already exists"}`,
			wantMessage: "Symbol already exists",
		},
		{
			name:        "state field fallback",
			body:        `{"state": "invalid company"}`,
			wantMessage: "invalid company",
		},
		{
			name:        "empty body",
			body:        ``,
			wantMessage: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv).CreateSymbol(context.Background(), "tok", SymbolDraft{Name: "XAUUSD"})
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, platformhttp.NewHTTPClient(50*time.Millisecond))
	_, err := c.ListPositions(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_Unavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	_, err := newTestClient(srv).ListCompanies(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_CreateAsset_Payload(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		_, _ = w.Write([]byte(`{"message": "Asset created"}`))
	}))
	defer srv.Close()

	msg, err := newTestClient(srv).CreateAsset(context.Background(), "tok", AssetDraft{
		Name:    "Gold",
		PipSize: "0.01",
	})
	require.NoError(t, err)

	assert.Equal(t, "/createAsset", gotPath)
	assert.Equal(t, map[string]any{"name": "Gold", "pip_size": "0.01"}, gotBody,
		"create must post exactly the draft fields")
	assert.Equal(t, "Asset created", msg)
}

func TestClient_UpdateLeverage_Payload(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/updateLeverage", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		_, _ = w.Write([]byte(`{"message": "Leverage updated"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).UpdateLeverage(context.Background(), "tok", LeverageDraft{
		LeverageID:   7,
		CompanyEmail: "admin@gmail.com",
		Crypto:       100,
		Forex:        200,
		Indices:      50,
		Futures:      50,
	})
	require.NoError(t, err)

	assert.Equal(t, 200.0, gotBody["Forex"], "updated ratio must be posted under the capitalized key")
	assert.Equal(t, 7.0, gotBody["leverageId"], "original record id must ride along")
}

func TestClient_DeleteUser_Payload(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deleteUser", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		_, _ = w.Write([]byte(`{"message": "User deleted"}`))
	}))
	defer srv.Close()

	msg, err := newTestClient(srv).DeleteUser(context.Background(), "tok", 42)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"userId": 42.0}, gotBody)
	assert.Equal(t, "User deleted", msg)
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		var body map[string]string
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		if body["email"] == "admin@gmail.com" && body["password"] == "secret123" {
			_, _ = w.Write([]byte(`{"token": "issued-token"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(srv)

	token, err := c.Login(context.Background(), "admin@gmail.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)

	_, err = c.Login(context.Background(), "admin@gmail.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_ListSymbols_AssetNames(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"symbols": [{"id": 3, "name": "XAUUSD", "type": "metal", "code": "GC", "assetName": "Metals",
				"updatedAt": "2024-06-01T00:00:00Z"}],
			"assetNames": ["Metals", "Energies"]
		}`))
	}))
	defer srv.Close()

	list, err := newTestClient(srv).ListSymbols(context.Background(), "tok")
	require.NoError(t, err)

	require.Len(t, list.Symbols, 1)
	assert.Equal(t, "XAUUSD", list.Symbols[0].Name)
	assert.Equal(t, "Metals", list.Symbols[0].AssetName)
	assert.Equal(t, []string{"Metals", "Energies"}, list.AssetNames)
}
