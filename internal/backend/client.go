// Package backend is the HTTP client for the trading backend REST API.
//
// The backend is the single source of truth: the dashboard never holds an
// authoritative copy of any collection and re-fetches after every write.
// All calls carry the admin's opaque bearer token in the Authorization
// header, verbatim.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"trade_admin/internal/domain/entity"
)

// Client calls the trading backend.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the given base URL. The http.Client must
// carry an explicit timeout; use platform/http.NewHTTPClient.
func NewClient(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: baseURL, client: client}
}

// do performs one request and maps the outcome onto the error taxonomy:
// transport failures become ErrTimeout/ErrUnavailable, a 401 becomes
// ErrUnauthorized, any other non-2xx becomes *APIError with the message the
// backend put in the body. On success the body is decoded into out.
func (c *Client) do(ctx context.Context, token, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	// The token is sent as-is; an empty string is still sent and the
	// backend rejects it as unauthorized.
	req.Header.Set("Authorization", token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return fmt.Errorf("%w: %s", ErrTimeout, path)
		}
		return fmt.Errorf("%w: %s", ErrUnavailable, path)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if res.StatusCode >= 400 {
		var er messageResponse
		_ = json.NewDecoder(res.Body).Decode(&er)
		msg := er.Message
		if msg == "" {
			msg = er.State
		}
		return &APIError{Status: res.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, token, http.MethodGet, path, nil, out)
}

// post issues a write and returns the backend's result message.
func (c *Client) post(ctx context.Context, token, path string, body any) (string, error) {
	var res messageResponse
	if err := c.do(ctx, token, http.MethodPost, path, body, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

// Login exchanges admin credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var res tokenResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, "", http.MethodPost, "/login", body, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}

// ListUsers fetches all user accounts and the selectable company emails.
func (c *Client) ListUsers(ctx context.Context, token string) (UserList, error) {
	var res usersResponse
	if err := c.get(ctx, token, "/getUsers", &res); err != nil {
		return UserList{}, err
	}
	return UserList{Users: res.Users, CompanyEmails: res.CompanyEmail}, nil
}

// CreateUser creates a user account from the draft.
func (c *Client) CreateUser(ctx context.Context, token string, draft UserDraft) (string, error) {
	return c.post(ctx, token, "/createUser", draft)
}

// UpdateUser updates the account identified by draft.UserID.
func (c *Client) UpdateUser(ctx context.Context, token string, draft UserDraft) (string, error) {
	return c.post(ctx, token, "/updateUser", draft)
}

// DeleteUser deletes the account with the given id.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) (string, error) {
	return c.post(ctx, token, "/deleteUser", map[string]int64{"userId": id})
}

// ListCompanies fetches all companies.
func (c *Client) ListCompanies(ctx context.Context, token string) ([]entity.Company, error) {
	var res companiesResponse
	if err := c.get(ctx, token, "/getCompanies", &res); err != nil {
		return nil, err
	}
	return res.Companies, nil
}

// ListSymbols fetches all symbols and the selectable asset names.
func (c *Client) ListSymbols(ctx context.Context, token string) (SymbolList, error) {
	var res symbolsResponse
	if err := c.get(ctx, token, "/getSymbols", &res); err != nil {
		return SymbolList{}, err
	}
	return SymbolList{Symbols: res.Symbols, AssetNames: res.AssetNames}, nil
}

// CreateSymbol creates a symbol from the draft.
func (c *Client) CreateSymbol(ctx context.Context, token string, draft SymbolDraft) (string, error) {
	return c.post(ctx, token, "/createSymbol", draft)
}

// UpdateSymbol updates the symbol identified by draft.SymbolID.
func (c *Client) UpdateSymbol(ctx context.Context, token string, draft SymbolDraft) (string, error) {
	return c.post(ctx, token, "/updateSymbol", draft)
}

// DeleteSymbol deletes the symbol with the given id.
func (c *Client) DeleteSymbol(ctx context.Context, token string, id int64) (string, error) {
	return c.post(ctx, token, "/deleteSymbol", map[string]int64{"symbolId": id})
}

// ListAssets fetches all symbol assets.
func (c *Client) ListAssets(ctx context.Context, token string) ([]entity.Asset, error) {
	var res assetsResponse
	if err := c.get(ctx, token, "/getAssets", &res); err != nil {
		return nil, err
	}
	return res.Assets, nil
}

// CreateAsset creates a symbol asset from the draft.
func (c *Client) CreateAsset(ctx context.Context, token string, draft AssetDraft) (string, error) {
	return c.post(ctx, token, "/createAsset", draft)
}

// UpdateAsset updates the asset identified by draft.AssetID.
func (c *Client) UpdateAsset(ctx context.Context, token string, draft AssetDraft) (string, error) {
	return c.post(ctx, token, "/updateAsset", draft)
}

// DeleteAsset deletes the asset with the given id.
func (c *Client) DeleteAsset(ctx context.Context, token string, id int64) (string, error) {
	return c.post(ctx, token, "/deleteAsset", map[string]int64{"assetId": id})
}

// ListLeverages fetches the per-company leverage settings.
func (c *Client) ListLeverages(ctx context.Context, token string) ([]entity.Leverage, error) {
	var res leveragesResponse
	if err := c.get(ctx, token, "/getLeverages", &res); err != nil {
		return nil, err
	}
	return res.Leverages, nil
}

// UpdateLeverage updates the leverage record identified by draft.LeverageID.
func (c *Client) UpdateLeverage(ctx context.Context, token string, draft LeverageDraft) (string, error) {
	return c.post(ctx, token, "/updateLeverage", draft)
}

// ListCommissions fetches the per-company commission settings.
func (c *Client) ListCommissions(ctx context.Context, token string) ([]entity.Commission, error) {
	var res commissionsResponse
	if err := c.get(ctx, token, "/getCommissions", &res); err != nil {
		return nil, err
	}
	return res.Commissions, nil
}

// CreateCommissions creates a commission record from the draft.
func (c *Client) CreateCommissions(ctx context.Context, token string, draft CommissionDraft) (string, error) {
	return c.post(ctx, token, "/createCommissions", draft)
}

// UpdateCommission updates the record identified by draft.CommissionID.
func (c *Client) UpdateCommission(ctx context.Context, token string, draft CommissionDraft) (string, error) {
	return c.post(ctx, token, "/updateCommission", draft)
}

// ListPositions fetches all positions.
func (c *Client) ListPositions(ctx context.Context, token string) ([]entity.Position, error) {
	var res positionsResponse
	if err := c.get(ctx, token, "/getPositions", &res); err != nil {
		return nil, err
	}
	return res.Positions, nil
}
