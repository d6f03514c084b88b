package backend

import "trade_admin/internal/domain/entity"

// Drafts are the write payloads posted to the backend. They mirror the
// form fields of each screen; identifier fields use the names the update
// endpoints expect (userId, symbolId, ...).

// UserDraft is the payload for createUser and updateUser.
type UserDraft struct {
	UserID       int64  `json:"userId,omitempty"`
	CompanyEmail string `json:"companyEmail,omitempty"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Password     string `json:"password,omitempty"`
	Balance      string `json:"balance"`
	Type         string `json:"type"`
	Allow        string `json:"allow,omitempty"`
}

// SymbolDraft is the payload for createSymbol and updateSymbol.
type SymbolDraft struct {
	SymbolID  int64  `json:"symbolId,omitempty"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Code      string `json:"code"`
	AssetName string `json:"assetName"`
}

// AssetDraft is the payload for createAsset and updateAsset.
type AssetDraft struct {
	AssetID int64  `json:"assetId,omitempty"`
	Name    string `json:"name"`
	PipSize string `json:"pip_size"`
}

// LeverageDraft is the payload for updateLeverage. Ratio keys are
// capitalized, matching the backend's serialization of leverage records.
type LeverageDraft struct {
	LeverageID   int64  `json:"leverageId"`
	CompanyEmail string `json:"companyEmail,omitempty"`
	Crypto       int    `json:"Crypto"`
	Forex        int    `json:"Forex"`
	Indices      int    `json:"Indices"`
	Futures      int    `json:"Futures"`
}

// CommissionDraft is the payload for createCommissions and updateCommission.
type CommissionDraft struct {
	CommissionID int64   `json:"commissionId,omitempty"`
	CompanyEmail string  `json:"companyEmail,omitempty"`
	Crypto       float64 `json:"Crypto"`
	Forex        float64 `json:"Forex"`
	Indices      float64 `json:"Indices"`
	Futures      float64 `json:"Futures"`
}

// UserList is the getUsers payload: the accounts plus the company emails
// offered by the create form's company picker.
type UserList struct {
	Users         []entity.User
	CompanyEmails []string
}

// SymbolList is the getSymbols payload: the symbols plus the asset names
// offered by the create/edit forms' asset picker.
type SymbolList struct {
	Symbols    []entity.Symbol
	AssetNames []string
}

// Response envelopes. The backend wraps every collection in a keyed object
// and reports write outcomes as {message}; error bodies carry either
// {message} or {state}.

type usersResponse struct {
	Users        []entity.User `json:"users"`
	CompanyEmail []string      `json:"companyEmail"`
}

type companiesResponse struct {
	Companies []entity.Company `json:"companies"`
}

type symbolsResponse struct {
	Symbols    []entity.Symbol `json:"symbols"`
	AssetNames []string        `json:"assetNames"`
}

type assetsResponse struct {
	Assets []entity.Asset `json:"assets"`
}

type leveragesResponse struct {
	Leverages []entity.Leverage `json:"leverages"`
}

type commissionsResponse struct {
	Commissions []entity.Commission `json:"commissions"`
}

type positionsResponse struct {
	Positions []entity.Position `json:"positions"`
}

type messageResponse struct {
	Message string `json:"message"`
	State   string `json:"state"`
}

type tokenResponse struct {
	Token string `json:"token"`
}
