// Package entity defines the records served by the trading backend.
// Every entity is a flat record owned by exactly one company; the dashboard
// never edits that ownership, only leaf attributes.
package entity

// Account type values accepted by the backend.
const (
	AccountTypeLive = "Live"
	AccountTypeDemo = "Demo"
)

// Allow flag values for a user account.
const (
	AllowStatusAllow = "Allow"
	AllowStatusBlock = "Block"
)

// User represents a trading account managed through the dashboard.
// Balance, margin and profit figures are computed by the backend; the
// dashboard only displays them.
type User struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// CompanyEmail identifies the owning company.
	CompanyEmail string `json:"companyEmail"`

	// Email is the account's login email.
	Email string `json:"email"`

	// Name is the display name.
	Name string `json:"name"`

	// Allow is either "Allow" or "Block".
	Allow string `json:"allow"`

	Balance     float64 `json:"balance"`
	UsedMargin  float64 `json:"usedMargin"`
	TotalProfit float64 `json:"totalProfit"`

	// Type is the account type, "Live" or "Demo".
	Type string `json:"type"`

	// Timestamps are kept as the backend's ISO-8601 strings and rendered
	// truncated to the date portion, without timezone normalization.
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
