package entity

// LeverageRatios is the fixed set of selectable leverage ratios. A value of
// 200 reads as "1:200".
var LeverageRatios = []int{1, 10, 20, 30, 40, 50, 60, 100, 200, 500, 1000}

// Leverage holds the per-asset-class leverage ratios for one company.
// Records are keyed by company email and edited in place; the dashboard
// never creates or deletes them.
type Leverage struct {
	ID           int64  `json:"id"`
	CompanyEmail string `json:"companyEmail"`

	// Per-asset-class ratios. The backend uses capitalized JSON keys here,
	// unlike the rest of the API.
	Crypto  int `json:"Crypto"`
	Forex   int `json:"Forex"`
	Indices int `json:"Indices"`
	Futures int `json:"Futures"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
