package entity

// Commission holds the per-asset-class commission values for one company,
// keyed by company email like Leverage.
type Commission struct {
	ID           int64  `json:"id"`
	CompanyEmail string `json:"companyEmail"`

	Crypto  float64 `json:"Crypto"`
	Forex   float64 `json:"Forex"`
	Indices float64 `json:"Indices"`
	Futures float64 `json:"Futures"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
