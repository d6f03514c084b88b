package entity

// Symbol represents a tradable instrument. AssetName references a symbol
// asset by name, not by id; the backend resolves it.
type Symbol struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Code      string `json:"code"`
	AssetName string `json:"assetName"`
	UpdatedAt string `json:"updatedAt"`
}
