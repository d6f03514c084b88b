package entity

// PipSizes is the enumerated set of valid pip sizes for a symbol asset.
var PipSizes = []string{"1", "0.01", "0.0001"}

// Asset is a symbol asset class record (e.g. metals, energies).
type Asset struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// PipSize is one of PipSizes. The backend stores and returns it under
	// the snake_case key.
	PipSize string `json:"pip_size"`

	CreatedAt string `json:"createdAt"`
}
