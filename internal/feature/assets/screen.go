// Package assets is the symbol asset management screen.
package assets

import (
	"context"

	"trade_admin/internal/backend"
	"trade_admin/internal/domain/entity"
	"trade_admin/internal/platform/session"
	"trade_admin/internal/screen"
	"trade_admin/internal/web"
)

func pipSizeOptions() []web.Option {
	opts := make([]web.Option, 0, len(entity.PipSizes))
	for _, size := range entity.PipSizes {
		opts = append(opts, web.Option{Value: size, Label: size})
	}
	return opts
}

// New builds the symbol assets screen.
func New(api *backend.Client, sessions *session.Manager) *screen.Screen[entity.Asset] {
	schema := screen.Schema[entity.Asset]{
		Slug:      "assets",
		Title:     "Symbol Assets",
		ItemLabel: "asset",
		Columns: []screen.Column[entity.Asset]{
			{Header: "Name", Cell: func(a entity.Asset) string { return a.Name }},
			{Header: "Pip Size", Cell: func(a entity.Asset) string { return a.PipSize }},
			{Header: "Created", Cell: func(a entity.Asset) string { return web.DateOnly(a.CreatedAt) }},
		},
		Fields: []screen.Field{
			{Name: "name", Label: "Name", Kind: screen.KindText, Required: true},
			{Name: "pip_size", Label: "Pip Size", Kind: screen.KindSelect, Required: true,
				Options: pipSizeOptions()},
		},
		ID: func(a entity.Asset) int64 { return a.ID },
		Seed: func(a entity.Asset) map[string]string {
			return map[string]string{
				"name":     a.Name,
				"pip_size": a.PipSize,
			}
		},
		Can: screen.Actions{Create: true, Edit: true, Delete: true},
	}

	ops := screen.Ops[entity.Asset]{
		List: func(ctx context.Context, token string) (screen.ListData[entity.Asset], error) {
			assets, err := api.ListAssets(ctx, token)
			if err != nil {
				return screen.ListData[entity.Asset]{}, err
			}
			return screen.ListData[entity.Asset]{Items: assets}, nil
		},
		Create: func(ctx context.Context, token string, values map[string]string) (string, error) {
			return api.CreateAsset(ctx, token, draft(0, values))
		},
		Update: func(ctx context.Context, token string, id int64, values map[string]string) (string, error) {
			return api.UpdateAsset(ctx, token, draft(id, values))
		},
		Delete: func(ctx context.Context, token string, id int64) (string, error) {
			return api.DeleteAsset(ctx, token, id)
		},
	}

	return screen.New(schema, ops, sessions)
}

func draft(id int64, values map[string]string) backend.AssetDraft {
	return backend.AssetDraft{
		AssetID: id,
		Name:    values["name"],
		PipSize: values["pip_size"],
	}
}
