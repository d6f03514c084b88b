// Package symbols is the symbol management screen.
package symbols

import (
	"context"

	"trade_admin/internal/backend"
	"trade_admin/internal/domain/entity"
	"trade_admin/internal/platform/session"
	"trade_admin/internal/screen"
	"trade_admin/internal/web"
)

// optionsKeyAssets names the dynamic asset picker options delivered with
// the getSymbols response.
const optionsKeyAssets = "assetNames"

// New builds the symbols screen.
func New(api *backend.Client, sessions *session.Manager) *screen.Screen[entity.Symbol] {
	schema := screen.Schema[entity.Symbol]{
		Slug:      "symbols",
		Title:     "Symbol",
		ItemLabel: "symbol",
		Columns: []screen.Column[entity.Symbol]{
			{Header: "Name", Cell: func(s entity.Symbol) string { return s.Name }},
			{Header: "Type", Cell: func(s entity.Symbol) string { return s.Type }},
			{Header: "Code", Cell: func(s entity.Symbol) string { return s.Code }},
			{Header: "Asset Name", Cell: func(s entity.Symbol) string { return s.AssetName }},
			{Header: "Updated", Cell: func(s entity.Symbol) string { return web.DateOnly(s.UpdatedAt) }},
		},
		Fields: []screen.Field{
			{Name: "name", Label: "Name", Kind: screen.KindText, Required: true},
			{Name: "type", Label: "Type", Kind: screen.KindText, Required: true},
			{Name: "code", Label: "Code", Kind: screen.KindText, Required: true},
			{Name: "assetName", Label: "Asset Name", Kind: screen.KindSelect, Required: true,
				OptionsKey: optionsKeyAssets},
		},
		ID: func(s entity.Symbol) int64 { return s.ID },
		Seed: func(s entity.Symbol) map[string]string {
			return map[string]string{
				"name":      s.Name,
				"type":      s.Type,
				"code":      s.Code,
				"assetName": s.AssetName,
			}
		},
		Can: screen.Actions{Create: true, Edit: true, Delete: true},
	}

	ops := screen.Ops[entity.Symbol]{
		List: func(ctx context.Context, token string) (screen.ListData[entity.Symbol], error) {
			list, err := api.ListSymbols(ctx, token)
			if err != nil {
				return screen.ListData[entity.Symbol]{}, err
			}
			assets := make([]web.Option, 0, len(list.AssetNames))
			for _, name := range list.AssetNames {
				assets = append(assets, web.Option{Value: name, Label: name})
			}
			return screen.ListData[entity.Symbol]{
				Items:   list.Symbols,
				Options: map[string][]web.Option{optionsKeyAssets: assets},
			}, nil
		},
		Create: func(ctx context.Context, token string, values map[string]string) (string, error) {
			return api.CreateSymbol(ctx, token, draft(0, values))
		},
		Update: func(ctx context.Context, token string, id int64, values map[string]string) (string, error) {
			return api.UpdateSymbol(ctx, token, draft(id, values))
		},
		Delete: func(ctx context.Context, token string, id int64) (string, error) {
			return api.DeleteSymbol(ctx, token, id)
		},
	}

	return screen.New(schema, ops, sessions)
}

func draft(id int64, values map[string]string) backend.SymbolDraft {
	return backend.SymbolDraft{
		SymbolID:  id,
		Name:      values["name"],
		Type:      values["type"],
		Code:      values["code"],
		AssetName: values["assetName"],
	}
}
