// Package commissions is the per-company commission screen. Records are
// keyed by company email; a company gets at most one.
package commissions

import (
	"context"
	"strconv"

	"trade_admin/internal/backend"
	"trade_admin/internal/domain/entity"
	"trade_admin/internal/platform/session"
	"trade_admin/internal/screen"
	"trade_admin/internal/web"
)

func valueField(name, label string) screen.Field {
	return screen.Field{Name: name, Label: label, Kind: screen.KindNumber, Required: true}
}

// New builds the commissions screen.
func New(api *backend.Client, sessions *session.Manager) *screen.Screen[entity.Commission] {
	schema := screen.Schema[entity.Commission]{
		Slug:      "commissions",
		Title:     "Commission",
		ItemLabel: "commission",
		Columns: []screen.Column[entity.Commission]{
			{Header: "Company Email", Cell: func(m entity.Commission) string { return m.CompanyEmail }},
			{Header: "Crypto", Cell: func(m entity.Commission) string { return web.Num(m.Crypto) }},
			{Header: "Forex", Cell: func(m entity.Commission) string { return web.Num(m.Forex) }},
			{Header: "Indices", Cell: func(m entity.Commission) string { return web.Num(m.Indices) }},
			{Header: "Futures", Cell: func(m entity.Commission) string { return web.Num(m.Futures) }},
			{Header: "Updated", Cell: func(m entity.Commission) string { return web.DateOnly(m.UpdatedAt) }},
		},
		Fields: []screen.Field{
			{Name: "companyEmail", Label: "Company Email", Kind: screen.KindText, Required: true, Email: true},
			valueField("crypto", "Crypto"),
			valueField("forex", "Forex"),
			valueField("indices", "Indices"),
			valueField("futures", "Futures"),
		},
		// The owning company never changes once the record exists.
		EditFields: []screen.Field{
			valueField("crypto", "Crypto"),
			valueField("forex", "Forex"),
			valueField("indices", "Indices"),
			valueField("futures", "Futures"),
		},
		ID: func(m entity.Commission) int64 { return m.ID },
		Seed: func(m entity.Commission) map[string]string {
			return map[string]string{
				"crypto":  web.Num(m.Crypto),
				"forex":   web.Num(m.Forex),
				"indices": web.Num(m.Indices),
				"futures": web.Num(m.Futures),
			}
		},
		Can: screen.Actions{Create: true, Edit: true},
	}

	ops := screen.Ops[entity.Commission]{
		List: func(ctx context.Context, token string) (screen.ListData[entity.Commission], error) {
			commissions, err := api.ListCommissions(ctx, token)
			if err != nil {
				return screen.ListData[entity.Commission]{}, err
			}
			return screen.ListData[entity.Commission]{Items: commissions}, nil
		},
		Create: func(ctx context.Context, token string, values map[string]string) (string, error) {
			return api.CreateCommissions(ctx, token, draft(0, values))
		},
		Update: func(ctx context.Context, token string, id int64, values map[string]string) (string, error) {
			return api.UpdateCommission(ctx, token, draft(id, values))
		},
	}

	return screen.New(schema, ops, sessions)
}

func draft(id int64, values map[string]string) backend.CommissionDraft {
	// Number fields are validated before the draft is built.
	num := func(name string) float64 {
		f, _ := strconv.ParseFloat(values[name], 64)
		return f
	}
	return backend.CommissionDraft{
		CommissionID: id,
		CompanyEmail: values["companyEmail"],
		Crypto:       num("crypto"),
		Forex:        num("forex"),
		Indices:      num("indices"),
		Futures:      num("futures"),
	}
}
