// Package leverage is the per-company leverage ratio screen. Leverage
// records exist one per company and are only ever edited in place.
package leverage

import (
	"context"
	"strconv"

	"trade_admin/internal/backend"
	"trade_admin/internal/domain/entity"
	"trade_admin/internal/platform/session"
	"trade_admin/internal/screen"
	"trade_admin/internal/web"
)

func ratioOptions() []web.Option {
	opts := make([]web.Option, 0, len(entity.LeverageRatios))
	for _, r := range entity.LeverageRatios {
		v := strconv.Itoa(r)
		opts = append(opts, web.Option{Value: v, Label: "1:" + v})
	}
	return opts
}

func ratioField(name, label string) screen.Field {
	return screen.Field{
		Name: name, Label: label, Kind: screen.KindSelect, Required: true,
		Options: ratioOptions(),
	}
}

// New builds the leverage screen.
func New(api *backend.Client, sessions *session.Manager) *screen.Screen[entity.Leverage] {
	schema := screen.Schema[entity.Leverage]{
		Slug:      "leverage",
		Title:     "Leverage",
		ItemLabel: "leverage",
		Columns: []screen.Column[entity.Leverage]{
			{Header: "Company Email", Cell: func(l entity.Leverage) string { return l.CompanyEmail }},
			{Header: "Crypto", Cell: func(l entity.Leverage) string { return "1:" + strconv.Itoa(l.Crypto) }},
			{Header: "Forex", Cell: func(l entity.Leverage) string { return "1:" + strconv.Itoa(l.Forex) }},
			{Header: "Indices", Cell: func(l entity.Leverage) string { return "1:" + strconv.Itoa(l.Indices) }},
			{Header: "Futures", Cell: func(l entity.Leverage) string { return "1:" + strconv.Itoa(l.Futures) }},
			{Header: "Updated", Cell: func(l entity.Leverage) string { return web.DateOnly(l.UpdatedAt) }},
		},
		Fields: []screen.Field{
			ratioField("crypto", "Crypto"),
			ratioField("forex", "Forex"),
			ratioField("indices", "Indices"),
			ratioField("futures", "Futures"),
		},
		ID: func(l entity.Leverage) int64 { return l.ID },
		Seed: func(l entity.Leverage) map[string]string {
			return map[string]string{
				"crypto":  strconv.Itoa(l.Crypto),
				"forex":   strconv.Itoa(l.Forex),
				"indices": strconv.Itoa(l.Indices),
				"futures": strconv.Itoa(l.Futures),
			}
		},
		Can: screen.Actions{Edit: true},
	}

	ops := screen.Ops[entity.Leverage]{
		List: func(ctx context.Context, token string) (screen.ListData[entity.Leverage], error) {
			leverages, err := api.ListLeverages(ctx, token)
			if err != nil {
				return screen.ListData[entity.Leverage]{}, err
			}
			return screen.ListData[entity.Leverage]{Items: leverages}, nil
		},
		Update: func(ctx context.Context, token string, id int64, values map[string]string) (string, error) {
			return api.UpdateLeverage(ctx, token, draft(id, values))
		},
	}

	return screen.New(schema, ops, sessions)
}

func draft(id int64, values map[string]string) backend.LeverageDraft {
	// Values come from the fixed ratio selects, so Atoi cannot fail on a
	// validated form.
	ratio := func(name string) int {
		n, _ := strconv.Atoi(values[name])
		return n
	}
	return backend.LeverageDraft{
		LeverageID: id,
		Crypto:     ratio("crypto"),
		Forex:      ratio("forex"),
		Indices:    ratio("indices"),
		Futures:    ratio("futures"),
	}
}
