// Package companies is the read-only company listing screen.
package companies

import (
	"context"

	"trade_admin/internal/backend"
	"trade_admin/internal/domain/entity"
	"trade_admin/internal/platform/session"
	"trade_admin/internal/screen"
	"trade_admin/internal/web"
)

// New builds the companies screen. Companies are managed elsewhere; the
// dashboard only lists them.
func New(api *backend.Client, sessions *session.Manager) *screen.Screen[entity.Company] {
	schema := screen.Schema[entity.Company]{
		Slug:      "companies",
		Title:     "Company",
		ItemLabel: "company",
		Columns: []screen.Column[entity.Company]{
			{Header: "Email", Cell: func(c entity.Company) string { return c.Email }},
			{Header: "Role", Cell: func(c entity.Company) string { return c.Role }},
			{Header: "Created", Cell: func(c entity.Company) string { return web.DateOnly(c.CreatedAt) }},
			{Header: "Updated", Cell: func(c entity.Company) string { return web.DateOnly(c.UpdatedAt) }},
		},
		ID:  func(c entity.Company) int64 { return c.ID },
		Can: screen.Actions{},
	}

	ops := screen.Ops[entity.Company]{
		List: func(ctx context.Context, token string) (screen.ListData[entity.Company], error) {
			companies, err := api.ListCompanies(ctx, token)
			if err != nil {
				return screen.ListData[entity.Company]{}, err
			}
			return screen.ListData[entity.Company]{Items: companies}, nil
		},
	}

	return screen.New(schema, ops, sessions)
}
