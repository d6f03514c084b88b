// Package users is the user account management screen.
package users

import (
	"context"

	"trade_admin/internal/backend"
	"trade_admin/internal/domain/entity"
	"trade_admin/internal/platform/session"
	"trade_admin/internal/screen"
	"trade_admin/internal/web"
)

// optionsKeyCompanies names the dynamic company picker options delivered
// with the getUsers response.
const optionsKeyCompanies = "companyEmails"

var accountTypeOptions = []web.Option{
	{Value: entity.AccountTypeLive, Label: entity.AccountTypeLive},
	{Value: entity.AccountTypeDemo, Label: entity.AccountTypeDemo},
}

var allowOptions = []web.Option{
	{Value: entity.AllowStatusAllow, Label: entity.AllowStatusAllow},
	{Value: entity.AllowStatusBlock, Label: entity.AllowStatusBlock},
}

// New builds the users screen.
func New(api *backend.Client, sessions *session.Manager) *screen.Screen[entity.User] {
	schema := screen.Schema[entity.User]{
		Slug:      "users",
		Title:     "Users",
		ItemLabel: "user",
		Columns: []screen.Column[entity.User]{
			{Header: "Company Email", Cell: func(u entity.User) string { return u.CompanyEmail }},
			{Header: "Email", Cell: func(u entity.User) string { return u.Email }},
			{Header: "Name", Cell: func(u entity.User) string { return u.Name }},
			{Header: "Allow", Cell: func(u entity.User) string { return u.Allow }},
			{Header: "Balance", Cell: func(u entity.User) string { return web.Num(u.Balance) }},
			{Header: "Used Margin", Cell: func(u entity.User) string { return web.Num(u.UsedMargin) }},
			{Header: "Total Profit", Cell: func(u entity.User) string { return web.Num(u.TotalProfit) }},
			{Header: "Type", Cell: func(u entity.User) string { return u.Type }},
			{Header: "Created", Cell: func(u entity.User) string { return web.DateOnly(u.CreatedAt) }},
			{Header: "Updated", Cell: func(u entity.User) string { return web.DateOnly(u.UpdatedAt) }},
		},
		Fields: []screen.Field{
			{Name: "companyEmail", Label: "Company Email", Kind: screen.KindSelect, Required: true,
				Email: true, OptionsKey: optionsKeyCompanies, Default: "admin@gmail.com"},
			{Name: "email", Label: "Email", Kind: screen.KindText, Required: true, Email: true},
			{Name: "name", Label: "Name", Kind: screen.KindText, Required: true},
			{Name: "password", Label: "Password", Kind: screen.KindPassword, Required: true, MinLen: 8},
			{Name: "balance", Label: "Balance", Kind: screen.KindNumber, Required: true},
			{Name: "type", Label: "Account Type", Kind: screen.KindSelect, Required: true,
				Options: accountTypeOptions, Default: entity.AccountTypeLive},
		},
		// The edit form swaps the company picker for the allow toggle; the
		// password stays optional because it is never round-tripped.
		EditFields: []screen.Field{
			{Name: "email", Label: "Email", Kind: screen.KindText, Required: true, Email: true},
			{Name: "name", Label: "Name", Kind: screen.KindText, Required: true},
			{Name: "password", Label: "Password", Kind: screen.KindPassword, MinLen: 8},
			{Name: "balance", Label: "Balance", Kind: screen.KindNumber, Required: true},
			{Name: "type", Label: "Account Type", Kind: screen.KindSelect, Required: true,
				Options: accountTypeOptions},
			{Name: "allow", Label: "Allow", Kind: screen.KindSelect, Required: true,
				Options: allowOptions},
		},
		ID: func(u entity.User) int64 { return u.ID },
		Seed: func(u entity.User) map[string]string {
			return map[string]string{
				"email":   u.Email,
				"name":    u.Name,
				"balance": web.Num(u.Balance),
				"type":    u.Type,
				"allow":   u.Allow,
			}
		},
		Can: screen.Actions{Create: true, Edit: true, Delete: true},
	}

	ops := screen.Ops[entity.User]{
		List: func(ctx context.Context, token string) (screen.ListData[entity.User], error) {
			list, err := api.ListUsers(ctx, token)
			if err != nil {
				return screen.ListData[entity.User]{}, err
			}
			companies := make([]web.Option, 0, len(list.CompanyEmails))
			for _, email := range list.CompanyEmails {
				companies = append(companies, web.Option{Value: email, Label: email})
			}
			return screen.ListData[entity.User]{
				Items:   list.Users,
				Options: map[string][]web.Option{optionsKeyCompanies: companies},
			}, nil
		},
		Create: func(ctx context.Context, token string, values map[string]string) (string, error) {
			return api.CreateUser(ctx, token, draft(0, values))
		},
		Update: func(ctx context.Context, token string, id int64, values map[string]string) (string, error) {
			return api.UpdateUser(ctx, token, draft(id, values))
		},
		Delete: func(ctx context.Context, token string, id int64) (string, error) {
			return api.DeleteUser(ctx, token, id)
		},
	}

	return screen.New(schema, ops, sessions)
}

func draft(id int64, values map[string]string) backend.UserDraft {
	return backend.UserDraft{
		UserID:       id,
		CompanyEmail: values["companyEmail"],
		Email:        values["email"],
		Name:         values["name"],
		Password:     values["password"],
		Balance:      values["balance"],
		Type:         values["type"],
		Allow:        values["allow"],
	}
}
