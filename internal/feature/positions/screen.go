// Package positions is the read-only trading position listing screen.
package positions

import (
	"context"

	"trade_admin/internal/backend"
	"trade_admin/internal/domain/entity"
	"trade_admin/internal/platform/session"
	"trade_admin/internal/screen"
	"trade_admin/internal/web"
)

// New builds the positions screen. Position lifecycle lives entirely at
// the backend; the dashboard only observes.
func New(api *backend.Client, sessions *session.Manager) *screen.Screen[entity.Position] {
	schema := screen.Schema[entity.Position]{
		Slug:      "positions",
		Title:     "Position",
		ItemLabel: "position",
		Columns: []screen.Column[entity.Position]{
			{Header: "Symbol", Cell: func(p entity.Position) string { return p.SymbolName }},
			{Header: "Type", Cell: func(p entity.Position) string { return p.Type }},
			{Header: "Size", Cell: func(p entity.Position) string { return web.Num(p.Size) }},
			{Header: "Status", Cell: func(p entity.Position) string { return p.Status }},
			{Header: "Start Price", Cell: func(p entity.Position) string { return web.Num(p.StartPrice) }},
			{Header: "Stop Price", Cell: func(p entity.Position) string { return web.Num(p.StopPrice) }},
			{Header: "Stop Loss", Cell: func(p entity.Position) string { return web.Num(p.StopLoss) }},
			{Header: "Take Profit", Cell: func(p entity.Position) string { return web.Num(p.TakeProfit) }},
			{Header: "Commission", Cell: func(p entity.Position) string { return web.Num(p.Commission) }},
			{Header: "Profit", Cell: func(p entity.Position) string { return web.Num(p.RealProfit) }},
			{Header: "Close Reason", Cell: func(p entity.Position) string { return p.CloseReason }},
			{Header: "Opened", Cell: func(p entity.Position) string { return web.DateOnly(p.CreatedAt) }},
		},
		ID:  func(p entity.Position) int64 { return p.ID },
		Can: screen.Actions{},
	}

	ops := screen.Ops[entity.Position]{
		List: func(ctx context.Context, token string) (screen.ListData[entity.Position], error) {
			positions, err := api.ListPositions(ctx, token)
			if err != nil {
				return screen.ListData[entity.Position]{}, err
			}
			return screen.ListData[entity.Position]{Items: positions}, nil
		},
	}

	return screen.New(schema, ops, sessions)
}
