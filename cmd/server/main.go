package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"trade_admin/internal/app/router"
	"trade_admin/internal/backend"
	"trade_admin/internal/feature/assets"
	"trade_admin/internal/feature/auth"
	"trade_admin/internal/feature/commissions"
	"trade_admin/internal/feature/companies"
	"trade_admin/internal/feature/leverage"
	"trade_admin/internal/feature/positions"
	"trade_admin/internal/feature/symbols"
	"trade_admin/internal/feature/users"
	"trade_admin/internal/platform/config"
	platformhttp "trade_admin/internal/platform/http"
	"trade_admin/internal/platform/session"
)

func main() {
	// .env is a development convenience; in production the environment is
	// set by the deployment.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded")
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	api := backend.NewClient(cfg.BackendURL, platformhttp.NewHTTPClient(cfg.RequestTimeout))
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	r := router.New(
		auth.NewHandler(api, sessions),
		sessions,
		users.New(api, sessions),
		companies.New(api, sessions),
		symbols.New(api, sessions),
		assets.New(api, sessions),
		leverage.New(api, sessions),
		commissions.New(api, sessions),
		positions.New(api, sessions),
	)

	slog.Info("dashboard listening", "addr", cfg.Addr, "backend", cfg.BackendURL)
	if err := r.Run(cfg.Addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
