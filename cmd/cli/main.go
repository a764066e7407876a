package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/stis-apps/titiktemu/internal/buildinfo"
	"github.com/stis-apps/titiktemu/internal/client/api"
	"github.com/stis-apps/titiktemu/internal/client/cli"
	"github.com/stis-apps/titiktemu/internal/client/config"
	"github.com/stis-apps/titiktemu/internal/client/repositories"
	"github.com/stis-apps/titiktemu/internal/client/session"
	"github.com/stis-apps/titiktemu/internal/client/viewmodel"
	"github.com/stis-apps/titiktemu/internal/logging"

	_ "modernc.org/sqlite"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	log := logging.NewDefault(os.Stderr, slog.LevelWarn)

	store, err := session.Open(ctx, cfg.SessionDBPath, log)
	if err != nil {
		log.Error(ctx, "failed to open session store", "path", cfg.SessionDBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	apiClient := api.New(cfg.ServerBaseURL, store, log, cfg.RequestTimeout)

	authRepo := repositories.NewAuthRepository(apiClient, store, log)
	userRepo := repositories.NewUserRepository(apiClient, store, log)
	reportRepo := repositories.NewReportRepository(apiClient, log)

	vms := viewmodel.NewFactory(authRepo, userRepo, reportRepo, store, os.TempDir(), log)

	app := cli.NewApp(vms, store, log)
	app.Run(ctx)
}
