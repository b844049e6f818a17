package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/windoze95/recipefinder-api/internal/config"
	"github.com/windoze95/recipefinder-api/internal/kvstore"
	"github.com/windoze95/recipefinder-api/internal/logger"
	"github.com/windoze95/recipefinder-api/internal/mcp"
	"github.com/windoze95/recipefinder-api/internal/providers"
	"github.com/windoze95/recipefinder-api/internal/service"
	"go.uber.org/zap"
)

// Entry point for the stdio MCP server. Logs go to stderr.
func main() {
	logger.Init(os.Getenv("GIN_MODE") != "release")
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Get().Fatal("failed to load config", zap.Error(err))
	}
	if err := cfg.CheckConfigEnvFields(); err != nil {
		logger.Get().Fatal("missing required config fields", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := kvstore.New(ctx, cfg)
	if err != nil {
		logger.Get().Fatal("failed to open store", zap.String("backend", cfg.EnvVars.StoreBackend), zap.Error(err))
	}
	defer store.Close()

	services := service.NewServices(cfg, store, providers.NewSet(cfg))
	logger.Get().Info("starting mcp server",
		zap.String("name", mcp.ServerName),
		zap.String("provider", services.Search.ActiveProvider()),
	)

	if err := mcp.NewServer(services).Serve(ctx); err != nil {
		logger.Get().Error("mcp server stopped", zap.Error(err))
	}
}
