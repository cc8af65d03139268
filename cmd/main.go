package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/AnastasiiaStetsiuk/train-office/config"
	"github.com/AnastasiiaStetsiuk/train-office/db"
	"github.com/AnastasiiaStetsiuk/train-office/pkg/logger"
	"github.com/AnastasiiaStetsiuk/train-office/registry"
	"github.com/AnastasiiaStetsiuk/train-office/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.SetDefault(logger.MustProduction())
		logger.Fatal("failed to load config", "error", err)
	}

	if cfg.Dev {
		logger.SetDefault(logger.MustDevelopment())
	} else {
		logger.SetDefault(logger.MustProduction())
	}
	defer logger.SyncDefault()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(cfg.DataDir,
		db.WithSyncWrites(cfg.SyncWrites),
		db.WithLogger(logger.Default()),
	)
	if err != nil {
		logger.Fatal("failed to open database", "error", err)
	}
	defer store.Close()

	reg, err := registry.Open(store, registry.WithLogger(logger.Default()))
	if err != nil {
		logger.Fatal("failed to open registry", "error", err)
	}

	srv, err := server.New(reg,
		server.WithPort(cfg.Port),
		server.WithLogger(logger.Default()),
	)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server error", "error", err)
	}
}
