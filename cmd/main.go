package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"catalog_demo/internal/application"
	"catalog_demo/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(logx.NewHandler(os.Stderr, slog.LevelInfo, false))
	slog.SetDefault(log)

	if err := application.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Default().Error("application failed", logx.Error(err))
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}
