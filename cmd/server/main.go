package main

import (
	"context"
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/hatchling-dev/jobscout/internal/config"
	"github.com/hatchling-dev/jobscout/internal/mcp"
	"github.com/hatchling-dev/jobscout/pkg/logging"
	"github.com/hatchling-dev/jobscout/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, err := mcp.InitializeResources(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}

	// Lazy expiry keeps reads correct; the sweeper just bounds memory.
	res.Cache.StartSweeper(ctx, cfg.CacheTTL)

	srv := mcp.NewServer(logger, cfg, res)

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("jobscout server starting", "addr", net.JoinHostPort(cfg.Host, cfg.Port))

	if err := srv.Run(); err != nil {
		logger.Error("server exited with error", "err", err)
		return
	}

	logger.Info("server stopped")
}
