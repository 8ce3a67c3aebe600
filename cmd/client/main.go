package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/tasknotes/internal/buildinfo"
	"github.com/dmitrijs2005/tasknotes/internal/client/api"
	"github.com/dmitrijs2005/tasknotes/internal/client/cli"
	"github.com/dmitrijs2005/tasknotes/internal/client/config"
	"github.com/dmitrijs2005/tasknotes/internal/client/services"
	"github.com/dmitrijs2005/tasknotes/internal/client/storage"
	"github.com/dmitrijs2005/tasknotes/internal/client/transport"
	"github.com/dmitrijs2005/tasknotes/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "client stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	httpClient, err := transport.BuildHTTPClient(transport.Options{
		Timeout: cfg.RequestTimeout,
		CAPath:  cfg.CAPath,
	})
	if err != nil {
		return err
	}

	session := storage.NewSessionStore(db)

	opts := []api.Option{
		api.WithRoot(cfg.ServerURL),
		api.WithHTTPClient(httpClient),
		api.WithTokenSource(session),
		api.WithLogger(logger),
		api.WithHandshakeTimeout(cfg.HandshakeTimeout),
	}
	if cfg.HandshakeMode == config.HandshakeStub {
		opts = append(opts, api.WithHandshaker(api.StubHandshaker{}))
	}

	facade := api.Open(ctx, opts...)
	auth := services.NewAuthService(facade, session, logger)

	return cli.NewApp(facade, auth, logger).Run(ctx)
}
