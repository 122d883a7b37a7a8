package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"catalog_demo/internal/config"
	"catalog_demo/internal/infrastructure/square"
	"catalog_demo/internal/transport/cli"
	"catalog_demo/pkg/application/modules"
	"catalog_demo/pkg/contextx"
	"catalog_demo/pkg/logx"
)

// Run loads the config, wires the examples and executes the command line in
// args. Example output goes to stdout and stderr, diagnostics to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	level := new(slog.LevelVar)
	level.Set(cfg.Log.Level)

	log := slog.New(logx.NewHandler(stderr, level, cfg.Log.NoColor))
	slog.SetDefault(log)

	traceID := contextx.NewTraceID()
	ctx = contextx.WithTraceID(contextx.WithLogger(ctx, log), traceID)

	log.Debug("run started",
		logx.Stringer(logx.FieldTraceID, traceID),
		slog.String(logx.FieldURL, cfg.Square.URL()),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	transportOpts := square.TransportOptions{LogFieldMaxLen: cfg.Log.FieldMaxLen}
	if cfg.Metrics.ListenAddress != "" {
		transportOpts.Registerer = registry
	}

	httpClient, err := square.NewHTTPClient(cfg.Square, transportOpts)
	if err != nil {
		return fmt.Errorf("square.NewHTTPClient: %w", err)
	}

	examples, err := cli.NewRegistry(
		cli.NewListDiscounts(
			square.NewClient(cfg.Square.URL(), httpClient),
			logx.NewConsole(stdout, stderr),
		),
	)
	if err != nil {
		return fmt.Errorf("cli.NewRegistry: %w", err)
	}

	root := cli.NewRootCommand(examples, cli.WithLogLevel(level))
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	g.Go(func() error {
		defer cancel()

		if err := root.ExecuteContext(ctx); err != nil {
			return fmt.Errorf("root.ExecuteContext: %w", err)
		}

		return nil
	})

	return g.Wait() //nolint:wrapcheck
}
