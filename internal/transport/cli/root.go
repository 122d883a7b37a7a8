package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"catalog_demo/pkg/contextx"
	"catalog_demo/pkg/logx"
)

// ErrExampleFailed is returned when an example ran but reported failure.
var ErrExampleFailed = errors.New("example failed")

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type rootOptions struct {
	level *slog.LevelVar
}

type RootOption func(*rootOptions)

// WithLogLevel lets --debug lower the diagnostics level at runtime.
func WithLogLevel(level *slog.LevelVar) RootOption {
	return func(o *rootOptions) {
		o.level = level
	}
}

// NewRootCommand builds the catalog-demo command with one subcommand per
// registered example.
func NewRootCommand(registry Registry, opts ...RootOption) *cobra.Command {
	var (
		options rootOptions
		debug   bool
	)

	for _, opt := range opts {
		opt(&options)
	}

	root := &cobra.Command{
		Use:           "catalog-demo <example>",
		Short:         "Runs catalog API examples.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug && options.level != nil {
				options.level.Set(slog.LevelDebug)
			}

			ctx := cmd.Context()
			log := logger(ctx).With(slog.String(logx.FieldExample, cmd.Name()))
			cmd.SetContext(contextx.WithLogger(ctx, log))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			if _, err := registry.Get(args[0]); err != nil {
				return fmt.Errorf("registry.Get: %w", err)
			}

			return nil
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug diagnostics")

	root.AddCommand(newExamplesCommand(registry))

	for _, example := range registry.All() {
		cmd := example.Command()
		cmd.Use = example.Name()
		cmd.Short = example.Description()
		root.AddCommand(cmd)
	}

	return root
}

func newExamplesCommand(registry Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List available examples.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			for _, example := range registry.All() {
				fmt.Fprintf(w, "%s\t%s\n", example.Name(), example.Description()) //nolint:errcheck
			}

			return w.Flush() //nolint:wrapcheck
		},
	}
}
