// Package cmd provides the root command and CLI setup for gofixer.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/gofixer/internal/adapter"
	"github.com/mouse-blink/gofixer/internal/config"
	"github.com/mouse-blink/gofixer/internal/controller"
	"github.com/mouse-blink/gofixer/internal/domain"
	"github.com/mouse-blink/gofixer/internal/domain/rules"
	"github.com/mouse-blink/gofixer/internal/logging"
)

var workflow domain.Workflow
var ui controller.UI
var logger *zap.Logger
var cfg *config.Config

var configFlag string
var verboseFlag bool
var metricsFileFlag string
var noTUIFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gofixer",
		Short: "Rewrite Go sources with mechanical fixes",
		Long: `Gofixer applies an ordered set of mechanical rules to Go source files.
Every rewritten file is checked with the Go parser before it is written, so a
rule can never leave a file that no longer compiles.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./cmd ./pkg    scan multiple directories`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: .gofixer.yaml, .gofixer.yml or .gofixer.toml in the working directory)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log pipeline decisions at debug level")
	cmd.PersistentFlags().StringVar(&metricsFileFlag, "metrics-file", "", "write run metrics in Prometheus text format to this file")
	cmd.PersistentFlags().BoolVar(&noTUIFlag, "no-tui", false, "print plain text even when attached to a terminal")

	return cmd
}

// setup loads the configuration and wires the collaborators that were not
// injected beforehand.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Resolve(configFlag, ".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg = loaded

	if workflow != nil {
		return nil
	}

	logger = logging.New(logging.Options{Verbose: verboseFlag, Output: cmd.ErrOrStderr()})
	ui = controller.NewUI(cmd, !noTUIFlag && controller.IsTTY(cmd.OutOrStdout()))
	workflow = domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		rules.Builtin(),
		ui,
		adapter.NewPrometheusMetrics(),
		logger,
	)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if logger != nil {
		_ = logger.Sync()
	}

	if err != nil {
		if errors.Is(err, domain.ErrUnitsFailed) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}
