package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/elonulator/wealth-calculator/internal/config"
	"github.com/elonulator/wealth-calculator/internal/dataset"
	"github.com/elonulator/wealth-calculator/pkg/logging"
)

type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "elonulator",
		Short:         "Compare billionaire spending with the median American household",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(newServeCmd(a), newListCmd(a), newCompareCmd(a))
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if err := logging.Setup(cfg.Log.Level); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) dataset() (*dataset.Dataset, error) {
	if a.cfg.Data.File != "" {
		return dataset.LoadFromFile(a.cfg.Data.File)
	}
	return dataset.Default()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
