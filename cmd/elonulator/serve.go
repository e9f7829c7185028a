package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/elonulator/wealth-calculator/internal/server"
	"github.com/elonulator/wealth-calculator/web"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison API and web page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			ds, err := a.dataset()
			if err != nil {
				return err
			}
			slog.Info("Dataset loaded", "billionaires", len(ds.People()), "last_updated", ds.LastUpdated())

			assets := web.Static()
			if dir := a.cfg.Server.StaticDir; dir != "" {
				assets = os.DirFS(dir)
				slog.Info("Serving static files", "path", dir)
			}

			srv := server.New(ds, server.WithAssets(assets), server.WithLogger(slog.Default()))
			return srv.Run(cmd.Context(), a.cfg.Server.Addr, a.cfg.Server.ShutdownTimeout)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
