package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"textsearch/internal/web"
)

func newServeCommand(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search form over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.HTTP.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := web.NewServer(web.ServerConfig{
				Addr:         addr,
				ReadTimeout:  a.cfg.HTTP.ReadTimeout(),
				WriteTimeout: a.cfg.HTTP.WriteTimeout(),
			}, web.NewHandler(a.service(), a.logger), a.logger)
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config and TEXTSEARCH_ADDR)")
	return cmd
}
