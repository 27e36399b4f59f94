package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aldocassola/xorcrack/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var bind string
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis over an HTTP JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.ServerConfig{
				Bind:         a.cfg.Server.Bind,
				Port:         a.cfg.Server.Port,
				MaxBodyBytes: a.cfg.Server.MaxBodyBytes,
				Options:      a.cfg.Options(),
			}
			if cmd.Flags().Changed("bind") {
				cfg.Bind = bind
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.NewServer(cfg, a.log.Named("server")).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&bind, "bind", "", "Address to bind (default from config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	return cmd
}
