package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/regnal/internal/infrastructure/httpapi"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over a read-only JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, func(d *Deps) error {
				cfg := d.Config.Server
				if cmd.Flags().Changed("addr") {
					cfg.Addr = addr
				}

				server := httpapi.NewServer(cfg, d.Log, httpapi.Handlers{
					View:        d.ViewHandler,
					Timeline:    d.TimelineHandler,
					Detail:      d.DetailHandler,
					Stats:       d.StatsHandler,
					DefaultView: d.DefaultView,
				})
				return server.Run(ctx)
			})
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")

	return cmd
}
