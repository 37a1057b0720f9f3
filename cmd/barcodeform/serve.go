package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-barcodeform/internal/cliconfig"
	"github.com/goliatone/go-barcodeform/pkg/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the barcode form over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, err := a.orchestrator()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(
				server.WithAddr(a.cfg.Server.Addr),
				server.WithShutdownGrace(a.cfg.Server.Grace),
				server.WithLogger(a.logger.Named("server")),
				server.WithOrchestrator(orch),
				server.WithRenderer(a.cfg.Render.Renderer),
				server.WithMismatches(a.cfg.Config.Mismatches),
			)
			return srv.ListenAndServe(ctx)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", ":8080", "listen address")
	flags.Duration("grace", 0, "time allowed for in-flight requests on shutdown")
	_ = a.v.BindPFlag(cliconfig.KeyServerAddr, flags.Lookup("addr"))
	_ = a.v.BindPFlag(cliconfig.KeyServerGrace, flags.Lookup("grace"))
	return cmd
}
