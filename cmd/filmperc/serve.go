package main

import (
	"os/signal"
	"syscall"

	"github.com/filmperc/filmperc-go/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var bind string

func newServeCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve uploads and title search over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&bind, "bind", "", "Listen address (default: server.bind)")
	return serveCmd
}

func runServe(cmd *cobra.Command, args []string) error {
	if bind != "" {
		cfg.Server.Bind = bind
	}
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}
