package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reshetovitsme/gallery-feed/internal/di"
	"github.com/spf13/cobra"
)

var flagPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the gallery feed over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagPort, "port", "", "override the HTTP port")
}

func runServe(cmd *cobra.Command, args []string) error {
	setupServerLogger()

	injector, err := di.Setup(flagConfig)
	if err != nil {
		return fmt.Errorf("setting up: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return di.Run(ctx, injector, flagPort)
}
