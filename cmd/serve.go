package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/saint0x/tutorialmaker/pkg/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tutorial HTTP service",
	Long: `Serve POST /api/tutorial/generate and GET /health.

The first SIGINT or SIGTERM shuts the server down gracefully; a second one
forces the process to exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, logger, err := loadEnvironment()
		if err != nil {
			return err
		}
		if servePort != "" {
			env.Port = servePort
		}

		logger.Loading("Starting tutorialmaker server...")
		pipeline, err := newPipeline(env, logger)
		if err != nil {
			return err
		}
		srv, err := server.New(logger, pipeline, env.Port)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}

		sigCh := make(chan os.Signal, 2)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		stopped := make(chan struct{})
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			defer close(stopped)
			return srv.Start(gctx)
		})
		g.Go(func() error {
			select {
			case sig := <-sigCh:
				logger.Info("Received signal: %v", sig)
				logger.Info("Press Ctrl+C again to force stop")
				cancel()
			case <-stopped:
				return nil
			}

			select {
			case <-sigCh:
				logger.Error("Force stopping...")
				os.Exit(1)
			case <-stopped:
			}
			return nil
		})

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}
