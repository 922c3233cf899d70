package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dverney/espalier"
	"github.com/dverney/espalier/internal/logging"
	httpadapter "github.com/dverney/espalier/pkg/adapters/http"
	"github.com/dverney/espalier/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve [path]",
	Short: "Serve the tree over HTTP",
	Long:  `Reconciles the source into a tree model and exposes it as a JSON API, rebuilding automatically when the source supports change notification.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		hidden, _ := cmd.Flags().GetBool("hidden")
		verbose, _ := cmd.Flags().GetBool("verbose")
		port, _ := cmd.Flags().GetString("port")

		logger := logging.New(logging.LevelFromVerbose(verbose))

		delegate, label, err := openSource(path, hidden)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		controller := espalier.NewTreeController(delegate, espalier.WithLogger(logger))
		server := httpadapter.NewServer(controller,
			httpadapter.WithLabeler(httpadapter.Labeler(label)),
			httpadapter.WithLogger(logger),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Rebuild on source changes when the delegate can watch.
		if w, ok := delegate.(ports.Watchable); ok {
			signals, err := w.Watch(ctx)
			if err != nil {
				logger.Warn("source watch unavailable", "error", err)
			} else {
				go func() {
					for range signals {
						if server.RebuildNow() {
							logger.Info("tree rebuilt after source change")
						}
					}
				}()
			}
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: server.Handler(),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting espalier server", "addr", srv.Addr, "source", path)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("server close failed", "error", err)
				}
			}
			logger.Info("espalier server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
