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

	"github.com/fibrecore/fibre/internal/errors"
	"github.com/fibrecore/fibre/pkg/render/domhost"
)

func devCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Serve the demo app in a browser over WebSocket",
		Long: `Start the domhost development server.

Mounts the counter demo onto a domhost Platform and serves it to any
number of browser tabs: each connects over WebSocket, receives the
current tree as an initial patch batch, and stays live for every
subsequent signal update.

Examples:
  fibre dev
  fibre dev --port=8080
  fibre dev --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 5173, "Port to run on")
	cmd.Flags().StringVarP(&host, "host", "H", "127.0.0.1", "Host to bind to")

	return cmd
}

func runDev(port int, host string) error {
	if port < 1 || port > 65535 {
		return errors.New("E241").WithDetail(fmt.Sprintf("got %d", port))
	}

	srv := domhost.NewServer()

	owner, err := srv.Mount(nil, counterApp())
	if err != nil {
		return err
	}
	defer owner.Dispose()

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{Addr: addr, Handler: srv.Handler()}

	printBanner()
	fmt.Println("  dev")
	fmt.Println()
	success("Serving on http://%s", addr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case <-sigCh:
		fmt.Println("\n\n  Shutting down...")
		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.New("E260").Wrap(err)
		}
		return nil
	}
}
