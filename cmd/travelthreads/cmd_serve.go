package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"travelthreads/app/routes"
	"travelthreads/app/services"
)

const shutdownTimeout = 5 * time.Second

func runServe(cmd *cobra.Command, opts *options) error {
	e, err := newEnv(cmd, opts)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	threads := e.threadService()
	stopped := make(chan struct{})
	go func() {
		threads.Run(ctx)
		close(stopped)
	}()

	server := &http.Server{
		Addr:              e.cfg.Addr,
		Handler:           routes.SetupRoutes(threads, services.NewSearchService(threads, e.engine), e.logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		e.logger.Info("listening", "addr", e.cfg.Addr, "posts", e.tree.Len(), "replayed", e.replayed)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
	case <-ctx.Done():
		e.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = server.Shutdown(shutdownCtx)
	}
	stop()
	<-stopped

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
