package service

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"placeholder/app/repositories"
	"placeholder/app/routes"

	"github.com/go-kit/log/level"
)

const shutdownTimeout = 5 * time.Second

// RunServer starts the stub API and blocks until interrupted.
func RunServer(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	addr := fs.String("addr", conf.Server.Addr, "listen address")
	memory := fs.Bool("memory", false, "keep the database in memory instead of at the configured path")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	path := dbPath
	if *memory {
		path = ""
	} else if err := os.MkdirAll(path, 0755); err != nil {
		fmt.Printf("Failed to create database directory: %v\n", err)
		return 1
	}
	db, err := repositories.Open(path)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer db.Close()

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		fmt.Printf("Failed to listen on %s: %v\n", *addr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, ln, routes.SetupRoutes(db, logger)); err != nil {
		fmt.Printf("Server error: %v\n", err)
		return 1
	}
	return 0
}

// serve runs handler on ln until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	level.Info(logger).Log("msg", "stub API listening", "addr", ln.Addr().String(), "db", dbPath)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	level.Info(logger).Log("msg", "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
