package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tailscale.com/tsnet"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/server"
	"github.com/claude/liftlog/internal/storage"
	"github.com/claude/liftlog/internal/store"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("LiftLog starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Open storage backend
	kv, closeKV, err := openKV(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer closeKV()

	// Hydrate state
	st := store.Open(context.Background(), kv, log)

	// Create server
	srv := server.New(st, cfg.Auth.APIKey, log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}

	// Flush state one last time so nothing in flight is lost.
	if err := st.Save(shutdownCtx); err != nil {
		log.Error("final state save failed", "error", err)
	}
	log.Info("server stopped")
}

// openKV opens the configured storage backend and returns it with a close
// function. The postgres backend runs migrations before connecting.
func openKV(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.KV, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		kv, err := storage.NewFileKV(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		log.Info("storage opened", "backend", "file", "dir", cfg.Storage.Dir)
		return kv, func() {}, nil

	case config.BackendSQLite:
		kv, err := storage.OpenSQLiteKV(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Info("storage opened", "backend", "sqlite", "path", cfg.Storage.Path)
		return kv, func() { kv.Close() }, nil

	case config.BackendPostgres:
		if err := storage.RunMigrations(cfg.Storage.DSN, "migrations"); err != nil {
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied")
		kv, err := storage.NewPostgresKV(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, nil, err
		}
		log.Info("storage opened", "backend", "postgres")
		return kv, func() { kv.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
