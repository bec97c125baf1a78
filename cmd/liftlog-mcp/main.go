package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/mcp"
	"github.com/claude/liftlog/internal/storage"
	"github.com/claude/liftlog/internal/store"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Logs go to stderr: stdout is the MCP stdio transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	kv, closeKV, err := openKV(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer closeKV()

	st := store.Open(context.Background(), kv, log)

	s := mcp.New(st, Version, log)
	log.Info("LiftLog MCP server starting", "transport", "stdio", "version", Version)

	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}

	if err := st.Save(context.Background()); err != nil {
		log.Error("final state save failed", "error", err)
	}
}

// openKV opens the configured storage backend and returns it with a close
// function.
func openKV(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.KV, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		kv, err := storage.OpenSQLiteKV(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { kv.Close() }, nil
	case config.BackendPostgres:
		kv, err := storage.NewPostgresKV(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { kv.Close() }, nil
	default:
		kv, err := storage.NewFileKV(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() {}, nil
	}
}
