package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/storage"
	"github.com/claude/liftlog/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	exportPath := flag.String("export", "", "write a full state export to this file")
	importPath := flag.String("import", "", "replace state with the document in this file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if (*exportPath == "") == (*importPath == "") {
		fmt.Fprintf(os.Stderr, "Usage: liftlog-backup -config config.yaml (-export backup.json | -import backup.json)\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	kv, closeKV, err := openKV(ctx, cfg)
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer closeKV()

	st := store.Open(ctx, kv, log)

	if *exportPath != "" {
		runExport(st, *exportPath, log)
		return
	}
	runImport(ctx, st, *importPath, log)
}

func runExport(st *store.Store, path string, log *slog.Logger) {
	data, err := st.Export()
	if err != nil {
		log.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Error("writing export file failed", "path", path, "error", err)
		os.Exit(1)
	}

	state := st.State()
	log.Info("export complete",
		"path", path,
		"routines", len(state.Routines),
		"exercises", len(state.ExerciseLibrary),
		"sessions", len(state.WorkoutHistory),
	)
}

func runImport(ctx context.Context, st *store.Store, path string, log *slog.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("reading import file failed", "path", path, "error", err)
		os.Exit(1)
	}
	if err := st.Import(data); err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}
	// Flush synchronously; the process exits right after.
	if err := st.Save(ctx); err != nil {
		log.Error("saving imported state failed", "error", err)
		os.Exit(1)
	}

	state := st.State()
	log.Info("import complete",
		"path", path,
		"routines", len(state.Routines),
		"exercises", len(state.ExerciseLibrary),
		"sessions", len(state.WorkoutHistory),
	)
}

func openKV(ctx context.Context, cfg *config.Config) (storage.KV, func(), error) {
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
