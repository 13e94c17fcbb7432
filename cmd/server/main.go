package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ugaemi/islet-server/internal/config"
	"github.com/ugaemi/islet-server/internal/handler"
	"github.com/ugaemi/islet-server/internal/session"
	"github.com/ugaemi/islet-server/internal/store"
	"github.com/ugaemi/islet-server/internal/world"
	"github.com/ugaemi/islet-server/internal/ws"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	if err := run(cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tuning, err := config.LoadTuning(cfg.TuningFile)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	w := world.Generate(world.DefaultGenConfig(cfg.WorldSeed))
	slog.Info("world generated", "seed", cfg.WorldSeed, "cols", w.Cols(), "rows", w.Rows(), "spawns", len(w.SlimeSpawns()))

	sm := session.NewManager(w, st, session.Options{
		Tuning:   tuning,
		Seed:     cfg.WorldSeed,
		Autosave: time.Duration(cfg.AutosaveSeconds) * time.Second,
	})

	hub := ws.NewHub()
	router := handler.NewRouter(sm)
	hub.OnMessage = router.HandleMessage
	hub.OnDisconnect = router.HandleDisconnect

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler.SetupRoutes(hub, sm),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})
	g.Go(func() error {
		slog.Info("server starting", "addr", srv.Addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		httpErr := srv.Shutdown(sctx)
		return errors.Join(httpErr, sm.Shutdown(sctx))
	})
	return g.Wait()
}

func openStore(ctx context.Context, cfg *config.Config) (store.SlotStore, error) {
	switch cfg.StoreDriver {
	case "postgres":
		return store.NewPostgresStore(ctx, cfg.DatabaseURL)
	case "file":
		return store.NewFileStore(cfg.SaveDir)
	case "memory":
		slog.Warn("using in-memory store, saves are lost on exit")
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func setupLogger(cfg *config.Config) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}
