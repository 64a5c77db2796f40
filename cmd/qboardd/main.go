package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"qboard/internal/api"
	"qboard/internal/logger"
	"qboard/pkg/board/local"
)

// main launches the development question service.
func main() {
	os.Exit(run())
}

// run executes qboardd and returns an exit code.
func run() int {
	_ = godotenv.Load()
	configPath := flag.String("config", defaultConfigPath, "path to qboardd config")
	flag.Parse()

	explicit := *configPath != defaultConfigPath
	cfg, err := loadConfig(*configPath, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.Log.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	store := local.New()
	if cfg.Seed.Path != "" {
		seeded, err := local.NewFromSeedFile(cfg.Seed.Path)
		if err != nil {
			log.Error("seed load failed", zap.String("path", cfg.Seed.Path), zap.Error(err))
			return 1
		}
		store = seeded
		log.Info("seed loaded", zap.String("path", cfg.Seed.Path), zap.Int("questions", store.Len()))
	}

	handler := api.NewHandler(api.Config{Store: store, Log: log})
	mux := http.NewServeMux()
	mux.Handle("/healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	mux.Handle("/", handler)

	server := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: mux,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("qboardd listening", zap.String("addr", cfg.Server.ListenAddr))
	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	log.Info("qboardd stopped")
	return 0
}
