package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/torqueprep/backend/internal/api"
	"github.com/torqueprep/backend/internal/domain/selection"
	"github.com/torqueprep/backend/internal/domain/session"
	"github.com/torqueprep/backend/internal/infrastructure/config"
	"github.com/torqueprep/backend/internal/service"
	"github.com/torqueprep/backend/internal/source"
	"github.com/torqueprep/backend/internal/store"

	_ "github.com/torqueprep/backend/docs" // generated swagger docs
)

// @title           TorquePrep API
// @version         1.0
// @description     Exam question practice engine — filter, practice, and track progress on a personal question bank.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	kv, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	var provider source.Provider
	if cfg.BankURL != "" {
		provider = source.NewHTTP(cfg.BankURL)
	} else {
		provider = source.NewFile(cfg.BankPath)
	}

	sess := session.New(kv, cfg.StateKey)
	sel := selection.New(kv, cfg.SelectedKey)
	practice := service.NewPracticeService(provider, sess, sel, logger)

	total := practice.Reload(context.Background())
	logger.Info("question bank loaded", "questions", total)

	handler := api.NewHandler(practice, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
