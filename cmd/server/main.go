package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/L0dyv/litepad/internal/server/handlers"
	"github.com/L0dyv/litepad/internal/server/hub"
	"github.com/L0dyv/litepad/internal/server/jwt"
	"github.com/L0dyv/litepad/internal/server/middleware"
	"github.com/L0dyv/litepad/internal/server/relay"
	"github.com/L0dyv/litepad/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "litepad-relay.db", "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing secret (or LITEPAD_JWT_SECRET env)")
	accessTTL := flag.Duration("access-ttl", 15*time.Minute, "Access token lifetime")
	refreshTTL := flag.Duration("refresh-ttl", 720*time.Hour, "Refresh token lifetime")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	secret := *jwtSecret
	if secret == "" {
		secret = os.Getenv("LITEPAD_JWT_SECRET")
	}
	if secret == "" {
		logger.Error("JWT secret is required: use -jwt-secret or LITEPAD_JWT_SECRET")
		os.Exit(1)
	}

	if err := run(logger, *addr, *dbPath, secret, *accessTTL, *refreshTTL); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath, secret string, accessTTL, refreshTTL time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	tokens := jwt.NewService(secret, accessTTL, refreshTTL)
	relaySvc := relay.NewService(store, logger)

	authHandler := handlers.NewAuthHandler(logger, store, store, tokens)
	syncHandler := handlers.NewSyncHandler(logger, relaySvc)
	attachmentsHandler := handlers.NewAttachmentsHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store, Version)
	wsHandler := hub.NewHandler(hub.New(logger), relaySvc, store, tokens, logger)

	router := newRouter(logger, tokens, authHandler, syncHandler, attachmentsHandler, healthHandler, wsHandler)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("relay listening", "addr", addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}
	return nil
}

func newRouter(
	logger *slog.Logger,
	tokens *jwt.Service,
	authHandler *handlers.AuthHandler,
	syncHandler *handlers.SyncHandler,
	attachmentsHandler *handlers.AttachmentsHandler,
	healthHandler *handlers.HealthHandler,
	wsHandler *hub.Handler,
) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	router.Handle("/api/v1/ws", wsHandler).Methods(http.MethodGet)

	// Auth-эндпоинты с защитой от перебора паролей
	auth := router.PathPrefix("/api/v1/auth").Subrouter()
	auth.Use(middleware.RateLimitMiddleware(30, time.Minute, logger))
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", authHandler.Refresh).Methods(http.MethodPost)
	auth.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Эндпоинты, требующие валидный access token
	authed := router.PathPrefix("/api/v1").Subrouter()
	authed.Use(middleware.AuthMiddleware(logger, tokens))
	authed.HandleFunc("/sync/full", syncHandler.Full).Methods(http.MethodGet)
	authed.HandleFunc("/sync/incremental", syncHandler.Incremental).Methods(http.MethodGet)
	authed.HandleFunc("/sync/push", syncHandler.Push).Methods(http.MethodPost)
	authed.HandleFunc("/attachments/announce", attachmentsHandler.Announce).Methods(http.MethodPost)
	authed.HandleFunc("/attachments/upload/{hash}", attachmentsHandler.Upload).Methods(http.MethodPut)
	authed.HandleFunc("/attachments/download/{hash}", attachmentsHandler.Download).Methods(http.MethodGet)
	authed.HandleFunc("/attachments/batch-metadata", attachmentsHandler.BatchMetadata).Methods(http.MethodPost)

	chain := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/health", "/api/v1/ws"})(router),
	)
	return chain
}

func printVersion() {
	fmt.Printf("LitePad Relay\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
