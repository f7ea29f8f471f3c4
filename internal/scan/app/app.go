package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/dietlens/platescan/internal/scan/http"
	"github.com/dietlens/platescan/internal/scan/media"
	"github.com/dietlens/platescan/internal/scan/service"
	"github.com/dietlens/platescan/internal/scan/store"
	"github.com/dietlens/platescan/internal/scan/store/drivers/sqlite"
	"github.com/dietlens/platescan/internal/scan/vision"
	"github.com/dietlens/platescan/pkg/jwtx"
	"github.com/dietlens/platescan/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the scan service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	visionc vision.Client
	storage media.Storage

	// Services
	userService     *service.UserService
	scanService     *service.ScanService
	historyService  *service.HistoryService
	feedbackService *service.FeedbackService
	profileService  *service.ProfileService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "scan-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initMedia(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.visionc = vision.NewGeminiClient(
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		cfg.GeminiBaseURL,
		cfg.VisionTimeout,
	)

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("scan service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down scan service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("scan service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations. The
// _pragma parameters use modernc's DSN syntax and apply to every pooled
// connection.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMedia picks the profile picture backend. Cloudinary when configured,
// a local directory otherwise.
func (app *Application) initMedia() error {
	if app.cfg.CloudinaryCloudName != "" {
		storage, err := media.NewCloudinaryStorage(
			app.cfg.CloudinaryCloudName,
			app.cfg.CloudinaryAPIKey,
			app.cfg.CloudinaryAPISecret,
			app.cfg.CloudinaryFolder,
		)
		if err != nil {
			return fmt.Errorf("failed to initialize cloudinary: %w", err)
		}
		app.storage = storage
		app.logger.Info("profile pictures stored in cloudinary", "folder", app.cfg.CloudinaryFolder)
		return nil
	}

	storage, err := media.NewDirStorage(app.cfg.MediaDir)
	if err != nil {
		return fmt.Errorf("failed to initialize media directory: %w", err)
	}
	app.storage = storage
	app.logger.Info("profile pictures stored locally", "dir", app.cfg.MediaDir)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db}
	app.scanService = &service.ScanService{Store: app.db, Vision: app.visionc}
	app.historyService = &service.HistoryService{Store: app.db}
	app.feedbackService = &service.FeedbackService{Store: app.db}
	app.profileService = &service.ProfileService{Store: app.db, Media: app.storage}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	secret := []byte(app.cfg.SessionSecret)
	signer := &jwtx.Signer{Secret: secret, Issuer: app.cfg.Issuer, TTL: app.cfg.SessionTTL}
	verifier := &jwtx.Verifier{Secret: secret, Issuer: app.cfg.Issuer}

	router := httpapi.NewRouter(signer, verifier, BuildVersion, app.db, app.logger)

	// Wire services to router
	router.UserService = app.userService
	router.ScanService = app.scanService
	router.HistoryService = app.historyService
	router.FeedbackService = app.feedbackService
	router.ProfileService = app.profileService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
