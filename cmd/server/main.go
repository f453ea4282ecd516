// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "escpos-service/docs"
	"escpos-service/internal/capture"
	"escpos-service/internal/config"
	"escpos-service/internal/database"
	"escpos-service/internal/discovery"
	serialscan "escpos-service/internal/discovery/serial"
	usbscan "escpos-service/internal/discovery/usb"
	"escpos-service/internal/handler"
	"escpos-service/internal/model"
	"escpos-service/internal/orderclient"
	"escpos-service/internal/repository"
	"escpos-service/internal/routes"
	"escpos-service/internal/service"
	"escpos-service/internal/utils"
	"escpos-service/pkg/escpos"
)

const cleanupInterval = time.Hour

// Application represents the main application
type Application struct {
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	database *database.DB
	migrator *database.Migrator

	receiptRepo    repository.ReceiptRepository
	receiptService *service.ReceiptService

	eventBus  *handler.EventBus
	wsHandler *handler.WebSocketHandler
	capturer  *capture.Capturer
	ports     *discovery.Manager

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// @title ESC/POS Receipt Service API
// @version 1.0.0
// @description Decodes ESC/POS printer streams into receipt text and forwards parsed orders

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8085
// @BasePath /
func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	app, err := NewApplication(*configPath)
	if err != nil {
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if err := app.Start(); err != nil {
		app.logger.Fatal("Failed to start application", zap.Error(err))
	}
}

// NewApplication creates a new application instance
func NewApplication(configPath string) (*Application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := utils.NewLogger(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	serviceLogger := utils.NewServiceLogger(logger, "escpos-service")
	serviceLogger.LogServiceStart(cfg.App.Version, cfg.Decoder)

	ctx, cancel := context.WithCancel(context.Background())
	app := &Application{
		config: cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	if err := app.initializeDatabase(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app.initializeRepositories()

	if err := app.initializeServices(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if err := app.initializeCapture(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize capture: %w", err)
	}

	app.initializeServer()

	return app, nil
}

// initializeDatabase connects to postgres and migrates it when enabled
func (app *Application) initializeDatabase() error {
	if !app.config.Database.Enabled {
		app.logger.Info("Database disabled, keeping receipts in memory")
		return nil
	}

	ctx, cancel := context.WithTimeout(app.ctx, 30*time.Second)
	defer cancel()

	db, err := database.New(ctx, app.config, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create database connection: %w", err)
	}
	app.database = db

	app.migrator = database.NewMigrator(db, app.logger, &app.config.Database)
	if err := app.migrator.Up(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	app.logger.Info("Database initialized successfully")
	return nil
}

// initializeRepositories creates repository instances
func (app *Application) initializeRepositories() {
	if app.database != nil {
		app.receiptRepo = repository.NewReceiptRepository(app.database, app.logger)
	} else {
		app.receiptRepo = repository.NewMemoryRepository()
	}
	app.logger.Info("Repositories initialized successfully")
}

// initializeServices creates the decoder, the order client and the receipt service
func (app *Application) initializeServices() error {
	decoderConfig, err := app.config.Decoder.EscPOS()
	if err != nil {
		return fmt.Errorf("invalid decoder configuration: %w", err)
	}
	decoder, err := escpos.New(decoderConfig, escpos.WithLogger(app.logger))
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	var orders service.OrderSender
	if app.config.OrderAPI.Enabled {
		orders = orderclient.New(&app.config.OrderAPI, app.logger)
	}

	app.eventBus = handler.NewEventBus(app.logger)
	app.wsHandler = handler.NewWebSocketHandler(app.eventBus, app.config.Security.AllowedOrigins, app.logger)

	app.receiptService = service.NewReceiptService(
		decoder,
		app.receiptRepo,
		orders,
		app.eventBus,
		app.config,
		app.logger,
	)

	app.logger.Info("Services initialized successfully",
		zap.String("device", string(decoderConfig.Device)),
		zap.Int("code_page", decoderConfig.CodePage),
		zap.Bool("order_api", app.config.OrderAPI.Enabled),
	)
	return nil
}

// initializeCapture builds the capturer; the source is opened by its Run loop
func (app *Application) initializeCapture() error {
	app.ports = discovery.NewManager(app.logger)
	app.ports.Register(serialscan.NewScanner(app.logger))
	app.ports.Register(usbscan.NewScanner(app.logger))

	if !app.config.Capture.Enabled {
		return nil
	}

	source, err := capture.NewSource(&app.config.Capture, app.logger)
	if err != nil {
		return err
	}
	app.capturer, err = capture.NewCapturer(source, &app.config.Capture, app.logger)
	return err
}

// initializeServer sets up HTTP server and routes
func (app *Application) initializeServer() {
	var captureStatus handler.CaptureStatus
	if app.capturer != nil {
		captureStatus = app.capturer
	}

	routerManager := routes.NewRouter(
		app.config,
		app.logger,
		app.database,
		app.receiptRepo,
		app.receiptService,
		captureStatus,
		app.ports,
		app.wsHandler,
	)
	router := routerManager.SetupRouter()

	app.server = &http.Server{
		Addr:         app.config.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  app.config.Server.ReadTimeout,
		WriteTimeout: app.config.Server.WriteTimeout,
		IdleTimeout:  app.config.Server.IdleTimeout,
	}

	app.logger.Info("HTTP server initialized",
		zap.String("address", app.config.GetServerAddr()),
		zap.Bool("tls_enabled", app.config.Server.TLS.Enabled),
	)
}

// startBackgroundServices starts background services
func (app *Application) startBackgroundServices() {
	app.goRun(app.eventBus.Start)
	app.goRun(app.wsHandler.Run)
	app.goRun(app.startCleanupService)

	if app.capturer != nil {
		app.goRun(func() {
			if err := app.capturer.Run(app.ctx); err != nil {
				app.logger.Error("Capture loop stopped", zap.Error(err))
			}
		})
		app.goRun(app.processCapturedReceipts)
	}

	app.logger.Info("Background services started")
}

func (app *Application) goRun(fn func()) {
	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		fn()
	}()
}

// processCapturedReceipts feeds every captured receipt through the receipt service
func (app *Application) processCapturedReceipts() {
	merchantID := app.config.Capture.MerchantID

	for receipt := range app.capturer.Receipts() {
		app.eventBus.Publish(model.NewReceiptEvent(model.EventReceiptCaptured, uuid.Nil, merchantID, string(receipt.Source), model.JSONObject{
			"bytes": len(receipt.Data),
			"file":  receipt.File,
		}))

		ctx, cancel := context.WithTimeout(app.ctx, time.Minute)
		result, err := app.receiptService.Process(ctx, merchantID, receipt.Data, receipt.Source)
		cancel()
		if err != nil {
			app.logger.Error("Failed to process captured receipt", zap.Error(err), zap.String("file", receipt.File))
			app.eventBus.Publish(model.NewReceiptEvent(model.EventCaptureError, uuid.Nil, merchantID, string(receipt.Source), model.JSONObject{
				"error": err.Error(),
				"file":  receipt.File,
			}))
			continue
		}

		app.logger.Info("Captured receipt processed",
			zap.String("receipt_id", result.ReceiptID.String()),
			zap.Bool("sent_to_api", result.SentToAPI),
			zap.Int("records", result.RecordCount),
		)
	}
}

// startCleanupService removes receipts past the retention window
func (app *Application) startCleanupService() {
	if app.config.Database.Retention <= 0 {
		return
	}

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	app.logger.Info("Cleanup service started", zap.Duration("retention", app.config.Database.Retention))

	for {
		select {
		case <-app.ctx.Done():
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(app.ctx, 10*time.Minute)
		var deleted int64
		var err error
		if app.migrator != nil {
			deleted, err = app.migrator.RunCleanup(ctx)
		} else {
			deleted, err = app.receiptService.Cleanup(ctx)
		}
		cancel()

		if err != nil {
			app.logger.Error("Failed to cleanup old receipts", zap.Error(err))
		} else if deleted > 0 {
			app.logger.Info("Cleaned up old receipts", zap.Int64("deleted", deleted))
		}
	}
}

// waitForShutdown waits for shutdown signal and performs graceful shutdown
func (app *Application) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	app.logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	app.shutdown()
}

// shutdown performs graceful shutdown
func (app *Application) shutdown() {
	serviceLogger := utils.NewServiceLogger(app.logger, "escpos-service")
	serviceLogger.LogServiceStop("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		app.logger.Info("HTTP server stopped")
	}

	app.cancel()
	app.wsHandler.Stop()
	app.eventBus.Stop()
	app.wg.Wait()

	if app.database != nil {
		if err := app.database.Close(); err != nil {
			app.logger.Error("Database close error", zap.Error(err))
		} else {
			app.logger.Info("Database connection closed")
		}
	}

	app.logger.Info("Application shutdown completed")

	if err := utils.CloseLogger(app.logger); err != nil {
		fmt.Printf("Logger close error: %v\n", err)
	}
}

// Start runs the HTTP server and background services until a shutdown signal
func (app *Application) Start() error {
	go func() {
		app.logger.Info("Starting HTTP server",
			zap.String("address", app.server.Addr),
		)

		var err error
		if app.config.Server.TLS.Enabled {
			err = app.server.ListenAndServeTLS(
				app.config.Server.TLS.CertFile,
				app.config.Server.TLS.KeyFile,
			)
		} else {
			err = app.server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	app.startBackgroundServices()
	app.waitForShutdown()

	return nil
}
