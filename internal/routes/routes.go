// internal/routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/database"
	"escpos-service/internal/handler"
	"escpos-service/internal/middleware"
	"escpos-service/internal/repository"
	"escpos-service/internal/service"
	"escpos-service/internal/utils"
)

// Router holds all dependencies for routing
type Router struct {
	config         *config.Config
	logger         *zap.Logger
	db             *database.DB
	receiptRepo    repository.ReceiptRepository
	receiptService *service.ReceiptService
	capture        handler.CaptureStatus
	ports          handler.PortLister
	wsHandler      *handler.WebSocketHandler
}

// NewRouter creates a new router instance. db and capture may be nil when
// the service runs without postgres or without a capture source.
func NewRouter(
	config *config.Config,
	logger *zap.Logger,
	db *database.DB,
	receiptRepo repository.ReceiptRepository,
	receiptService *service.ReceiptService,
	capture handler.CaptureStatus,
	ports handler.PortLister,
	wsHandler *handler.WebSocketHandler,
) *Router {
	return &Router{
		config:         config,
		logger:         logger,
		db:             db,
		receiptRepo:    receiptRepo,
		receiptService: receiptService,
		capture:        capture,
		ports:          ports,
		wsHandler:      wsHandler,
	}
}

// SetupRouter creates and configures the Gin router
func (r *Router) SetupRouter() *gin.Engine {
	if r.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	r.addMiddleware(router)
	r.addRoutes(router)

	return router
}

// addMiddleware adds middleware to the router
func (r *Router) addMiddleware(router *gin.Engine) {
	router.Use(middleware.RecoveryMiddleware(r.logger))
	router.Use(middleware.RequestIDMiddleware())

	serviceLogger := utils.NewServiceLogger(r.logger, "http-server")
	router.Use(middleware.LoggingMiddleware(serviceLogger))

	router.Use(middleware.CORSMiddleware(&r.config.Security))

	r.logger.Info("Middleware configured")
}

// addRoutes sets up all application routes
func (r *Router) addRoutes(router *gin.Engine) {
	maxBody := r.config.Server.MaxBodyBytes

	healthHandler := handler.NewHealthHandler(r.db, r.receiptRepo, r.capture, r.config, r.logger)
	receiptHandler := handler.NewReceiptHandler(r.receiptService, maxBody, r.logger)
	decodeHandler := handler.NewDecodeHandler(r.receiptService.Decoder(), maxBody, r.logger)
	captureHandler := handler.NewCaptureHandler(r.ports, r.capture, &r.config.Capture, r.logger)

	r.addHealthRoutes(router, healthHandler)

	apiV1 := router.Group("/api/v1")
	r.addReceiptRoutes(apiV1, receiptHandler)
	apiV1.POST("/decode", decodeHandler.Decode)
	r.addCaptureRoutes(apiV1, captureHandler)

	// Path the POS bridge has always posted to
	router.POST("/receipt/create/:merchant_id", receiptHandler.CreateReceiptLegacy)

	if r.wsHandler != nil {
		router.GET("/ws/receipts", r.wsHandler.HandleReceiptFeed)
	}

	r.addDocumentationRoutes(router)

	r.logger.Info("All routes configured successfully")
}

// addHealthRoutes sets up health check routes
func (r *Router) addHealthRoutes(router *gin.Engine, handler *handler.HealthHandler) {
	health := router.Group("")
	{
		health.GET("/health", handler.HealthCheck)
		health.GET("/ready", handler.ReadinessCheck)
		health.GET("/live", handler.LivenessCheck)
	}
}

// addReceiptRoutes sets up receipt upload and lookup routes
func (r *Router) addReceiptRoutes(api *gin.RouterGroup, handler *handler.ReceiptHandler) {
	receipts := api.Group("/receipts")
	{
		receipts.GET("", handler.ListReceipts)
		receipts.POST("/:merchant_id", handler.CreateReceipt)
		receipts.GET("/:id", handler.GetReceipt)
		receipts.GET("/:id/raw", handler.GetReceiptRaw)
	}
}

// addCaptureRoutes sets up capture status and port discovery routes
func (r *Router) addCaptureRoutes(api *gin.RouterGroup, handler *handler.CaptureHandler) {
	capture := api.Group("/capture")
	{
		capture.GET("/status", handler.GetStatus)
		capture.GET("/ports", handler.ListPorts)
	}
}

// addDocumentationRoutes sets up documentation routes
func (r *Router) addDocumentationRoutes(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
}
