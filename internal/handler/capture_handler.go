// internal/handler/capture_handler.go
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/discovery"
	"escpos-service/internal/utils"
)

// PortLister finds candidate capture ports
type PortLister interface {
	ScanAll(ctx context.Context) ([]*discovery.Port, error)
}

// CaptureHandler reports capture state and lists attachable ports
type CaptureHandler struct {
	ports   PortLister
	capture CaptureStatus
	config  *config.CaptureConfig
	logger  *utils.ServiceLogger
}

// NewCaptureHandler creates a new capture handler. capture may be nil.
func NewCaptureHandler(ports PortLister, capture CaptureStatus, config *config.CaptureConfig, logger *zap.Logger) *CaptureHandler {
	return &CaptureHandler{
		ports:   ports,
		capture: capture,
		config:  config,
		logger:  utils.NewServiceLogger(logger, "capture-handler"),
	}
}

// CaptureStatusResponse describes the capture loop
type CaptureStatusResponse struct {
	Enabled    bool   `json:"enabled"`
	Source     string `json:"source,omitempty"`
	MerchantID string `json:"merchant_id,omitempty"`
	Connected  bool   `json:"connected"`
	BytesRead  int64  `json:"bytes_read"`
}

// GetStatus returns the capture loop state
// @Summary Capture status
// @Tags Capture
// @Produce json
// @Success 200 {object} utils.APIResponse{data=CaptureStatusResponse} "Capture status"
// @Router /api/v1/capture/status [get]
func (h *CaptureHandler) GetStatus(c *gin.Context) {
	status := &CaptureStatusResponse{Enabled: h.capture != nil}
	if h.capture != nil {
		status.Source = h.config.Source
		status.MerchantID = h.config.MerchantID
		status.Connected = h.capture.Connected()
		status.BytesRead = h.capture.BytesRead()
	}
	utils.SuccessResponse(c, http.StatusOK, "Capture status retrieved", status)
}

// ListPorts scans for serial and USB ports a printer feed can be captured from
// @Summary List capture ports
// @Description Scan serial ports and USB devices; known receipt printers come first
// @Tags Capture
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]discovery.Port} "Ports found"
// @Failure 500 {object} utils.APIResponse "Scan failed"
// @Router /api/v1/capture/ports [get]
func (h *CaptureHandler) ListPorts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	ports, err := h.ports.ScanAll(ctx)
	if err != nil {
		h.logger.Error("Port scan failed", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to scan ports", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Ports scanned successfully", ports)
}
