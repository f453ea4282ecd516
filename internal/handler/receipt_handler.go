// internal/handler/receipt_handler.go
package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"escpos-service/internal/model"
	"escpos-service/internal/repository"
	"escpos-service/internal/service"
	"escpos-service/internal/utils"
)

// ReceiptHandler handles receipt upload and lookup requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	maxBodyBytes   int64
	logger         *utils.ServiceLogger
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, maxBodyBytes int64, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		maxBodyBytes:   maxBodyBytes,
		logger:         utils.NewServiceLogger(logger, "receipt-handler"),
	}
}

// readBody reads an octet-stream body, answering 400/413 itself on failure
func readBody(c *gin.Context, limit int64) ([]byte, bool) {
	body := c.Request.Body
	if limit > 0 {
		body = http.MaxBytesReader(c.Writer, body, limit)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Receipt stream too large", err)
			return nil, false
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to read request body", err)
		return nil, false
	}
	if len(raw) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Request body is empty", service.ErrEmptyReceipt)
		return nil, false
	}
	return raw, true
}

// CreateReceipt decodes an uploaded ESC/POS stream and forwards its order
// @Summary Process a receipt
// @Description Decode a raw ESC/POS stream, store it, parse the order and send it to the order API
// @Tags Receipts
// @Accept octet-stream
// @Produce json
// @Param merchant_id path string true "Merchant ID"
// @Param stream body []byte true "Raw ESC/POS bytes"
// @Success 201 {object} utils.APIResponse{data=service.ProcessResult} "Receipt processed"
// @Failure 400 {object} utils.APIResponse "Empty or unreadable body"
// @Failure 413 {object} utils.APIResponse "Body too large"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/receipts/{merchant_id} [post]
func (h *ReceiptHandler) CreateReceipt(c *gin.Context) {
	raw, ok := readBody(c, h.maxBodyBytes)
	if !ok {
		return
	}

	merchantID := c.Param("merchant_id")
	result, err := h.receiptService.Process(c.Request.Context(), merchantID, raw, model.ReceiptSourceHTTP)
	if err != nil {
		h.logger.Error("Failed to process receipt", zap.Error(err), zap.String("merchant_id", merchantID))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to process receipt", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Receipt processed successfully", result)
}

// CreateReceiptLegacy answers with the decoded text as a bare JSON string
// @Summary Process a receipt (legacy)
// @Description Same as POST /api/v1/receipts/{merchant_id} but answers with the decoded text only
// @Tags Receipts
// @Accept octet-stream
// @Produce json
// @Param merchant_id path string true "Merchant ID"
// @Param stream body []byte true "Raw ESC/POS bytes"
// @Success 200 {string} string "Decoded text"
// @Failure 400 {object} utils.APIResponse "Empty or unreadable body"
// @Router /receipt/create/{merchant_id} [post]
func (h *ReceiptHandler) CreateReceiptLegacy(c *gin.Context) {
	raw, ok := readBody(c, h.maxBodyBytes)
	if !ok {
		return
	}

	result, err := h.receiptService.Process(c.Request.Context(), c.Param("merchant_id"), raw, model.ReceiptSourceHTTP)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to process receipt", err)
		return
	}
	c.JSON(http.StatusOK, result.Text)
}

// ListReceipts lists stored receipts
// @Summary List receipts
// @Description List stored receipts, newest first
// @Tags Receipts
// @Produce json
// @Param merchant_id query string false "Filter by merchant"
// @Param sent_to_api query bool false "Filter by delivery state"
// @Param since query string false "Only receipts captured at or after this RFC 3339 time"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} utils.APIResponse{data=object{receipts=[]model.Receipt,total=int}} "Receipts retrieved"
// @Failure 400 {object} utils.APIResponse "Invalid filter"
// @Router /api/v1/receipts [get]
func (h *ReceiptHandler) ListReceipts(c *gin.Context) {
	filter := &model.ReceiptFilter{MerchantID: c.Query("merchant_id")}
	errs := map[string]string{}

	if v := c.Query("sent_to_api"); v != "" {
		sent, err := strconv.ParseBool(v)
		if err != nil {
			errs["sent_to_api"] = "must be true or false"
		}
		filter.SentToAPI = &sent
	}
	if v := c.Query("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			errs["since"] = "must be an RFC 3339 timestamp"
		}
		filter.Since = &since
	}
	for key, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		if v := c.Query(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs[key] = "must be an integer"
			}
			*dst = n
		}
	}
	if len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	receipts, total, err := h.receiptService.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list receipts", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list receipts", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Receipts retrieved successfully", gin.H{
		"receipts": receipts,
		"total":    total,
		"limit":    filter.Limit,
		"offset":   filter.Offset,
	})
}

// GetReceipt returns one stored receipt
// @Summary Get a receipt
// @Tags Receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} utils.APIResponse{data=model.Receipt} "Receipt retrieved"
// @Failure 400 {object} utils.APIResponse "Invalid receipt ID"
// @Failure 404 {object} utils.APIResponse "Receipt not found"
// @Router /api/v1/receipts/{id} [get]
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	receipt, ok := h.lookup(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Receipt retrieved successfully", receipt)
}

// GetReceiptRaw returns the captured ESC/POS bytes
// @Summary Download a receipt stream
// @Tags Receipts
// @Produce octet-stream
// @Param id path string true "Receipt ID"
// @Success 200 {file} binary "Raw ESC/POS stream"
// @Failure 404 {object} utils.APIResponse "Receipt not found"
// @Router /api/v1/receipts/{id}/raw [get]
func (h *ReceiptHandler) GetReceiptRaw(c *gin.Context) {
	receipt, ok := h.lookup(c)
	if !ok {
		return
	}
	name := receipt.CreatedAt.Format("2006-01-02-15-04-05") + ".bin"
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, "application/octet-stream", receipt.Raw)
}

func (h *ReceiptHandler) lookup(c *gin.Context) (*model.Receipt, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid receipt ID", err)
		return nil, false
	}

	receipt, err := h.receiptService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Receipt not found", err)
			return nil, false
		}
		h.logger.Error("Failed to get receipt", zap.Error(err), zap.String("id", id.String()))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to get receipt", err)
		return nil, false
	}
	return receipt, true
}
