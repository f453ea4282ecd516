// internal/service/receipt_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/model"
	"escpos-service/internal/receipt"
	"escpos-service/internal/repository"
	"escpos-service/internal/utils"
	"escpos-service/pkg/escpos"
)

// ErrEmptyReceipt is returned for a receipt stream without bytes
var ErrEmptyReceipt = errors.New("receipt stream is empty")

// OrderSender delivers parsed orders
type OrderSender interface {
	Send(ctx context.Context, order *model.Order) error
}

// EventPublisher receives receipt lifecycle events
type EventPublisher interface {
	Publish(event *model.ReceiptEvent)
}

// BitmapInfo describes one extracted raster image
type BitmapInfo struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Layout string `json:"layout"`
}

// ProcessResult is the outcome of one processed receipt
type ProcessResult struct {
	ReceiptID    uuid.UUID    `json:"receipt_id"`
	Text         string       `json:"text"`
	SentToAPI    bool         `json:"sent_to_api"`
	Order        *model.Order `json:"order,omitempty"`
	ParseError   string       `json:"parse_error,omitempty"`
	RecordCount  int          `json:"record_count"`
	DecodeErrors int          `json:"decode_errors"`
	Bitmaps      []BitmapInfo `json:"bitmaps"`
}

// ReceiptService decodes, stores and forwards captured receipts
type ReceiptService struct {
	decoder *escpos.Decoder
	repo    repository.ReceiptRepository
	orders  OrderSender
	events  EventPublisher
	config  *config.Config
	logger  *utils.ServiceLogger
	now     func() time.Time
}

// NewReceiptService creates a new receipt service. orders and events may be nil.
func NewReceiptService(
	decoder *escpos.Decoder,
	repo repository.ReceiptRepository,
	orders OrderSender,
	events EventPublisher,
	config *config.Config,
	logger *zap.Logger,
) *ReceiptService {
	return &ReceiptService{
		decoder: decoder,
		repo:    repo,
		orders:  orders,
		events:  events,
		config:  config,
		logger:  utils.NewServiceLogger(logger, "receipt-service"),
		now:     time.Now,
	}
}

// Process decodes raw, stores the receipt, parses its order and sends it.
// Parse and send failures are reported in the result, not as errors.
func (s *ReceiptService) Process(ctx context.Context, merchantID string, raw []byte, source model.ReceiptSource) (*ProcessResult, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyReceipt
	}

	rec := &model.Receipt{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Source:     source,
		Raw:        raw,
		CreatedAt:  s.now().UTC(),
	}

	opLogger := utils.NewOperationLogger(s.logger.Logger, "process_receipt", rec.ID.String())
	opLogger.Start(
		zap.String("merchant_id", merchantID),
		zap.String("source", string(source)),
		zap.Int("bytes", len(raw)),
	)

	decoded, err := s.decoder.Decode(raw)
	if err != nil {
		opLogger.Error(err)
		return nil, fmt.Errorf("failed to decode receipt: %w", err)
	}
	rec.Text = decoded.Text
	rec.RecordCount = len(decoded.Records)
	rec.BitmapCount = len(decoded.Bitmaps)
	rec.DecodeErrors = len(decoded.Errors)
	opLogger.Step("Receipt decoded",
		zap.Int("records", rec.RecordCount),
		zap.Int("bitmaps", rec.BitmapCount),
		zap.Int("decode_errors", rec.DecodeErrors),
	)

	if err := s.repo.Create(ctx, rec); err != nil {
		opLogger.Error(err)
		return nil, fmt.Errorf("failed to store receipt: %w", err)
	}
	s.publish(model.EventReceiptDecoded, rec, model.JSONObject{
		"text":          rec.Text,
		"record_count":  rec.RecordCount,
		"bitmap_count":  rec.BitmapCount,
		"decode_errors": rec.DecodeErrors,
	})

	result := &ProcessResult{
		ReceiptID:    rec.ID,
		Text:         rec.Text,
		RecordCount:  rec.RecordCount,
		DecodeErrors: rec.DecodeErrors,
		Bitmaps:      bitmapInfo(decoded.Bitmaps),
	}

	order, err := receipt.Parse(rec.Text, merchantID, rec.CreatedAt)
	if err != nil {
		result.ParseError = err.Error()
		opLogger.Success(zap.Bool("order_parsed", false), zap.String("reason", err.Error()))
		return result, nil
	}
	result.Order = order
	opLogger.Step("Order parsed", zap.String("place_id", order.PlaceID), zap.Int("items", len(order.Items)))

	if s.orders == nil || !s.config.OrderAPI.Enabled {
		opLogger.Success(zap.Bool("order_parsed", true), zap.Bool("sent_to_api", false))
		return result, nil
	}

	if err := s.orders.Send(ctx, order); err != nil {
		s.logger.Warn("Failed to send order", zap.String("receipt_id", rec.ID.String()), zap.Error(err))
		s.publish(model.EventOrderFailed, rec, model.JSONObject{"error": err.Error()})
		opLogger.Success(zap.Bool("order_parsed", true), zap.Bool("sent_to_api", false))
		return result, nil
	}

	orderData, err := model.ToJSONObject(order)
	if err != nil {
		s.logger.Warn("Failed to encode order", zap.Error(err))
	}
	if err := s.repo.MarkSent(ctx, rec.ID, orderData, s.now().UTC()); err != nil {
		s.logger.Warn("Failed to mark receipt as sent", zap.String("receipt_id", rec.ID.String()), zap.Error(err))
	}
	result.SentToAPI = true
	s.publish(model.EventOrderSent, rec, orderData)

	opLogger.Success(zap.Bool("order_parsed", true), zap.Bool("sent_to_api", true))
	return result, nil
}

// Get returns a stored receipt
func (s *ReceiptService) Get(ctx context.Context, id uuid.UUID) (*model.Receipt, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns stored receipts matching filter
func (s *ReceiptService) List(ctx context.Context, filter *model.ReceiptFilter) ([]*model.Receipt, int, error) {
	return s.repo.List(ctx, filter)
}

// Cleanup removes receipts older than the configured retention
func (s *ReceiptService) Cleanup(ctx context.Context) (int64, error) {
	retention := s.config.Database.Retention
	if retention <= 0 {
		return 0, nil
	}
	return s.repo.DeleteOlderThan(ctx, s.now().Add(-retention))
}

// Decoder exposes the configured decoder
func (s *ReceiptService) Decoder() *escpos.Decoder {
	return s.decoder
}

func (s *ReceiptService) publish(eventType model.EventType, rec *model.Receipt, data model.JSONObject) {
	if s.events == nil {
		return
	}
	s.events.Publish(model.NewReceiptEvent(eventType, rec.ID, rec.MerchantID, string(rec.Source), data))
}

func bitmapInfo(bitmaps []*escpos.Bitmap) []BitmapInfo {
	info := make([]BitmapInfo, len(bitmaps))
	for i, b := range bitmaps {
		info[i] = BitmapInfo{Width: b.Width(), Height: b.Height(), Layout: string(b.Layout)}
	}
	return info
}
