// internal/repository/interfaces.go
package repository

import (
	"context"
	"errors"
	"time"

	"escpos-service/internal/model"

	"github.com/google/uuid"
)

// ErrReceiptNotFound is returned when no receipt has the requested id
var ErrReceiptNotFound = errors.New("receipt not found")

// ReceiptRepository defines receipt data access operations
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *model.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Receipt, error)
	List(ctx context.Context, filter *model.ReceiptFilter) ([]*model.Receipt, int, error)

	// MarkSent records that the parsed order was accepted by the order API
	MarkSent(ctx context.Context, id uuid.UUID, order model.JSONObject, sentAt time.Time) error

	// Cleanup
	DeleteOlderThan(ctx context.Context, olderThan time.Time) (int64, error)
	Count(ctx context.Context) (int, error)
}
