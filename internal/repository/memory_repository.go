// internal/repository/memory_repository.go
package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"escpos-service/internal/model"
)

// memoryRepository keeps receipts in process memory when no database is configured
type memoryRepository struct {
	mu       sync.RWMutex
	receipts map[uuid.UUID]*model.Receipt
}

// NewMemoryRepository creates an in-memory receipt repository
func NewMemoryRepository() ReceiptRepository {
	return &memoryRepository{receipts: make(map[uuid.UUID]*model.Receipt)}
}

func (r *memoryRepository) Create(ctx context.Context, receipt *model.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.receipts[receipt.ID]; exists {
		return fmt.Errorf("failed to create receipt: duplicate id %s", receipt.ID)
	}
	if receipt.CreatedAt.IsZero() {
		receipt.CreatedAt = time.Now().UTC()
	}
	r.receipts[receipt.ID] = clone(receipt)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	receipt, ok := r.receipts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, id)
	}
	return clone(receipt), nil
}

func (r *memoryRepository) List(ctx context.Context, filter *model.ReceiptFilter) ([]*model.Receipt, int, error) {
	filter.Normalize()

	r.mu.RLock()
	matched := []*model.Receipt{}
	for _, receipt := range r.receipts {
		if filter.MerchantID != "" && receipt.MerchantID != filter.MerchantID {
			continue
		}
		if filter.SentToAPI != nil && receipt.SentToAPI != *filter.SentToAPI {
			continue
		}
		if filter.Since != nil && receipt.CreatedAt.Before(*filter.Since) {
			continue
		}
		matched = append(matched, clone(receipt))
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if filter.Offset >= total {
		return []*model.Receipt{}, total, nil
	}
	end := min(filter.Offset+filter.Limit, total)
	return matched[filter.Offset:end], total, nil
}

func (r *memoryRepository) MarkSent(ctx context.Context, id uuid.UUID, order model.JSONObject, sentAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	receipt, ok := r.receipts[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrReceiptNotFound, id)
	}
	receipt.SentToAPI = true
	receipt.SentAt = &sentAt
	receipt.OrderData = order
	return nil
}

func (r *memoryRepository) DeleteOlderThan(ctx context.Context, olderThan time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, receipt := range r.receipts {
		if receipt.CreatedAt.Before(olderThan) {
			delete(r.receipts, id)
			removed++
		}
	}
	return removed, nil
}

func (r *memoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.receipts), nil
}

func clone(receipt *model.Receipt) *model.Receipt {
	c := *receipt
	c.Raw = append([]byte(nil), receipt.Raw...)
	return &c
}
