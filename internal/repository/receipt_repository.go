// internal/repository/receipt_repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"escpos-service/internal/database"
	"escpos-service/internal/model"
)

const receiptColumns = `id, merchant_id, source, raw, text, record_count, bitmap_count,
			   decode_errors, order_data, sent_to_api, sent_at, created_at`

// receiptRepository implements ReceiptRepository on PostgreSQL
type receiptRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewReceiptRepository creates a new PostgreSQL receipt repository
func NewReceiptRepository(db *database.DB, logger *zap.Logger) ReceiptRepository {
	return &receiptRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReceipt(row rowScanner) (*model.Receipt, error) {
	receipt := &model.Receipt{}
	var sentAt sql.NullTime
	err := row.Scan(
		&receipt.ID, &receipt.MerchantID, &receipt.Source, &receipt.Raw,
		&receipt.Text, &receipt.RecordCount, &receipt.BitmapCount,
		&receipt.DecodeErrors, &receipt.OrderData, &receipt.SentToAPI,
		&sentAt, &receipt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if sentAt.Valid {
		receipt.SentAt = &sentAt.Time
	}
	return receipt, nil
}

// Create stores a new receipt
func (r *receiptRepository) Create(ctx context.Context, receipt *model.Receipt) error {
	query := `
		INSERT INTO receipts (
			id, merchant_id, source, raw, text, record_count, bitmap_count,
			decode_errors, order_data, sent_to_api, sent_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	if receipt.CreatedAt.IsZero() {
		receipt.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		receipt.ID, receipt.MerchantID, receipt.Source, receipt.Raw,
		receipt.Text, receipt.RecordCount, receipt.BitmapCount,
		receipt.DecodeErrors, receipt.OrderData, receipt.SentToAPI,
		receipt.SentAt, receipt.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create receipt", zap.Error(err), zap.String("id", receipt.ID.String()))
		return fmt.Errorf("failed to create receipt: %w", err)
	}

	r.logger.Debug("Receipt stored", zap.String("id", receipt.ID.String()), zap.Int("bytes", receipt.Size()))
	return nil
}

// GetByID retrieves a receipt by its UUID
func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Receipt, error) {
	query := fmt.Sprintf(`SELECT %s FROM receipts WHERE id = $1`, receiptColumns)

	receipt, err := scanReceipt(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, id)
		}
		r.logger.Error("Failed to get receipt by ID", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	return receipt, nil
}

// List returns receipts matching the filter, newest first, with the total count
func (r *receiptRepository) List(ctx context.Context, filter *model.ReceiptFilter) ([]*model.Receipt, int, error) {
	filter.Normalize()

	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.MerchantID != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("merchant_id = $%d", argIndex))
		args = append(args, filter.MerchantID)
		argIndex++
	}

	if filter.SentToAPI != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("sent_to_api = $%d", argIndex))
		args = append(args, *filter.SentToAPI)
		argIndex++
	}

	if filter.Since != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("created_at >= $%d", argIndex))
		args = append(args, *filter.Since)
		argIndex++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = "WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM receipts %s", whereClause)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count receipts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM receipts %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, receiptColumns, whereClause, argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list receipts", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	receipts := []*model.Receipt{}
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			r.logger.Error("Failed to scan receipt", zap.Error(err))
			continue
		}
		receipts = append(receipts, receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	return receipts, total, nil
}

// MarkSent flags a receipt as delivered to the order API
func (r *receiptRepository) MarkSent(ctx context.Context, id uuid.UUID, order model.JSONObject, sentAt time.Time) error {
	query := `
		UPDATE receipts
		SET sent_to_api = TRUE, sent_at = $2, order_data = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, sentAt, order)
	if err != nil {
		return fmt.Errorf("failed to mark receipt as sent: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrReceiptNotFound, id)
	}

	return nil
}

// DeleteOlderThan removes receipts captured before the cutoff
func (r *receiptRepository) DeleteOlderThan(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM receipts WHERE created_at < $1`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old receipts: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected > 0 {
		r.logger.Info("Deleted old receipts", zap.Int64("count", rowsAffected))
	}
	return rowsAffected, nil
}

// Count returns the number of stored receipts
func (r *receiptRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM receipts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count receipts: %w", err)
	}
	return count, nil
}
