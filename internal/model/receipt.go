// internal/model/receipt.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptSource tells how a receipt stream reached the service
type ReceiptSource string

const (
	ReceiptSourceHTTP   ReceiptSource = "HTTP"
	ReceiptSourceSerial ReceiptSource = "SERIAL"
	ReceiptSourceUSB    ReceiptSource = "USB"
	ReceiptSourceTCP    ReceiptSource = "TCP"
)

// Receipt is one captured ESC/POS stream and its decoded text
type Receipt struct {
	ID           uuid.UUID     `json:"id" db:"id"`
	MerchantID   string        `json:"merchant_id" db:"merchant_id"`
	Source       ReceiptSource `json:"source" db:"source"`
	Raw          []byte        `json:"-" db:"raw"`
	Text         string        `json:"text" db:"text"`
	RecordCount  int           `json:"record_count" db:"record_count"`
	BitmapCount  int           `json:"bitmap_count" db:"bitmap_count"`
	DecodeErrors int           `json:"decode_errors" db:"decode_errors"`
	OrderData    JSONObject    `json:"order,omitempty" db:"order_data"`
	SentToAPI    bool          `json:"sent_to_api" db:"sent_to_api"`
	SentAt       *time.Time    `json:"sent_at,omitempty" db:"sent_at"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
}

// Size returns the length of the raw stream in bytes
func (r *Receipt) Size() int {
	return len(r.Raw)
}

// ReceiptFilter narrows a receipt listing
type ReceiptFilter struct {
	MerchantID string     `form:"merchant_id"`
	SentToAPI  *bool      `form:"sent_to_api"`
	Since      *time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit      int        `form:"limit"`
	Offset     int        `form:"offset"`
}

// Normalize clamps paging values
func (f *ReceiptFilter) Normalize() {
	if f.Limit <= 0 || f.Limit > 500 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
