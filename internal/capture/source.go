// internal/capture/source.go
package capture

import (
	"context"
	"errors"
	"time"

	"escpos-service/internal/model"
)

// ErrSourceClosed is returned by Read on a source that is not open
var ErrSourceClosed = errors.New("capture source not open")

// Source is a byte stream a POS system prints into
type Source interface {
	Open(ctx context.Context) error
	Close() error

	// Read returns at most size bytes. An empty slice with a nil error means
	// the read timed out without data.
	Read(ctx context.Context, size int) ([]byte, error)

	Kind() model.ReceiptSource
	Stats() SourceStats
}

// SourceStats provides source-level statistics
type SourceStats struct {
	BytesRead    int64     `json:"bytes_read"`
	ReadCount    int64     `json:"read_count"`
	ErrorCount   int64     `json:"error_count"`
	LastActivity time.Time `json:"last_activity"`
	IsConnected  bool      `json:"is_connected"`
}
