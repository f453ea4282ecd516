// internal/capture/tcp_source.go
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/model"
)

// TCPSource listens on a raw printing port (9100 style). One client is
// served at a time; its bytes are read as one continuous stream.
type TCPSource struct {
	config   config.TCPListenerConfig
	listener *net.TCPListener
	conn     net.Conn
	lastData time.Time
	logger   *zap.Logger
	mutex    sync.Mutex
	stats    SourceStats
}

// NewTCPSource creates a TCP capture source
func NewTCPSource(cfg config.TCPListenerConfig, logger *zap.Logger) *TCPSource {
	return &TCPSource{
		config: cfg,
		logger: logger.With(
			zap.String("source", "tcp"),
			zap.String("address", cfg.Address),
		),
	}
}

func (t *TCPSource) readTimeout() time.Duration {
	if t.config.ReadTimeout <= 0 {
		return 500 * time.Millisecond
	}
	return t.config.ReadTimeout
}

// Open starts listening
func (t *TCPSource) Open(ctx context.Context) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.listener != nil {
		return nil
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", t.config.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", t.config.Address, err)
	}

	t.listener = ln.(*net.TCPListener)
	t.stats.IsConnected = true
	t.stats.LastActivity = time.Now()

	t.logger.Info("Listening for print jobs", zap.String("listen_address", ln.Addr().String()))
	return nil
}

// Addr returns the bound address, or nil before Open
func (t *TCPSource) Addr() net.Addr {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.listener == nil {
		return nil
	}
	return t.listener.Addr()
}

// Close stops listening and drops the current client
func (t *TCPSource) Close() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.dropClient()
	if t.listener == nil {
		return nil
	}

	err := t.listener.Close()
	t.listener = nil
	t.stats.IsConnected = false
	if err != nil {
		return fmt.Errorf("failed to close listener: %w", err)
	}

	t.logger.Info("TCP listener closed")
	return nil
}

func (t *TCPSource) dropClient() {
	if t.conn == nil {
		return
	}
	t.conn.Close()
	t.logger.Debug("Client disconnected", zap.String("remote_addr", t.conn.RemoteAddr().String()))
	t.conn = nil
}

// Read accepts a client if none is connected, then reads what it sent
// within the read timeout. Client disconnects are not errors.
func (t *TCPSource) Read(ctx context.Context, size int) ([]byte, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.listener == nil {
		return nil, ErrSourceClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(t.readTimeout())

	if t.conn == nil {
		if err := t.listener.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("failed to set accept deadline: %w", err)
		}
		conn, err := t.listener.Accept()
		if err != nil {
			if isTimeout(err) {
				return nil, nil
			}
			t.stats.ErrorCount++
			return nil, fmt.Errorf("failed to accept client: %w", err)
		}
		t.conn = conn
		t.lastData = time.Now()
		t.logger.Info("Client connected", zap.String("remote_addr", conn.RemoteAddr().String()))
	}

	if err := t.conn.SetReadDeadline(deadline); err != nil {
		t.dropClient()
		return nil, nil
	}

	buffer := make([]byte, size)
	n, err := t.conn.Read(buffer)
	t.stats.ReadCount++
	if n > 0 {
		t.stats.BytesRead += int64(n)
		t.stats.LastActivity = time.Now()
		t.lastData = t.stats.LastActivity
	}

	switch {
	case err == nil:
	case isTimeout(err):
		if idle := t.config.IdleTimeout; idle > 0 && time.Since(t.lastData) > idle {
			t.logger.Warn("Dropping idle client", zap.Duration("idle", idle))
			t.dropClient()
		}
	case errors.Is(err, io.EOF):
		t.dropClient()
	default:
		t.stats.ErrorCount++
		t.logger.Warn("Client read failed", zap.Error(err))
		t.dropClient()
	}
	return buffer[:n], nil
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// Kind reports the receipt source
func (t *TCPSource) Kind() model.ReceiptSource {
	return model.ReceiptSourceTCP
}

// Stats returns a snapshot of the source statistics
func (t *TCPSource) Stats() SourceStats {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.stats
}
