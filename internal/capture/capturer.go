// internal/capture/capturer.go
package capture

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/model"
)

// DefaultCutSequence is ESC m, the partial cut that ends a receipt
var DefaultCutSequence = []byte{0x1B, 0x6D}

// FileTimeLayout names saved receipt dumps
const FileTimeLayout = "2006-01-02-15-04-05"

// Receipt is one cut-terminated stream, cut sequence included
type Receipt struct {
	Data       []byte
	Source     model.ReceiptSource
	CapturedAt time.Time
	File       string
}

// Capturer splits a source stream into receipts at each cut sequence
type Capturer struct {
	source     Source
	cut        []byte
	saveDir    string
	readSize   int
	maxReceipt int
	retryDelay time.Duration
	logger     *zap.Logger
	receipts   chan *Receipt
	now        func() time.Time
}

// ParseCutSequence decodes a hex cut sequence; empty means ESC m
func ParseCutSequence(s string) ([]byte, error) {
	if s == "" {
		return DefaultCutSequence, nil
	}
	cut, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid cut sequence %q: %w", s, err)
	}
	if len(cut) == 0 {
		return nil, errors.New("cut sequence must not be empty")
	}
	return cut, nil
}

// NewSource builds the source selected in the capture configuration
func NewSource(cfg *config.CaptureConfig, logger *zap.Logger) (Source, error) {
	switch cfg.Source {
	case "serial":
		return NewSerialSource(cfg.Serial, logger), nil
	case "usb":
		return NewUSBSource(cfg.USB, logger), nil
	case "tcp":
		return NewTCPSource(cfg.TCP, logger), nil
	default:
		return nil, fmt.Errorf("unsupported capture source: %s", cfg.Source)
	}
}

// NewCapturer creates a capturer reading from source
func NewCapturer(source Source, cfg *config.CaptureConfig, logger *zap.Logger) (*Capturer, error) {
	cut, err := ParseCutSequence(cfg.CutSequence)
	if err != nil {
		return nil, err
	}

	c := &Capturer{
		source:     source,
		cut:        cut,
		saveDir:    cfg.SaveDir,
		readSize:   cfg.ReadSize,
		maxReceipt: cfg.MaxReceipt,
		retryDelay: cfg.RetryDelay,
		logger:     logger.With(zap.String("component", "capture"), zap.String("source", string(source.Kind()))),
		receipts:   make(chan *Receipt, 16),
		now:        time.Now,
	}
	if c.readSize <= 0 {
		c.readSize = 1024
	}
	if c.maxReceipt <= 0 {
		c.maxReceipt = 4 << 20
	}
	if c.retryDelay <= 0 {
		c.retryDelay = 5 * time.Second
	}

	if c.saveDir != "" {
		if err := os.MkdirAll(c.saveDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create receipt directory: %w", err)
		}
	}
	return c, nil
}

// Receipts delivers captured receipts; it is closed when Run returns
func (c *Capturer) Receipts() <-chan *Receipt {
	return c.receipts
}

// Run reads until ctx is done, reopening the source after failures
func (c *Capturer) Run(ctx context.Context) error {
	defer close(c.receipts)
	defer c.source.Close()

	var buf []byte
	for {
		if err := c.source.Open(ctx); err != nil {
			c.logger.Error("Failed to open capture source", zap.Error(err), zap.Duration("retry_in", c.retryDelay))
			if !c.wait(ctx) {
				return nil
			}
			continue
		}

		err := c.readLoop(ctx, &buf)
		if ctx.Err() != nil {
			if len(buf) > 0 {
				c.logger.Warn("Discarding unterminated receipt on shutdown", zap.Int("bytes", len(buf)))
			}
			return nil
		}

		c.logger.Error("Capture source failed", zap.Error(err), zap.Duration("retry_in", c.retryDelay))
		c.source.Close()
		if !c.wait(ctx) {
			return nil
		}
	}
}

func (c *Capturer) readLoop(ctx context.Context, buf *[]byte) error {
	for {
		chunk, err := c.source.Read(ctx, c.readSize)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			continue
		}

		searchFrom := max(len(*buf)-len(c.cut)+1, 0)
		*buf = append(*buf, chunk...)
		*buf = c.split(ctx, *buf, searchFrom)

		if len(*buf) > c.maxReceipt {
			c.logger.Warn("Receipt exceeds size limit without a cut, discarding",
				zap.Int("bytes", len(*buf)),
				zap.Int("limit", c.maxReceipt),
			)
			*buf = nil
		}
	}
}

// split emits every complete receipt in buf and returns the remainder
func (c *Capturer) split(ctx context.Context, buf []byte, searchFrom int) []byte {
	for {
		idx := bytes.Index(buf[searchFrom:], c.cut)
		if idx < 0 {
			return buf
		}
		end := searchFrom + idx + len(c.cut)

		data := make([]byte, end)
		copy(data, buf[:end])
		c.emit(ctx, data)

		buf = buf[end:]
		searchFrom = 0
	}
}

func (c *Capturer) emit(ctx context.Context, data []byte) {
	receipt := &Receipt{
		Data:       data,
		Source:     c.source.Kind(),
		CapturedAt: c.now(),
	}
	c.logger.Info("Paper cut, receipt captured", zap.Int("bytes", len(data)))

	if c.saveDir != "" {
		path, err := c.save(receipt)
		if err != nil {
			c.logger.Error("Failed to save receipt dump", zap.Error(err))
		} else {
			receipt.File = path
		}
	}

	select {
	case c.receipts <- receipt:
	case <-ctx.Done():
	}
}

// save writes the receipt to <dir>/<timestamp>.bin, suffixing duplicates
func (c *Capturer) save(receipt *Receipt) (string, error) {
	base := receipt.CapturedAt.Format(FileTimeLayout)
	path := filepath.Join(c.saveDir, base+".bin")
	for i := 1; ; i++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			path = filepath.Join(c.saveDir, fmt.Sprintf("%s-%d.bin", base, i))
			continue
		}
		if err != nil {
			return "", err
		}
		_, err = f.Write(receipt.Data)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return path, err
	}
}

func (c *Capturer) wait(ctx context.Context) bool {
	t := time.NewTimer(c.retryDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Connected reports whether the source is currently open
func (c *Capturer) Connected() bool {
	return c.source.Stats().IsConnected
}

// BytesRead returns the bytes read from the source so far
func (c *Capturer) BytesRead() int64 {
	return c.source.Stats().BytesRead
}
