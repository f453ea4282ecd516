// internal/capture/serial_source.go
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.bug.st/serial"
	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/model"
)

// SerialSource reads a receipt stream from a serial port
type SerialSource struct {
	config config.SerialPortConfig
	port   serial.Port
	logger *zap.Logger
	mutex  sync.Mutex
	stats  SourceStats
}

// NewSerialSource creates a serial capture source
func NewSerialSource(cfg config.SerialPortConfig, logger *zap.Logger) *SerialSource {
	return &SerialSource{
		config: cfg,
		logger: logger.With(
			zap.String("source", "serial"),
			zap.String("port", cfg.Port),
		),
	}
}

// serialMode translates the port configuration; zero values mean 8N1
func serialMode(cfg config.SerialPortConfig) (*serial.Mode, error) {
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		StopBits: serial.OneStopBit,
		Parity:   serial.NoParity,
	}
	if mode.BaudRate == 0 {
		mode.BaudRate = 9600
	}
	if mode.DataBits == 0 {
		mode.DataBits = 8
	}

	switch cfg.StopBits {
	case 0, 1:
	case 2:
		mode.StopBits = serial.TwoStopBits
	default:
		return nil, fmt.Errorf("unsupported stop bits: %d", cfg.StopBits)
	}

	switch cfg.Parity {
	case "", "none":
	case "odd":
		mode.Parity = serial.OddParity
	case "even":
		mode.Parity = serial.EvenParity
	case "mark":
		mode.Parity = serial.MarkParity
	case "space":
		mode.Parity = serial.SpaceParity
	default:
		return nil, fmt.Errorf("unsupported parity: %s", cfg.Parity)
	}
	return mode, nil
}

// Open opens the serial port
func (s *SerialSource) Open(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.port != nil {
		return nil
	}

	mode, err := serialMode(s.config)
	if err != nil {
		return err
	}

	s.logger.Info("Opening serial port",
		zap.Int("baud_rate", mode.BaudRate),
		zap.Int("data_bits", mode.DataBits),
	)

	port, err := serial.Open(s.config.Port, mode)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}

	timeout := s.config.Timeout
	if timeout <= 0 {
		timeout = 500 * time.Millisecond
	}
	if err := port.SetReadTimeout(timeout); err != nil {
		port.Close()
		return fmt.Errorf("failed to set read timeout: %w", err)
	}

	s.port = port
	s.stats.IsConnected = true
	s.stats.LastActivity = time.Now()

	s.logger.Info("Serial port opened successfully")
	return nil
}

// Close closes the serial port
func (s *SerialSource) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.port == nil {
		return nil
	}

	err := s.port.Close()
	s.port = nil
	s.stats.IsConnected = false
	if err != nil {
		return fmt.Errorf("failed to close serial port: %w", err)
	}

	s.logger.Info("Serial port closed")
	return nil
}

// Read reads whatever arrived within the port read timeout
func (s *SerialSource) Read(ctx context.Context, size int) ([]byte, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.port == nil {
		return nil, ErrSourceClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buffer := make([]byte, size)
	n, err := s.port.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		s.stats.ErrorCount++
		return nil, fmt.Errorf("failed to read from serial port: %w", err)
	}

	s.stats.ReadCount++
	if n > 0 {
		s.stats.BytesRead += int64(n)
		s.stats.LastActivity = time.Now()
	}
	return buffer[:n], nil
}

// Kind reports the receipt source
func (s *SerialSource) Kind() model.ReceiptSource {
	return model.ReceiptSourceSerial
}

// Stats returns a snapshot of the source statistics
func (s *SerialSource) Stats() SourceStats {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.stats
}
