// internal/discovery/serial/scanner.go
package serial

import (
	"context"
	"fmt"
	"strconv"

	"go.bug.st/serial/enumerator"
	"go.uber.org/zap"

	"escpos-service/internal/discovery"
	"escpos-service/internal/model"
)

// Scanner lists serial ports, including USB serial adapters
type Scanner struct {
	logger *zap.Logger
	list   func() ([]*enumerator.PortDetails, error)
}

// NewScanner creates a new serial scanner
func NewScanner(logger *zap.Logger) *Scanner {
	return &Scanner{
		logger: logger.With(zap.String("scanner", "serial")),
		list:   enumerator.GetDetailedPortsList,
	}
}

// Type returns the capture source the scanner finds ports for
func (s *Scanner) Type() model.ReceiptSource {
	return model.ReceiptSourceSerial
}

// IsAvailable reports true; every platform has a port enumerator
func (s *Scanner) IsAvailable() bool {
	return true
}

// Scan lists the serial ports
func (s *Scanner) Scan(ctx context.Context) ([]*discovery.Port, error) {
	details, err := s.list()
	if err != nil {
		return nil, fmt.Errorf("failed to get serial ports: %w", err)
	}

	ports := make([]*discovery.Port, 0, len(details))
	for _, d := range details {
		if ctx.Err() != nil {
			return ports, ctx.Err()
		}
		ports = append(ports, portFromDetails(d))
	}

	s.logger.Debug("Serial scan completed", zap.Int("ports_found", len(ports)))
	return ports, nil
}

func portFromDetails(d *enumerator.PortDetails) *discovery.Port {
	port := &discovery.Port{
		Source:       model.ReceiptSourceSerial,
		Name:         d.Name,
		Product:      d.Product,
		SerialNumber: d.SerialNumber,
	}
	if !d.IsUSB {
		return port
	}

	port.VendorID = "0x" + d.VID
	port.ProductID = "0x" + d.PID
	if vid, err := strconv.ParseUint(d.VID, 16, 16); err == nil {
		port.Vendor, port.Printer = discovery.VendorName(uint16(vid))
	}
	return port
}
