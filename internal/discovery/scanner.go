// internal/discovery/scanner.go
package discovery

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"escpos-service/internal/model"
)

// PortScanner lists ports a receipt capture source could be attached to
type PortScanner interface {
	Scan(ctx context.Context) ([]*Port, error)
	Type() model.ReceiptSource
	IsAvailable() bool
}

// Port is one candidate capture port
type Port struct {
	Source model.ReceiptSource `json:"source"`
	// Name is the device path for serial ports and bus/address for USB.
	Name         string `json:"name"`
	VendorID     string `json:"vendor_id,omitempty"`
	ProductID    string `json:"product_id,omitempty"`
	Vendor       string `json:"vendor,omitempty"`
	Product      string `json:"product,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	// Printer is set for known POS printer vendors and the USB printer class.
	Printer bool `json:"printer"`
}

// Manager runs every registered scanner
type Manager struct {
	scanners map[model.ReceiptSource]PortScanner
	logger   *zap.Logger
}

// NewManager creates a new scanner manager
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		scanners: make(map[model.ReceiptSource]PortScanner),
		logger:   logger.With(zap.String("component", "discovery")),
	}
}

// Register adds a scanner, replacing one of the same type
func (m *Manager) Register(scanner PortScanner) {
	m.scanners[scanner.Type()] = scanner
	m.logger.Debug("Scanner registered", zap.String("type", string(scanner.Type())))
}

// ScanAll scans with every available scanner. A failing scanner is logged
// and skipped. Printers sort first.
func (m *Manager) ScanAll(ctx context.Context) ([]*Port, error) {
	ports := []*Port{}

	for scannerType, scanner := range m.scanners {
		if !scanner.IsAvailable() {
			m.logger.Debug("Scanner not available, skipping", zap.String("type", string(scannerType)))
			continue
		}

		found, err := scanner.Scan(ctx)
		if err != nil {
			m.logger.Error("Scanner failed", zap.String("type", string(scannerType)), zap.Error(err))
			continue
		}
		ports = append(ports, found...)
	}

	sort.SliceStable(ports, func(i, j int) bool {
		if ports[i].Printer != ports[j].Printer {
			return ports[i].Printer
		}
		if ports[i].Source != ports[j].Source {
			return ports[i].Source < ports[j].Source
		}
		return ports[i].Name < ports[j].Name
	})
	return ports, ctx.Err()
}

// ScanByType scans with one scanner
func (m *Manager) ScanByType(ctx context.Context, scannerType model.ReceiptSource) ([]*Port, error) {
	scanner, ok := m.scanners[scannerType]
	if !ok {
		return nil, fmt.Errorf("scanner type not found: %s", scannerType)
	}
	if !scanner.IsAvailable() {
		return nil, fmt.Errorf("scanner not available: %s", scannerType)
	}
	return scanner.Scan(ctx)
}

// knownVendors are POS printer makers by USB vendor id
var knownVendors = map[uint16]string{
	0x04B8: "Seiko Epson Corporation",
	0x0519: "Star Micronics Co., Ltd.",
	0x1CBE: "Citizen Systems Japan Co., Ltd.",
	0x1504: "BIXOLON Co., Ltd.",
	0x0DD4: "Custom Engineering SPA",
	0x0FE6: "ICS Advent",
	0x28E9: "GD32 (generic thermal printer)",
}

// VendorName looks up a known POS printer vendor
func VendorName(vendorID uint16) (string, bool) {
	name, ok := knownVendors[vendorID]
	return name, ok
}

// HexID formats a USB vendor or product id the way the config file takes it
func HexID(id uint16) string {
	return fmt.Sprintf("0x%04x", id)
}
