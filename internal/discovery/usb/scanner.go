// internal/discovery/usb/scanner.go
package usb

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/gousb"
	"go.uber.org/zap"

	"escpos-service/internal/discovery"
	"escpos-service/internal/model"
)

// Scanner lists USB devices that look like receipt printers
type Scanner struct {
	logger *zap.Logger
	// AllDevices lists every device instead of printers only.
	AllDevices bool
}

// NewScanner creates a new USB scanner
func NewScanner(logger *zap.Logger) *Scanner {
	return &Scanner{logger: logger.With(zap.String("scanner", "usb"))}
}

// Type returns the capture source the scanner finds ports for
func (s *Scanner) Type() model.ReceiptSource {
	return model.ReceiptSourceUSB
}

// IsAvailable checks that libusb can be initialised
func (s *Scanner) IsAvailable() bool {
	ctx := gousb.NewContext()
	defer ctx.Close()
	_, err := ctx.OpenDevices(func(*gousb.DeviceDesc) bool { return false })
	if err != nil {
		s.logger.Debug("USB access not available", zap.Error(err))
		return false
	}
	return true
}

// Scan enumerates the bus. Devices are opened only to read their strings.
func (s *Scanner) Scan(ctx context.Context) ([]*discovery.Port, error) {
	usbCtx := gousb.NewContext()
	defer func() {
		if err := usbCtx.Close(); err != nil {
			s.logger.Warn("Failed to close USB context", zap.Error(err))
		}
	}()

	var ports []*discovery.Port
	devices, err := usbCtx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		if !s.AllDevices && !isPrinter(desc) {
			return false
		}
		ports = append(ports, portFromDesc(desc))
		return true
	})
	defer func() {
		for _, d := range devices {
			d.Close()
		}
	}()
	if err != nil && len(devices) == 0 && len(ports) == 0 {
		return nil, fmt.Errorf("failed to enumerate USB devices: %w", err)
	}
	if err != nil {
		// Some devices could not be opened; their descriptors are still listed.
		s.logger.Debug("Some USB devices could not be opened", zap.Error(err))
	}

	for _, d := range devices {
		if ctx.Err() != nil {
			return ports, ctx.Err()
		}
		s.readStrings(d, findPort(ports, d.Desc))
	}

	s.logger.Debug("USB scan completed", zap.Int("ports_found", len(ports)))
	return ports, nil
}

func isPrinter(desc *gousb.DeviceDesc) bool {
	if _, ok := discovery.VendorName(uint16(desc.Vendor)); ok {
		return true
	}
	if desc.Class == gousb.ClassPrinter {
		return true
	}
	for _, cfg := range desc.Configs {
		for _, intf := range cfg.Interfaces {
			for _, alt := range intf.AltSettings {
				if alt.Class == gousb.ClassPrinter {
					return true
				}
			}
		}
	}
	return false
}

func portFromDesc(desc *gousb.DeviceDesc) *discovery.Port {
	port := &discovery.Port{
		Source:    model.ReceiptSourceUSB,
		Name:      fmt.Sprintf("usb:%d/%d", desc.Bus, desc.Address),
		VendorID:  discovery.HexID(uint16(desc.Vendor)),
		ProductID: discovery.HexID(uint16(desc.Product)),
	}
	port.Vendor, port.Printer = discovery.VendorName(uint16(desc.Vendor))
	if !port.Printer {
		port.Printer = isPrinter(desc)
	}
	return port
}

func findPort(ports []*discovery.Port, desc *gousb.DeviceDesc) *discovery.Port {
	name := fmt.Sprintf("usb:%d/%d", desc.Bus, desc.Address)
	for _, p := range ports {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// readStrings fills in manufacturer, product and serial where the device answers
func (s *Scanner) readStrings(device *gousb.Device, port *discovery.Port) {
	if port == nil {
		return
	}
	if port.Vendor == "" {
		if v, err := device.Manufacturer(); err == nil {
			port.Vendor = strings.TrimSpace(v)
		}
	}
	if p, err := device.Product(); err == nil {
		port.Product = strings.TrimSpace(p)
	}
	if sn, err := device.SerialNumber(); err == nil {
		port.SerialNumber = strings.TrimSpace(sn)
	}
}
