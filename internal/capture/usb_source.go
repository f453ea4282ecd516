// internal/capture/usb_source.go
package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/gousb"
	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/model"
)

// USBSource reads a receipt stream from a bulk IN endpoint
type USBSource struct {
	config  config.USBPortConfig
	ctx     *gousb.Context
	device  *gousb.Device
	usbConf *gousb.Config
	intf    *gousb.Interface
	inEndpt *gousb.InEndpoint
	logger  *zap.Logger
	mutex   sync.Mutex
	stats   SourceStats
}

// NewUSBSource creates a USB capture source
func NewUSBSource(cfg config.USBPortConfig, logger *zap.Logger) *USBSource {
	return &USBSource{
		config: cfg,
		logger: logger.With(
			zap.String("source", "usb"),
			zap.String("vendor_id", fmt.Sprintf("%04x", cfg.VendorID)),
			zap.String("product_id", fmt.Sprintf("%04x", cfg.ProductID)),
		),
	}
}

// Open finds the device and claims its interface
func (u *USBSource) Open(ctx context.Context) error {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	if u.inEndpt != nil {
		return nil
	}

	u.logger.Info("Opening USB device",
		zap.Int("interface", u.config.Interface),
		zap.Int("endpoint", u.config.Endpoint),
	)

	u.ctx = gousb.NewContext()

	device, err := u.findAndOpenDevice(gousb.ID(u.config.VendorID), gousb.ID(u.config.ProductID))
	if err != nil {
		u.closeLocked()
		return fmt.Errorf("failed to find USB device: %w", err)
	}
	u.device = device

	if err := device.SetAutoDetach(true); err != nil {
		u.logger.Warn("Kernel driver auto detach not supported", zap.Error(err))
	}

	usbConf, err := device.Config(1)
	if err != nil {
		u.closeLocked()
		return fmt.Errorf("failed to select USB configuration: %w", err)
	}
	u.usbConf = usbConf

	intf, err := usbConf.Interface(u.config.Interface, 0)
	if err != nil {
		u.closeLocked()
		return fmt.Errorf("failed to claim interface: %w", err)
	}
	u.intf = intf

	inEndpt, err := intf.InEndpoint(u.config.Endpoint)
	if err != nil {
		u.closeLocked()
		return fmt.Errorf("failed to get in endpoint: %w", err)
	}
	u.inEndpt = inEndpt
	u.stats.IsConnected = true
	u.stats.LastActivity = time.Now()

	u.logger.Info("USB device opened successfully")
	return nil
}

// Close releases the interface, device and context
func (u *USBSource) Close() error {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	if u.ctx == nil {
		return nil
	}
	u.closeLocked()
	u.logger.Info("USB device closed")
	return nil
}

func (u *USBSource) closeLocked() {
	if u.intf != nil {
		u.intf.Close()
		u.intf = nil
	}
	if u.usbConf != nil {
		u.usbConf.Close()
		u.usbConf = nil
	}
	if u.device != nil {
		u.device.Close()
		u.device = nil
	}
	if u.ctx != nil {
		u.ctx.Close()
		u.ctx = nil
	}
	u.inEndpt = nil
	u.stats.IsConnected = false
}

// Read performs one bulk transfer bounded by the configured timeout
func (u *USBSource) Read(ctx context.Context, size int) ([]byte, error) {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	if u.inEndpt == nil {
		return nil, ErrSourceClosed
	}

	if u.config.BulkTransferSize > 0 && size > u.config.BulkTransferSize {
		size = u.config.BulkTransferSize
	}
	timeout := u.config.Timeout
	if timeout <= 0 {
		timeout = 500 * time.Millisecond
	}

	readCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	buffer := make([]byte, size)
	n, err := u.inEndpt.ReadContext(readCtx, buffer)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, gousb.TransferTimedOut) || errors.Is(err, gousb.TransferCancelled) || errors.Is(readCtx.Err(), context.DeadlineExceeded) {
			return buffer[:n], nil
		}
		u.stats.ErrorCount++
		return nil, fmt.Errorf("failed to read from USB device: %w", err)
	}

	u.stats.ReadCount++
	u.stats.BytesRead += int64(n)
	u.stats.LastActivity = time.Now()
	return buffer[:n], nil
}

// Kind reports the receipt source
func (u *USBSource) Kind() model.ReceiptSource {
	return model.ReceiptSourceUSB
}

// Stats returns a snapshot of the source statistics
func (u *USBSource) Stats() SourceStats {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	return u.stats
}

func (u *USBSource) findAndOpenDevice(vendorID, productID gousb.ID) (*gousb.Device, error) {
	devices, err := u.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Vendor == vendorID && desc.Product == productID
	})
	if err != nil && len(devices) == 0 {
		return nil, fmt.Errorf("failed to enumerate USB devices: %w", err)
	}

	if len(devices) == 0 {
		return nil, fmt.Errorf("USB device not found (VID: %s, PID: %s)", vendorID, productID)
	}

	if len(devices) > 1 {
		for i := 1; i < len(devices); i++ {
			devices[i].Close()
		}
		u.logger.Warn("Multiple matching USB devices found, using first one")
	}

	return devices[0], nil
}
