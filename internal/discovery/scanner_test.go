package discovery

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"escpos-service/internal/model"
)

type fakeScanner struct {
	source    model.ReceiptSource
	ports     []*Port
	err       error
	available bool
}

func (f *fakeScanner) Scan(context.Context) ([]*Port, error) { return f.ports, f.err }
func (f *fakeScanner) Type() model.ReceiptSource { return f.source }
func (f *fakeScanner) IsAvailable() bool { return f.available }

func TestManagerScanAll(t *testing.T) {
	m := NewManager(zap.NewNop())
	m.Register(&fakeScanner{
		source:    model.ReceiptSourceSerial,
		available: true,
		ports: []*Port{
			{Source: model.ReceiptSourceSerial, Name: "/dev/ttyS0"},
			{Source: model.ReceiptSourceSerial, Name: "/dev/ttyUSB0", Printer: true},
		},
	})
	m.Register(&fakeScanner{source: model.ReceiptSourceUSB, available: true, err: errors.New("libusb")})
	m.Register(&fakeScanner{source: model.ReceiptSourceHTTP, available: false, ports: []*Port{{Name: "hidden"}}})

	ports, err := m.ScanAll(context.Background())
	if err != nil {
		t.Fatalf("ScanAll() error = %v", err)
	}
	if len(ports) != 2 {
		t.Fatalf("got %d ports, want 2", len(ports))
	}
	if ports[0].Name != "/dev/ttyUSB0" {
		t.Errorf("printer not sorted first: %q", ports[0].Name)
	}
}

func TestManagerScanByType(t *testing.T) {
	m := NewManager(zap.NewNop())
	m.Register(&fakeScanner{source: model.ReceiptSourceUSB, available: false})

	if _, err := m.ScanByType(context.Background(), model.ReceiptSourceSerial); err == nil {
		t.Error("expected error for unregistered scanner")
	}
	if _, err := m.ScanByType(context.Background(), model.ReceiptSourceUSB); err == nil {
		t.Error("expected error for unavailable scanner")
	}
}

func TestVendorName(t *testing.T) {
	if name, ok := VendorName(0x04B8); !ok || name != "Seiko Epson Corporation" {
		t.Errorf("VendorName(0x04B8) = %q, %v", name, ok)
	}
	if _, ok := VendorName(0x1234); ok {
		t.Error("unknown vendor reported as known")
	}
	if got := HexID(0x0202); got != "0x0202" {
		t.Errorf("HexID = %q", got)
	}
}
