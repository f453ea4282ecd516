package serial

import (
	"context"
	"errors"
	"testing"

	"go.bug.st/serial/enumerator"
	"go.uber.org/zap"
)

func TestScan(t *testing.T) {
	s := NewScanner(zap.NewNop())
	s.list = func() ([]*enumerator.PortDetails, error) {
		return []*enumerator.PortDetails{
			{Name: "/dev/ttyS0"},
			{Name: "/dev/ttyUSB0", IsUSB: true, VID: "04B8", PID: "0202", Product: "TM-T88IV"},
			{Name: "/dev/ttyACM0", IsUSB: true, VID: "2341", PID: "0043"},
		}, nil
	}

	ports, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(ports) != 3 {
		t.Fatalf("got %d ports", len(ports))
	}
	if ports[0].Printer || ports[0].VendorID != "" {
		t.Errorf("plain port = %+v", ports[0])
	}
	if !ports[1].Printer || ports[1].VendorID != "0x04B8" || ports[1].Vendor == "" {
		t.Errorf("epson adapter = %+v", ports[1])
	}
	if ports[2].Printer {
		t.Errorf("unknown usb adapter marked as printer: %+v", ports[2])
	}
}

func TestScanError(t *testing.T) {
	s := NewScanner(zap.NewNop())
	s.list = func() ([]*enumerator.PortDetails, error) { return nil, errors.New("denied") }
	if _, err := s.Scan(context.Background()); err == nil {
		t.Error("expected error")
	}
}
