package usb

import (
	"testing"

	"github.com/google/gousb"
)

func TestIsPrinter(t *testing.T) {
	tests := []struct {
		name string
		desc *gousb.DeviceDesc
		want bool
	}{
		{"known vendor", &gousb.DeviceDesc{Vendor: 0x04B8, Product: 0x0202}, true},
		{"printer class", &gousb.DeviceDesc{Vendor: 0x1234, Class: gousb.ClassPrinter}, true},
		{"printer interface", &gousb.DeviceDesc{
			Vendor: 0x1234,
			Configs: map[int]gousb.ConfigDesc{1: {Interfaces: []gousb.InterfaceDesc{
				{AltSettings: []gousb.InterfaceSetting{{Class: gousb.ClassPrinter}}},
			}}},
		}, true},
		{"keyboard", &gousb.DeviceDesc{Vendor: 0x046D, Class: gousb.ClassHID}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPrinter(tt.desc); got != tt.want {
				t.Errorf("isPrinter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPortFromDesc(t *testing.T) {
	port := portFromDesc(&gousb.DeviceDesc{Bus: 1, Address: 7, Vendor: 0x0519, Product: 0x0003})
	if port.Name != "usb:1/7" || port.VendorID != "0x0519" || port.ProductID != "0x0003" {
		t.Errorf("port = %+v", port)
	}
	if !port.Printer || port.Vendor != "Star Micronics Co., Ltd." {
		t.Errorf("vendor lookup = %+v", port)
	}
}
