package escpos

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

func TestDecodeNilBuffer(t *testing.T) {
	d, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := d.Decode(nil); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("Decode(nil) error = %v, want ErrNilBuffer", err)
	}
}

func TestDecodeEmptyBuffer(t *testing.T) {
	res := decodeText(t, Config{}, []byte{})
	if res.Text != "" || len(res.Records) != 0 || len(res.Bitmaps) != 0 {
		t.Errorf("Decode(empty) = %+v", res)
	}
}

func TestDecodeExample(t *testing.T) {
	res := decodeText(t, Config{}, []byte{0x1B, 0x40, 'H', 'i', 0x0A})
	if res.Text != "Hi\n" {
		t.Errorf("Text = %q, want %q", res.Text, "Hi\n")
	}
	if len(res.Bitmaps) != 0 {
		t.Errorf("got %d bitmaps, want 0", len(res.Bitmaps))
	}
	if len(res.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(res.Records))
	}
	if res.Records[0].Type != EscInitialize || res.Records[1].Text != "Hi" {
		t.Errorf("records = %v", res.Records)
	}
}

func TestDecodeReportsErrors(t *testing.T) {
	in := []byte{0x1D, 0x28, 0x4C, 0x02, 0x00, 0x30, 0x31, 'o', 'k', 0x0A}
	res := decodeText(t, Config{}, in)
	if len(res.Errors) != 1 || res.Errors[0].Index != 0 {
		t.Fatalf("Errors = %v", res.Errors)
	}
	if res.Text != "ok\n" {
		t.Errorf("Text = %q", res.Text)
	}
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		wantCP  int
	}{
		{"zero value keeps code page 0", Config{}, false, 0},
		{"defaults", DefaultConfig(), false, DefaultCodePage},
		{"line display", Config{Device: DeviceLineDisplay, CodePage: 437}, false, 437},
		{"unknown device", Config{Device: "kiosk"}, true, 0},
		{"negative code page", Config{CodePage: -1}, true, 0},
		{"sbcs pattern out of range", Config{Fonts: FontPatterns{SBCS: 10, MBCS: 1, Display: 1}}, true, 0},
		{"display pattern out of range", Config{Fonts: FontPatterns{SBCS: 1, MBCS: 1, Display: 3}}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			got := d.Config()
			if got.CodePage != tt.wantCP {
				t.Errorf("CodePage = %d, want %d", got.CodePage, tt.wantCP)
			}
			if got.Device == "" || got.Fonts == (FontPatterns{}) {
				t.Errorf("device and fonts defaults not applied: %+v", got)
			}
		})
	}
}

func TestDecodeCodePageZero(t *testing.T) {
	in := []byte{'a', 0x84, 0x0A}
	if got := decodeText(t, Config{}, in).Text; got != "a<84>\n" {
		t.Errorf("code page 0 Text = %q, want ASCII table", got)
	}
	if got := decodeText(t, DefaultConfig(), in).Text; got != "aä\n" {
		t.Errorf("code page 850 Text = %q", got)
	}
}

func TestParseDeviceType(t *testing.T) {
	tests := map[string]DeviceType{
		"":             DevicePrinter,
		"Printer":      DevicePrinter,
		"vfd":          DeviceLineDisplay,
		" linedisplay": DeviceLineDisplay,
	}
	for in, want := range tests {
		got, err := ParseDeviceType(in)
		if err != nil || got != want {
			t.Errorf("ParseDeviceType(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseDeviceType("scanner"); err == nil {
		t.Error("expected error for unknown device")
	}
}

func sampleReceipt() []byte {
	return bytesOf(
		0x1B, 0x40, 0x1B, 0x74, 0x02, 0x1B, 0x52, 0x02,
		0x1B, 0x61, 0x01, "Tisch: 12", 0x0A,
		0x1D, 0x21, 0x11, "1 Pizza [Salami] 9,50", 0x0D, 0x0A,
		0x1D, 0x76, 0x30, 0x00, 0x02, 0x00, 0x02, 0x00, 0xAA, 0x55, 0xAA, 0x55,
		0x1B, 0x01, "noise", 0x0A,
		0x84, 0x94, 0x0A,
		0x1D, 0x56, 0x42, 0x00,
	)
}

func TestDecodeDeterministic(t *testing.T) {
	d, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	first, err := d.Decode(sampleReceipt())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := d.Decode(sampleReceipt())
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if again.Text != first.Text {
			t.Fatalf("run %d text = %q, want %q", i, again.Text, first.Text)
		}
		if len(again.Bitmaps) != len(first.Bitmaps) {
			t.Fatalf("run %d bitmaps = %d, want %d", i, len(again.Bitmaps), len(first.Bitmaps))
		}
		for j := range again.Bitmaps {
			if !bytes.Equal(again.Bitmaps[j].Pix, first.Bitmaps[j].Pix) {
				t.Fatalf("run %d bitmap %d differs", i, j)
			}
		}
	}
	if first.Text != "Tisch: 12\n1 Pizza ÄSalamiÜ 9,50\n\näö\n" {
		t.Errorf("Text = %q", first.Text)
	}
}

func TestDecodeConcurrent(t *testing.T) {
	d, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	want, _ := d.Decode(sampleReceipt())

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := d.Decode(sampleReceipt())
			if err != nil {
				errs <- err.Error()
				return
			}
			if res.Text != want.Text {
				errs <- res.Text
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent decode text = %q, want %q", got, want.Text)
	}
}
