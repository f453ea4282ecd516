package escpos

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func decodeText(t *testing.T, cfg Config, in []byte) *Result {
	t.Helper()
	d, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	res, err := d.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return res
}

func bytesOf(parts ...any) []byte {
	var out []byte
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			out = append(out, v...)
		case []byte:
			out = append(out, v...)
		case byte:
			out = append(out, v)
		case int:
			out = append(out, byte(v))
		}
	}
	return out
}

func TestAssembleText(t *testing.T) {
	selectUTF8 := []byte{0x1C, 0x28, 0x43, 0x02, 0x00, 0x30, 0x02}
	tests := []struct {
		name  string
		cfg   Config
		input []byte
		want  string
	}{
		{
			name:  "initialize then text",
			input: []byte{0x1B, 0x40, 'H', 'i', 0x0A},
			want:  "Hi\n",
		},
		{
			name:  "feed variants",
			input: bytesOf("a", 0x0A, "b", 0x0D, 0x0A, "c", 0x0D),
			want:  "a\nb\nc\n",
		},
		{
			name:  "commands produce no text",
			input: bytesOf(0x1B, 0x2D, 0x01, "x", 0x1D, 0x42, 0x01, "y"),
			want:  "xy",
		},
		{
			name:  "code table switch",
			cfg:   Config{CodePage: 437},
			input: bytesOf(0x9B, 0x0A, 0x1B, 0x74, 0x02, 0x9B),
			want:  "¢\nø",
		},
		{
			name:  "initialize restores code page",
			cfg:   Config{CodePage: 437},
			input: bytesOf(0x1B, 0x74, 0x02, 0x1B, 0x40, 0x9B),
			want:  "¢",
		},
		{
			name:  "undefined code table is ignored",
			cfg:   Config{CodePage: 437},
			input: bytesOf(0x1B, 0x74, 0x09, 0x9B),
			want:  "¢",
		},
		{
			name:  "international character set",
			input: bytesOf("@[", 0x1B, 0x52, 0x02, "@[{~", 0x1B, 0x52, 0x00, "@"),
			want:  "@[§Ääß@",
		},
		{
			name:  "initial ics from config",
			cfg:   Config{ICS: 3},
			input: bytesOf("#1"),
			want:  "£1",
		},
		{
			name:  "utf-8 encode system",
			input: bytesOf(selectUTF8, 0xC3, 0xA9, "t", 0xC3, 0xA9),
			want:  "été",
		},
		{
			name:  "mis-segmented text after unknown escape is dropped",
			input: bytesOf("ok", 0x0A, 0x1B, 0x01, "junk", 0x0A),
			want:  "ok\n\n",
		},
		{
			name:  "line display text",
			cfg:   Config{Device: DeviceLineDisplay, ICS: 2},
			input: bytesOf("@", 0x1B, 0x52, 66, "@"),
			want:  "§@",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := decodeText(t, tt.cfg, tt.input)
			if res.Text != tt.want {
				t.Errorf("Text = %q, want %q", res.Text, tt.want)
			}
		})
	}
}

func TestPrintableIdentity(t *testing.T) {
	var ascii []byte
	for c := byte(0x20); c < 0x7F; c++ {
		ascii = append(ascii, c)
	}
	for _, cp := range []int{437, 850, 852, 866, 1252, 6, 53, 720, 65001} {
		res := decodeText(t, Config{CodePage: cp}, ascii)
		if res.Text != string(ascii) {
			t.Errorf("code page %d: got %q", cp, res.Text)
		}
	}
}

func TestUnavailableCodePageRendersHex(t *testing.T) {
	// ESC t 14 selects PC737, ESC t 38 PC869
	for _, n := range []byte{14, 38} {
		res := decodeText(t, DefaultConfig(), bytesOf(0x1B, 0x74, n, "A", 0x80, 0xE9))
		if res.Text != "A<80><E9>" {
			t.Errorf("ESC t %d: Text = %q", n, res.Text)
		}
	}
}

func TestNewlineCount(t *testing.T) {
	feeds := [][]byte{{0x0A}, {0x0D}, {0x0D, 0x0A}}
	for n := 0; n < 12; n++ {
		var in []byte
		for i := 0; i < n; i++ {
			in = append(in, "item "...)
			in = append(in, feeds[i%len(feeds)]...)
			in = append(in, 0x1B, 0x45, 0x01)
		}
		res := decodeText(t, Config{}, in)
		if got := strings.Count(res.Text, "\n"); got != n {
			t.Errorf("%d feeds produced %d newlines in %q", n, got, res.Text)
		}
	}
}

func TestAssembleCollectsBitmaps(t *testing.T) {
	in := bytesOf("logo", 0x0A,
		0x1D, 0x76, 0x30, 0x00, 0x01, 0x00, 0x02, 0x00, 0xF0, 0x0F,
		0x1D, 0x2A, 0x01, 0x01, make([]byte, 8),
		"end")
	res := decodeText(t, Config{}, in)
	if res.Text != "logo\nend" {
		t.Errorf("Text = %q", res.Text)
	}
	if len(res.Bitmaps) != 2 {
		t.Fatalf("got %d bitmaps, want 2", len(res.Bitmaps))
	}
	if res.Bitmaps[0].Width() != 8 || res.Bitmaps[0].Height() != 2 {
		t.Errorf("first bitmap = %s", res.Bitmaps[0])
	}
}

func TestAssembleSetsRecordText(t *testing.T) {
	records := Scan(bytesOf("ab", 0x0A, "cd"), DevicePrinter, DefaultFontPatterns)
	DecodeRecords(records)
	text, bitmaps := Assemble(records, DefaultConfig())
	if text != "ab\ncd" || len(bitmaps) != 0 {
		t.Errorf("Assemble() = %q, %d bitmaps", text, len(bitmaps))
	}
	if records[0].Text != "ab" || records[2].Text != "cd" {
		t.Errorf("record text = %q, %q", records[0].Text, records[2].Text)
	}
}

func TestDeviceContextKanji(t *testing.T) {
	a := newAssembler(DefaultConfig(), nil)
	for _, r := range Scan([]byte{0x1C, 0x26}, DevicePrinter, DefaultFontPatterns) {
		a.apply(r)
	}
	if !a.ctx.Printer.Kanji {
		t.Error("FS & should turn kanji mode on")
	}
	for _, r := range Scan([]byte{0x1C, 0x2E}, DevicePrinter, DefaultFontPatterns) {
		a.apply(r)
	}
	if a.ctx.Printer.Kanji {
		t.Error("FS . should turn kanji mode off")
	}
	if a.ctx.Display.Kanji {
		t.Error("printer commands must not touch the display side")
	}
}

func TestPrintableHex(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	if !printableHex(all) {
		t.Error("hex rendering should always be printable")
	}
}

func TestCodePageFallbackIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	d, err := New(Config{CodePage: 437}, WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// ESC t 32 selects PC720, which has no table
	res, err := d.Decode(bytesOf(0x1B, 0x74, 32, "abc"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if res.Text != "abc" {
		t.Errorf("Text = %q", res.Text)
	}
	if logs.FilterMessage("Code page not available, decoding as ASCII").Len() != 1 {
		t.Errorf("expected one fallback warning, got %v", logs.All())
	}
}
