package codepage

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		id   int
		kind Kind
	}{
		{"embedded hiragana", 6, KindEmbedded},
		{"embedded unknown falls back to ascii table", 99, KindEmbedded},
		{"system cp850", 850, KindSystem},
		{"system shift jis", 932, KindSystem},
		{"system utf8", 65001, KindSystem},
		{"missing cp720", 720, KindDefaultASCII},
		{"missing indic", 57002, KindDefaultASCII},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(tt.id)
			if r.Kind != tt.kind {
				t.Errorf("Resolve(%d).Kind = %v, want %v", tt.id, r.Kind, tt.kind)
			}
			if r.ID != tt.id {
				t.Errorf("Resolve(%d).ID = %d", tt.id, r.ID)
			}
		})
	}
}

func TestDecodeASCIIIdentity(t *testing.T) {
	input := []byte("Hello, World! 0123456789 ~")
	for _, id := range []int{437, 850, 1252, 866, 6, 53, 254, 720, 932} {
		got := strings.Join(Resolve(id).Decode(input), "")
		if got != string(input) {
			t.Errorf("code page %d: got %q, want %q", id, got, input)
		}
	}
}

func TestDecodeUpperHalf(t *testing.T) {
	tests := []struct {
		id   int
		in   []byte
		want string
	}{
		{850, []byte{0x81}, "ü"},
		{1252, []byte{0x80}, "€"},
		{6, []byte{0xB1}, "あ"},
		{44, []byte{0xF2}, "Ґ"},
		{53, []byte{0x80}, "Ә"},
		{932, []byte{0x82, 0xA0}, "あ"},
		{254, []byte{0x9F}, "<9F>"},
	}

	for _, tt := range tests {
		got := strings.Join(Resolve(tt.id).Decode(tt.in), "")
		if got != tt.want {
			t.Errorf("code page %d: got %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestCodeTables(t *testing.T) {
	if id, ok := PrinterCodeTable(2); !ok || id != 850 {
		t.Errorf("PrinterCodeTable(2) = %d, %v", id, ok)
	}
	if _, ok := DisplayCodeTable(6); ok {
		t.Error("line display should not support page 6")
	}
	if id, ok := DisplayCodeTable(53); !ok || id != 53 {
		t.Errorf("DisplayCodeTable(53) = %d, %v", id, ok)
	}
	if got := PrinterCodeTableName(9); got != "Undefined" {
		t.Errorf("PrinterCodeTableName(9) = %q", got)
	}
}

func TestICS(t *testing.T) {
	sub, ok := ICS(3)
	if !ok {
		t.Fatal("ICS(3) missing")
	}
	if got := sub.Apply("#"); got != "£" {
		t.Errorf("U.K. # = %q, want £", got)
	}
	if got := sub.Apply("A"); got != "A" {
		t.Errorf("U.K. A = %q", got)
	}

	usa, _ := ICS(0)
	if len(usa) != 0 {
		t.Errorf("U.S.A. table should be empty, has %d entries", len(usa))
	}

	if _, ok := ICS(18); ok {
		t.Error("ICS(18) should not exist")
	}
	if ICSName(14) != "Slovenia / Croatia" {
		t.Errorf("ICSName(14) = %q", ICSName(14))
	}
	if DisplayICS(66) {
		t.Error("line display should reject Indic sets")
	}
}

func TestUnavailableCodeTablesFallBack(t *testing.T) {
	// ESC t values whose code pages golang.org/x/text does not provide
	tables := map[byte]int{13: 857, 14: 737, 32: 720, 33: 775, 35: 861, 37: 864, 38: 869}
	for n, want := range tables {
		id, ok := PrinterCodeTable(n)
		if !ok || id != want {
			t.Fatalf("PrinterCodeTable(%d) = %d, %v, want %d", n, id, ok, want)
		}
		r := Resolve(id)
		if !r.Fallback() {
			t.Errorf("Resolve(%d) = %v, want ASCII fallback", id, r.Kind)
		}
		got := strings.Join(r.Decode([]byte{'A', 0x80, 0xFF}), "")
		if got != "A<80><FF>" {
			t.Errorf("code page %d renders %q, want hex upper half", id, got)
		}
	}
}
