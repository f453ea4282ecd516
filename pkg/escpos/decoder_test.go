package escpos

import (
	"strings"
	"testing"
)

func decodeOne(t *testing.T, device DeviceType, in []byte) *Record {
	t.Helper()
	records := Scan(in, device, DefaultFontPatterns)
	if len(records) != 1 {
		t.Fatalf("Scan(%X) produced %d records, want 1", in, len(records))
	}
	if errs := DecodeRecords(records); len(errs) != 0 {
		t.Fatalf("DecodeRecords() errors = %v", errs)
	}
	return records[0]
}

func TestDescriptions(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"underline off", []byte{0x1B, 0x2D, 0x00}, "OFF"},
		{"underline ascii two dots", []byte{0x1B, 0x2D, '2'}, "ON 2 dot"},
		{"underline out of set", []byte{0x1B, 0x2D, 0x03}, "Undefined"},
		{"underline high byte", []byte{0x1B, 0x2D, 0xFF}, "Undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := decodeOne(t, DevicePrinter, tt.input)
			if !strings.Contains(r.Description, tt.want) {
				t.Errorf("Description = %q, want it to contain %q", r.Description, tt.want)
			}
		})
	}
}

func TestDisplayDescriptions(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"cursor position", []byte{0x1F, 0x24, 0x05, 0x02}, "Column:5, Row:2"},
		{"cursor row out of range", []byte{0x1F, 0x24, 0x05, 0x03}, "Row:Out of range"},
		{"brightness", []byte{0x1F, 0x58, 0x04}, "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := decodeOne(t, DeviceLineDisplay, tt.input)
			if !strings.Contains(r.Description, tt.want) {
				t.Errorf("Description = %q, want it to contain %q", r.Description, tt.want)
			}
		})
	}
}

func TestDecodeRasterBitImage(t *testing.T) {
	// GS v 0, 2 bytes wide, 3 dots tall
	in := []byte{0x1D, 0x76, 0x30, 0x00, 0x02, 0x00, 0x03, 0x00,
		0xFF, 0x00, 0x00, 0xFF, 0x80, 0x01}
	r := decodeOne(t, DevicePrinter, in)
	if r.Type != GsPrintRasterBitImage {
		t.Fatalf("Type = %s", r.Type)
	}
	if len(r.Bitmaps) != 1 {
		t.Fatalf("got %d bitmaps, want 1", len(r.Bitmaps))
	}
	bm := r.Bitmaps[0]
	if bm.Width() != 16 || bm.Height() != 3 {
		t.Errorf("bitmap = %dx%d, want 16x3", bm.Width(), bm.Height())
	}
	if bm.PackedSize != PackedSize(16, 3, LayoutRaster) {
		t.Errorf("PackedSize = %d, want %d", bm.PackedSize, PackedSize(16, 3, LayoutRaster))
	}
	if bm.ColorIndexAt(0, 0) != 1 || bm.ColorIndexAt(8, 0) != 0 || bm.ColorIndexAt(15, 2) != 1 {
		t.Error("unexpected pixel values")
	}
	if !strings.Contains(r.Description, "Width:2 bytes, Height:3 dots") {
		t.Errorf("Description = %q", r.Description)
	}
}

func TestDecodeDownloadGraphicsPlanes(t *testing.T) {
	// GS ( L fn 0x53: tone 48, key "AB", 2 planes of 8x2 raster
	in := []byte{0x1D, 0x28, 0x4C, 0x10, 0x00, 0x30, 0x53,
		0x30, 'A', 'B', 0x02, 0x08, 0x00, 0x02, 0x00,
		'1', 0xFF, 0x00,
		'2', 0x00, 0xFF}
	r := decodeOne(t, DevicePrinter, in)
	if r.Type != GsDefineDownloadGraphicsRaster {
		t.Fatalf("Type = %s", r.Type)
	}
	if len(r.Bitmaps) != 2 {
		t.Fatalf("got %d bitmaps, want 2", len(r.Bitmaps))
	}
	if r.Bitmaps[0].At(0, 0) != Black {
		t.Errorf("plane 1 ink = %v, want black", r.Bitmaps[0].At(0, 0))
	}
	if r.Bitmaps[1].At(0, 1) != Red {
		t.Errorf("plane 2 ink = %v, want red", r.Bitmaps[1].At(0, 1))
	}
	for _, want := range []string{"KeyCode:AB", "Width:8", "Height:2", "Plane:2"} {
		if !strings.Contains(r.Description, want) {
			t.Errorf("Description = %q, missing %q", r.Description, want)
		}
	}
}

func TestDecodeColumnBitImage(t *testing.T) {
	// GS * x=1 y=1: 8x8 column image
	in := append([]byte{0x1D, 0x2A, 0x01, 0x01}, 0x80, 0, 0, 0, 0, 0, 0, 0x01)
	r := decodeOne(t, DevicePrinter, in)
	if len(r.Bitmaps) != 1 {
		t.Fatalf("got %d bitmaps, want 1", len(r.Bitmaps))
	}
	bm := r.Bitmaps[0]
	if bm.Layout != LayoutColumn || bm.Width() != 8 || bm.Height() != 8 {
		t.Fatalf("bitmap = %s", bm)
	}
	if bm.ColorIndexAt(0, 0) != 1 || bm.ColorIndexAt(7, 7) != 1 || bm.ColorIndexAt(7, 0) != 0 {
		t.Error("unexpected pixel values")
	}
}

func TestDecodeRecordsRecovers(t *testing.T) {
	// GS ( L fn 0x31 with no density bytes, then a valid underline command
	in := []byte{0x1D, 0x28, 0x4C, 0x02, 0x00, 0x30, 0x31, 0x1B, 0x2D, 0x01}
	records := Scan(in, DevicePrinter, DefaultFontPatterns)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	errs := DecodeRecords(records)
	if len(errs) != 1 {
		t.Fatalf("got %d decode errors, want 1", len(errs))
	}
	if errs[0].Index != 0 || errs[0].Type != GsSetReferenceDotDensityGraphics {
		t.Errorf("error = %v", errs[0])
	}
	if records[1].Description != "ON 1 dot" {
		t.Errorf("second record Description = %q, want %q", records[1].Description, "ON 1 dot")
	}
}

func TestEveryDescriberHasAType(t *testing.T) {
	for typ := range describers {
		if typ == "" || typ.IsUnknown() {
			t.Errorf("describer registered for %q", typ)
		}
	}
}

func TestGraphicsDescriptions(t *testing.T) {
	storeRaster := []byte{0x30, 0x70, 0x30, 0x01, 0x01, 0x31, 0x08, 0x00, 0x02, 0x00, 0xFF, 0x00}
	logo := monoBMP(16, 8, func(x, y int) bool { return x == y })

	tests := []struct {
		name  string
		input []byte
		want  []string
	}{
		{"gs ( L store raster", parenCmd(GS, 'L', storeRaster...), []string{"Tone:Monochrome", "Width:8, Height:2, Size:2"}},
		{"gs 8 L store raster", doubleWordCmd(storeRaster...), []string{"Length:12", "Width:8, Height:2, Size:2"}},
		{"gs Q 0", bytesOf(GS, 0x51, 0x30, 0x00, 0x08, 0x00, 0x01, 0x00, make([]byte, 8)),
			[]string{"Mode:Normal, Width:8 dots, Height:1 bytes, Size:8 bytes"}},
		{"fs 2 kanji glyph", bytesOf(FS, 0x32, 0x77, 0x21, make([]byte, 72)), []string{"CharacterCode:7721"}},
		{"fs q nv images", bytesOf(FS, 0x71, 0x01, 0x01, 0x00, 0x01, 0x00, make([]byte, 8)), []string{"NVImageCount:1"}},
		{"esc & user defined", userDefinedChars(3, 'A', 12),
			[]string{"VerticalBytes:3, StartCode:65, EndCode:65, Characters:X:12 bytes, Size:36"}},
		{"gs D download bmp", defineBMP(0x53, "LG", logo),
			[]string{"Tone:Monochrome(digital), KeyCode:LG, Width:16, Height:8, Color:Color 1", "BMPsize:94"}},
		{"gs D nv bmp", defineBMP(0x43, "NV", logo), []string{"KeyCode:NV, Width:16, Height:8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := decodeOne(t, DevicePrinter, tt.input)
			for _, want := range tt.want {
				if !strings.Contains(r.Description, want) {
					t.Errorf("Description = %q, missing %q", r.Description, want)
				}
			}
		})
	}
}

func TestSymbolDescriptions(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		typ   CommandType
		want  string
	}{
		{"qr model", parenCmd(GS, 'k', 0x31, 0x41, 0x31, 0x00), GsQRCodeSelectModel, "Model 2"},
		{"qr module size", parenCmd(GS, 'k', 0x31, 0x43, 0x05), GsQRCodeSetSizeOfModule, "5"},
		{"qr module size too big", parenCmd(GS, 'k', 0x31, 0x43, 0x20), GsQRCodeSetSizeOfModule, "Out of range"},
		{"qr error correction", parenCmd(GS, 'k', 0x31, 0x45, 0x33), GsQRCodeSetErrorCorrectionLevel, "H"},
		{"qr store", parenCmd(GS, 'k', bytesOf(0x31, 0x50, 0x30, "hello world")...), GsQRCodeStoreData, "11"},
		{"qr print", parenCmd(GS, 'k', 0x31, 0x51, 0x30), Gs2DCodePrintSymbol, "QR Code"},
		{"pdf417 columns", parenCmd(GS, 'k', 0x30, 0x41, 0x03), GsPDF417SetNumberOfColumns, "3"},
		{"datamatrix size", parenCmd(GS, 'k', 0x36, 0x52, 0x30), Gs2DCodeTransmitSize, "DataMatrix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := decodeOne(t, DevicePrinter, tt.input)
			if r.Type != tt.typ {
				t.Fatalf("Type = %s, want %s", r.Type, tt.typ)
			}
			if r.Description != tt.want {
				t.Errorf("Description = %q, want %q", r.Description, tt.want)
			}
		})
	}
}

func TestDecodeBitmapSizes(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		typ    CommandType
		count  int
		width  int
		height int
		layout Layout
	}{
		{
			name:  "gs 8 L raster store",
			input: doubleWordCmd(0x30, 0x70, 0x30, 0x01, 0x01, 0x31, 0x08, 0x00, 0x02, 0x00, 0xFF, 0x00),
			typ:   GsStoreGraphicsInPrintBufferRaster, count: 1, width: 8, height: 2, layout: LayoutRaster,
		},
		{
			name:  "gs 8 L column store",
			input: doubleWordCmd(bytesOf(0x30, 0x71, 0x30, 0x01, 0x01, 0x31, 0x08, 0x00, 0x08, 0x00, make([]byte, 8))...),
			typ:   GsStoreGraphicsInPrintBufferColumn, count: 1, width: 8, height: 8, layout: LayoutColumn,
		},
		{
			name:  "gs Q 0",
			input: bytesOf(GS, 0x51, 0x30, 0x00, 0x08, 0x00, 0x01, 0x00, make([]byte, 8)),
			typ:   GsPrintVariableVerticalSizeBitImage, count: 1, width: 8, height: 8, layout: LayoutColumn,
		},
		{
			name:  "fs 2",
			input: bytesOf(FS, 0x32, 0x77, 0x21, make([]byte, 72)),
			typ:   FsDefineUserDefinedKanji2424, count: 1, width: 24, height: 24, layout: LayoutColumn,
		},
		{
			name:  "fs q two images",
			input: bytesOf(FS, 0x71, 0x02, 0x01, 0x00, 0x01, 0x00, make([]byte, 8), 0x02, 0x00, 0x01, 0x00, make([]byte, 16)),
			typ:   FsDefineNVBitImage, count: 2, width: 8, height: 8, layout: LayoutColumn,
		},
		{
			name:  "esc & glyph and empty code",
			input: userDefinedChars(3, 'A', 12, 0),
			typ:   EscDefineUserDefinedCharacters1224, count: 2, width: 12, height: 24, layout: LayoutColumn,
		},
		{
			name:  "gs D 1 bit bmp",
			input: defineBMP(0x53, "LG", monoBMP(16, 8, func(x, y int) bool { return true })),
			typ:   GsDefineWindowsBMPDownloadGraphics, count: 1, width: 16, height: 8, layout: LayoutRaster,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := decodeOne(t, DevicePrinter, tt.input)
			if r.Type != tt.typ {
				t.Fatalf("Type = %s, want %s", r.Type, tt.typ)
			}
			if len(r.Bitmaps) != tt.count {
				t.Fatalf("got %d bitmaps, want %d", len(r.Bitmaps), tt.count)
			}
			bm := r.Bitmaps[0]
			if bm.Width() != tt.width || bm.Height() != tt.height || bm.Layout != tt.layout {
				t.Errorf("bitmap = %s, want %dx%d %s", bm, tt.width, tt.height, tt.layout)
			}
		})
	}
}

func TestDecodeMonochromeBMP(t *testing.T) {
	// diagonal plus the bottom-right corner
	logo := monoBMP(16, 8, func(x, y int) bool { return x == y || (x == 15 && y == 7) })
	r := decodeOne(t, DevicePrinter, defineBMP(0x53, "LG", logo))
	if len(r.Bitmaps) != 1 {
		t.Fatalf("got %d bitmaps, want 1", len(r.Bitmaps))
	}
	bm := r.Bitmaps[0]
	if bm.PackedSize != len(logo) {
		t.Errorf("PackedSize = %d, want %d", bm.PackedSize, len(logo))
	}
	checks := []struct {
		x, y int
		ink  uint8
	}{
		{0, 0, 1}, {1, 0, 0}, {3, 3, 1}, {0, 7, 0}, {15, 7, 1}, {15, 0, 0},
	}
	for _, c := range checks {
		if got := bm.ColorIndexAt(c.x, c.y); got != c.ink {
			t.Errorf("pixel (%d, %d) = %d, want %d", c.x, c.y, got, c.ink)
		}
	}
}
