package escpos

import (
	"encoding/binary"
)

const (
	LF  = 0x0A
	ESC = 0x1B
	FS  = 0x1C
	GS  = 0x1D
)

// commands holds the byte sequences a POS application typically sends
var commands = struct {
	Initialize   []byte
	BoldOn       []byte
	BoldOff      []byte
	UnderlineOn  []byte
	AlignCenter  []byte
	SizeDouble   []byte
	CharsetPC850 []byte
	FeedLines    []byte // + line count byte
	DrawerKick   []byte
	PrintLogo    []byte
	CutFull      []byte
	CutPartial   []byte
}{
	Initialize:   []byte{ESC, 0x40},                   // ESC @
	BoldOn:       []byte{ESC, 0x45, 0x01},             // ESC E 1
	BoldOff:      []byte{ESC, 0x45, 0x00},             // ESC E 0
	UnderlineOn:  []byte{ESC, 0x2D, 0x01},             // ESC - 1
	AlignCenter:  []byte{ESC, 0x61, 0x01},             // ESC a 1
	SizeDouble:   []byte{GS, 0x21, 0x11},              // GS ! 17
	CharsetPC850: []byte{ESC, 0x74, 0x02},             // ESC t 2
	FeedLines:    []byte{ESC, 0x64},                   // ESC d n
	DrawerKick:   []byte{ESC, 0x70, 0x00, 0x19, 0x19}, // ESC p 0 25 25
	PrintLogo:    []byte{GS, 0x2F, 0x00},              // GS / 0
	CutFull:      []byte{GS, 0x56, 0x00},              // GS V 0
	CutPartial:   []byte{GS, 0x56, 0x01},              // GS V 1
}

// parenCmd frames GS ( letter or FS ( letter with its pL pH length.
func parenCmd(prefix, letter byte, body ...byte) []byte {
	out := []byte{prefix, 0x28, letter, byte(len(body)), byte(len(body) >> 8)}
	return append(out, body...)
}

// doubleWordCmd frames GS 8 L with its four byte length.
func doubleWordCmd(body ...byte) []byte {
	out := []byte{GS, 0x38, 0x4C, 0, 0, 0, 0}
	binary.LittleEndian.PutUint32(out[3:], uint32(len(body)))
	return append(out, body...)
}

// qrCode is the usual GS ( k sequence: model 2, module size, store, print.
func qrCode(data string) []byte {
	store := append([]byte{0x31, 0x50, 0x30}, data...)
	return bytesOf(
		parenCmd(GS, 'k', 0x31, 0x41, 0x31, 0x00),
		parenCmd(GS, 'k', 0x31, 0x43, 0x05),
		parenCmd(GS, 'k', store...),
		parenCmd(GS, 'k', 0x31, 0x51, 0x30),
	)
}

// userDefinedChars builds ESC & y c1 c2 with one x-column glyph per code.
func userDefinedChars(y, c1 byte, widths ...int) []byte {
	out := []byte{ESC, 0x26, y, c1, c1 + byte(len(widths)) - 1}
	for _, x := range widths {
		out = append(out, byte(x))
		out = append(out, make([]byte, x*int(y))...)
	}
	return out
}

// indexedBMP builds an uncompressed BMP file with bpp 1, 4 or 8. Rows are
// written bottom-up unless topDown is set.
func indexedBMP(width, height, bpp int, topDown bool, palette [][3]byte, px func(x, y int) byte) []byte {
	stride := ((width*bpp + 31) / 32) * 4
	offset := 14 + 40 + len(palette)*4
	b := make([]byte, offset+stride*height)
	le := binary.LittleEndian

	b[0], b[1] = 'B', 'M'
	le.PutUint32(b[2:], uint32(len(b)))
	le.PutUint32(b[10:], uint32(offset))
	le.PutUint32(b[14:], 40)
	le.PutUint32(b[18:], uint32(int32(width)))
	h := int32(height)
	if topDown {
		h = -h
	}
	le.PutUint32(b[22:], uint32(h))
	le.PutUint16(b[26:], 1)
	le.PutUint16(b[28:], uint16(bpp))
	le.PutUint32(b[34:], uint32(stride*height))
	le.PutUint32(b[46:], uint32(len(palette)))
	for i, c := range palette {
		// stored as BGR0
		b[54+i*4], b[55+i*4], b[56+i*4] = c[2], c[1], c[0]
	}

	perByte := 8 / bpp
	for row := 0; row < height; row++ {
		y := height - 1 - row
		if topDown {
			y = row
		}
		line := b[offset+row*stride:]
		for x := 0; x < width; x++ {
			shift := uint(8 - bpp*(x%perByte+1))
			line[x/perByte] |= px(x, y) << shift
		}
	}
	return b
}

// monoBMP builds a 1 bit BMP with a black index 0, as logo tools export them.
func monoBMP(width, height int, ink func(x, y int) bool) []byte {
	palette := [][3]byte{{0, 0, 0}, {0xFF, 0xFF, 0xFF}}
	return indexedBMP(width, height, 1, false, palette, func(x, y int) byte {
		if ink(x, y) {
			return 0
		}
		return 1
	})
}

// defineBMP wraps a BMP file in GS D 0 fn 0 kc1 kc2 b c.
func defineBMP(fn byte, keycode string, file []byte) []byte {
	out := []byte{GS, 0x44, 0x30, fn, 0x30, keycode[0], keycode[1], 0x30, 0x31}
	return append(out, file...)
}
