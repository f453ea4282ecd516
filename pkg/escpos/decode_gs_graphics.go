// pkg/escpos/decode_gs_graphics.go
package escpos

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/bmp"
)

var gsGraphicsDescribers = map[CommandType]describeFunc{
	GsSetReferenceDotDensityGraphics:   describeGraphicsDensity,
	GsDeleteSpecifiedNVGraphics:        describeGraphicsKeyCode,
	GsDeleteSpecifiedDownloadGraphics:  describeGraphicsKeyCode,
	GsPrintSpecifiedNVGraphics:         describePrintGraphics,
	GsPrintSpecifiedDownloadGraphics:   describePrintGraphics,
	GsDefineNVGraphicsRaster:           describeDefineGraphics(LayoutRaster),
	GsDefineNVGraphicsColumn:           describeDefineGraphics(LayoutColumn),
	GsDefineDownloadGraphicsRaster:     describeDefineGraphics(LayoutRaster),
	GsDefineDownloadGraphicsColumn:     describeDefineGraphics(LayoutColumn),
	GsStoreGraphicsInPrintBufferRaster: describeStoreGraphics(LayoutRaster),
	GsStoreGraphicsInPrintBufferColumn: describeStoreGraphics(LayoutColumn),

	GsDefineWindowsBMPNVGraphics:       describeWindowsBMP,
	GsDefineWindowsBMPDownloadGraphics: describeWindowsBMP,

	GsDefineDownloadedBitImage:          describeDownloadedBitImage,
	GsPrintDownloadedBitImage:           func(r *Record) string { return bitImageScale(r.Data[2]) },
	GsPrintVariableVerticalSizeBitImage: describeVariableVerticalBitImage,
	GsPrintRasterBitImage:               describeRasterBitImage,
}

// graphicsParams returns the declared parameter length of a GS ( L or GS 8 L
// record and the offset of the first byte after fn.
func (r *Record) graphicsParams() (length, at int) {
	if r.doubleWord() {
		return r.longParamLen(), 9
	}
	return r.paramLen(), 7
}

var graphicsTones = map[byte]string{48: "Monochrome", 52: "Multiple tone"}

var planeColors = map[byte]string{49: "1", 50: "2", 51: "3", 52: "4"}

var oneOrTwo = map[byte]string{1: "1", 2: "2"}

func bitImageScale(m byte) string {
	return dual(m, "Normal", "Double Width", "Double Height", "Quadruple")
}

func describeGraphicsDensity(r *Record) string {
	_, at := r.graphicsParams()
	x, y := r.Data[at], r.Data[at+1]
	if x != y {
		return "Undefined"
	}
	return named(x, map[byte]string{50: "180", 51: "360"})
}

func describeGraphicsKeyCode(r *Record) string {
	_, at := r.graphicsParams()
	return r.ascii(at, 2)
}

func describePrintGraphics(r *Record) string {
	_, at := r.graphicsParams()
	return fmt.Sprintf("Keycode:%s, X times:%s, Y times:%s",
		r.ascii(at, 2), named(r.Data[at+2], oneOrTwo), named(r.Data[at+3], oneOrTwo))
}

// describeDefineGraphics decodes a key-coded graphics definition:
// a kc1 kc2 b xL xH yL yH [c d1...dk]1...[c d1...dk]b, one bitmap per plane.
func describeDefineGraphics(layout Layout) describeFunc {
	return func(r *Record) string {
		length, at := r.graphicsParams()
		if length < 12 {
			return "Length out of range"
		}
		tone := named(r.Data[at], graphicsTones)
		keycode := r.ascii(at+1, 2)
		planes := int(r.Data[at+3])
		width, height := r.u16(at+4), r.u16(at+6)
		size := PackedSize(width, height, layout)

		var buffers []string
		for i, p := 0, at+8; i < planes && p < len(r.Data); i, p = i+1, p+size+1 {
			c := r.Data[p]
			r.unpackInto(width, height, layout, p+1, c)
			buffers = append(buffers, fmt.Sprintf("Color:%s, Size:%d", named(c, planeColors), size))
		}
		return fmt.Sprintf("Length:%d, Tone:%s, KeyCode:%s, Width:%d, Height:%d, Plane:%d, BufferList:%s",
			length, tone, keycode, width, height, planes, strings.Join(buffers, ", "))
	}
}

// describeStoreGraphics decodes a graphics store into the print buffer:
// a bx by c xL xH yL yH d1...dk.
func describeStoreGraphics(layout Layout) describeFunc {
	return func(r *Record) string {
		length, at := r.graphicsParams()
		if length < 11 {
			return "Length out of range"
		}
		c := r.Data[at+3]
		width, height := r.u16(at+4), r.u16(at+6)
		r.unpackInto(width, height, layout, at+8, c)
		return fmt.Sprintf("Length:%d, Tone:%s, X times:%s, Y times:%s, Color:%s, Width:%d, Height:%d, Size:%d",
			length, named(r.Data[at], graphicsTones), named(r.Data[at+1], oneOrTwo), named(r.Data[at+2], oneOrTwo),
			named(c, planeColors), width, height, PackedSize(width, height, layout))
	}
}

// describeWindowsBMP decodes GS D 30 fn 30 kc1 kc2 b c followed by a BMP file.
func describeWindowsBMP(r *Record) string {
	keycode := r.ascii(5, 2)
	tone := named(r.Data[7], map[byte]string{48: "Monochrome(digital)", 52: "Multiple tone"})
	c := "Undefined"
	if r.Data[8] == 49 {
		c = "Color 1"
	}
	size := r.u32(11)

	var width, height int
	img, err := bmp.Decode(bytes.NewReader(r.Data[9:]))
	if errors.Is(err, bmp.ErrUnsupported) {
		// 1 and 4 bit logos
		img, err = decodeIndexedBMP(r.Data[9:])
	}
	if err == nil {
		bm := toBitmap(img, len(r.Data)-9)
		width, height = bm.Width(), bm.Height()
		r.Bitmaps = append(r.Bitmaps, bm)
	} else if cfg, cerr := bmp.DecodeConfig(bytes.NewReader(r.Data[9:])); cerr == nil {
		width, height = cfg.Width, cfg.Height
	}
	return fmt.Sprintf("Length:%d, Tone:%s, KeyCode:%s, Width:%d, Height:%d, Color:%s, BMPsize:%d",
		len(r.Data), tone, keycode, width, height, c, size)
}

// describeDownloadedBitImage decodes GS * x y d1...d(x*y*8): x*8 dots wide,
// y*8 dots tall, column layout.
func describeDownloadedBitImage(r *Record) string {
	x, y := int(r.Data[2]), int(r.Data[3])
	if x == 0 || y == 0 {
		return fmt.Sprintf("Invalid value Width:%d dots, Height:%d x 8 dots", x, y)
	}
	r.unpackInto(x*8, y*8, LayoutColumn, 4, 1)
	return fmt.Sprintf("Width:%d dots, Height:%d x 8 dots, Length:%d", x, y, x*y*8)
}

// describeVariableVerticalBitImage decodes GS Q 0 m xL xH yL yH d...: x dots
// wide, y bytes tall, column layout.
func describeVariableVerticalBitImage(r *Record) string {
	x, y := r.u16(4), r.u16(6)
	if x >= 1 && x <= 4256 && y >= 1 && y <= 16 {
		r.unpackInto(x, y*8, LayoutColumn, 8, 1)
	}
	return fmt.Sprintf("Mode:%s, Width:%s dots, Height:%s bytes, Size:%d bytes",
		bitImageScale(r.Data[3]), inRange(x, 1, 4256), inRange(y, 1, 16), x*y)
}

// describeRasterBitImage decodes GS v 0 m xL xH yL yH d...: x bytes wide,
// y dots tall, raster layout.
func describeRasterBitImage(r *Record) string {
	x, y := r.u16(4), r.u16(6)
	if x >= 1 && y >= 1 && y <= 4607 {
		r.unpackInto(x*8, y, LayoutRaster, 8, 1)
	}
	return fmt.Sprintf("Mode:%s, Width:%s bytes, Height:%s dots, Size:%d bytes",
		bitImageScale(r.Data[3]), inRange(x, 1, 0xFFFF), inRange(y, 1, 4607), x*y)
}
