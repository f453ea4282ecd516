// pkg/escpos/bmp.go
package escpos

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
)

var errBMPHeader = errors.New("bmp: invalid header")

// decodeIndexedBMP reads the uncompressed 1 and 4 bit per pixel BMP files that
// golang.org/x/image/bmp rejects. Rows are stored bottom-up unless the height
// is negative, each padded to four bytes.
func decodeIndexedBMP(b []byte) (image.Image, error) {
	if len(b) < 54 || b[0] != 'B' || b[1] != 'M' {
		return nil, errBMPHeader
	}
	le := binary.LittleEndian
	offset := int(le.Uint32(b[10:]))
	headerSize := int(le.Uint32(b[14:]))
	if headerSize < 40 || 14+headerSize > len(b) {
		return nil, errBMPHeader
	}
	width := int(int32(le.Uint32(b[18:])))
	height := int(int32(le.Uint32(b[22:])))
	bpp := int(le.Uint16(b[28:]))
	compression := le.Uint32(b[30:])
	colors := int(le.Uint32(b[46:]))

	if bpp != 1 && bpp != 4 {
		return nil, fmt.Errorf("bmp: unsupported depth %d", bpp)
	}
	if compression != 0 {
		return nil, fmt.Errorf("bmp: unsupported compression %d", compression)
	}
	topDown := height < 0
	if topDown {
		height = -height
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bmp: invalid size %dx%d", width, height)
	}

	if colors == 0 || colors > 1<<bpp {
		colors = 1 << bpp
	}
	paletteAt := 14 + headerSize
	if paletteAt+colors*4 > len(b) {
		return nil, errBMPHeader
	}
	palette := make(color.Palette, colors)
	for i := range palette {
		p := b[paletteAt+i*4:]
		palette[i] = color.RGBA{R: p[2], G: p[1], B: p[0], A: 0xFF}
	}

	stride := ((width*bpp + 31) / 32) * 4
	if offset < paletteAt || offset+stride*height > len(b) {
		return nil, fmt.Errorf("bmp: pixel data truncated")
	}

	img := image.NewPaletted(image.Rect(0, 0, width, height), palette)
	perByte := 8 / bpp
	mask := byte(1<<bpp - 1)
	for row := 0; row < height; row++ {
		y := height - 1 - row
		if topDown {
			y = row
		}
		src := b[offset+row*stride:]
		for x := 0; x < width; x++ {
			shift := uint(8 - bpp*(x%perByte+1))
			idx := src[x/perByte] >> shift & mask
			if int(idx) >= colors {
				idx = 0
			}
			img.Pix[y*img.Stride+x] = idx
		}
	}
	return img, nil
}
