// pkg/escpos/bitmap.go
package escpos

import (
	"fmt"
	"image"
	"image/color"
)

// Layout is the bit packing of monochrome image data.
type Layout string

const (
	// LayoutRaster packs rows left to right, MSB first, each row padded to a byte.
	LayoutRaster Layout = "raster"
	// LayoutColumn packs columns top to bottom, MSB first, each column padded to a byte.
	LayoutColumn Layout = "column"
)

// Plane colours used by ESC/POS colour selectors 1 to 4.
var (
	White  = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Black  = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	Red    = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	Green  = color.RGBA{0x00, 0x80, 0x00, 0xFF}
	Blue   = color.RGBA{0x00, 0x00, 0xFF, 0xFF}
	Yellow = color.RGBA{0xFF, 0xFF, 0x00, 0xFF}
)

// planeColor maps a colour selector byte ('1'-'4') to the ink colour.
func planeColor(c byte) color.Color {
	switch c {
	case '1', 1:
		return Black
	case '2', 2:
		return Red
	case '3', 3:
		return Green
	case '4', 4:
		return Blue
	default:
		return Yellow
	}
}

// Bitmap is a decoded image with index 0 as paper and index 1 as ink.
// Pixels are always stored row-major regardless of the source layout.
type Bitmap struct {
	*image.Paletted
	Layout Layout
	// PackedSize is the number of source bytes the image was unpacked from.
	PackedSize int
}

// Width returns the image width in dots.
func (b *Bitmap) Width() int { return b.Rect.Dx() }

// Height returns the image height in dots.
func (b *Bitmap) Height() int { return b.Rect.Dy() }

func (b *Bitmap) String() string {
	return fmt.Sprintf("%dx%d %s (%d bytes)", b.Width(), b.Height(), b.Layout, b.PackedSize)
}

// PackedSize returns the byte count of a packed monochrome image.
func PackedSize(width, height int, layout Layout) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	if layout == LayoutColumn {
		return width * ((height + 7) / 8)
	}
	return ((width + 7) / 8) * height
}

// Unpack converts packed 1-bit image data into a Bitmap. src must hold at
// least PackedSize bytes; extra bytes are ignored.
func Unpack(width, height int, layout Layout, src []byte, ink color.Color) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid bitmap size %dx%d", width, height)
	}
	size := PackedSize(width, height, layout)
	if len(src) < size {
		return nil, fmt.Errorf("bitmap %dx%d %s needs %d bytes, have %d", width, height, layout, size, len(src))
	}
	if ink == nil {
		ink = Black
	}

	img := image.NewPaletted(image.Rect(0, 0, width, height), color.Palette{White, ink})
	switch layout {
	case LayoutColumn:
		unpackColumn(img, src[:size])
	default:
		layout = LayoutRaster
		unpackRaster(img, src[:size])
	}
	return &Bitmap{Paletted: img, Layout: layout, PackedSize: size}, nil
}

// Blank returns an all-paper bitmap, used for empty user-defined glyphs.
func Blank(width, height int) *Bitmap {
	img := image.NewPaletted(image.Rect(0, 0, width, height), color.Palette{White, Black})
	return &Bitmap{Paletted: img, Layout: LayoutColumn}
}

func unpackRaster(img *image.Paletted, src []byte) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	stride := (w + 7) / 8
	for y := 0; y < h; y++ {
		row := src[y*stride : (y+1)*stride]
		for x := 0; x < w; x++ {
			if row[x/8]&(0x80>>uint(x%8)) != 0 {
				img.Pix[y*img.Stride+x] = 1
			}
		}
	}
}

// unpackColumn writes column-major data straight into row-major pixels, the
// same result as rendering the columns as rows and rotating the image.
func unpackColumn(img *image.Paletted, src []byte) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	stride := (h + 7) / 8
	for x := 0; x < w; x++ {
		col := src[x*stride : (x+1)*stride]
		for y := 0; y < h; y++ {
			if col[y/8]&(0x80>>uint(y%8)) != 0 {
				img.Pix[y*img.Stride+x] = 1
			}
		}
	}
}

// toBitmap converts any decoded image into a two colour bitmap by luminance.
func toBitmap(src image.Image, packed int) *Bitmap {
	b := src.Bounds()
	img := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), color.Palette{White, Black})
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g := color.GrayModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			if g.Y < 0x80 {
				img.Pix[y*img.Stride+x] = 1
			}
		}
	}
	return &Bitmap{Paletted: img, Layout: LayoutRaster, PackedSize: packed}
}
