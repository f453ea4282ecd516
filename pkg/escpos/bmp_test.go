package escpos

import (
	"image/color"
	"testing"
)

func TestDecodeIndexedBMP(t *testing.T) {
	mono := [][3]byte{{0, 0, 0}, {0xFF, 0xFF, 0xFF}}
	grays := make([][3]byte, 16)
	for i := range grays {
		v := byte(i * 17)
		grays[i] = [3]byte{v, v, v}
	}
	black := color.RGBA{0, 0, 0, 0xFF}
	white := color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

	tests := []struct {
		name   string
		file   []byte
		width  int
		height int
		pixels map[[2]int]color.Color
	}{
		{
			name:   "1 bit bottom-up",
			file:   monoBMP(16, 8, func(x, y int) bool { return x == 0 && y == 0 }),
			width:  16,
			height: 8,
			pixels: map[[2]int]color.Color{{0, 0}: black, {1, 0}: white, {0, 7}: white},
		},
		{
			name: "1 bit top-down odd width",
			file: indexedBMP(9, 3, 1, true, mono, func(x, y int) byte {
				if x == 8 && y == 2 {
					return 0
				}
				return 1
			}),
			width:  9,
			height: 3,
			pixels: map[[2]int]color.Color{{8, 2}: black, {8, 0}: white, {0, 2}: white},
		},
		{
			name:   "4 bit gray ramp",
			file:   indexedBMP(5, 4, 4, false, grays, func(x, y int) byte { return byte(x + y) }),
			width:  5,
			height: 4,
			pixels: map[[2]int]color.Color{
				{0, 0}: black,
				{3, 1}: color.RGBA{68, 68, 68, 0xFF},
				{4, 3}: color.RGBA{119, 119, 119, 0xFF},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := decodeIndexedBMP(tt.file)
			if err != nil {
				t.Fatalf("decodeIndexedBMP() error = %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.width || b.Dy() != tt.height {
				t.Fatalf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.width, tt.height)
			}
			for p, want := range tt.pixels {
				if got := img.At(p[0], p[1]); got != want {
					t.Errorf("At(%d, %d) = %v, want %v", p[0], p[1], got, want)
				}
			}
		})
	}
}

func TestDecodeIndexedBMPErrors(t *testing.T) {
	valid := monoBMP(8, 2, func(x, y int) bool { return false })
	gray := make([][3]byte, 256)

	tests := map[string][]byte{
		"not a bitmap": append([]byte("XX"), valid[2:]...),
		"short header": valid[:30],
		"truncated":    valid[:len(valid)-1],
		"8 bit":        indexedBMP(4, 4, 8, false, gray, func(x, y int) byte { return 0 }),
	}
	for name, file := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := decodeIndexedBMP(file); err == nil {
				t.Error("expected error")
			}
		})
	}
}
