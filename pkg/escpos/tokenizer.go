// pkg/escpos/tokenizer.go
package escpos

import (
	"bytes"
	"encoding/binary"
)

// Prefix bytes
const (
	nul = 0x00
	ht  = 0x09
	lf  = 0x0A
	ff  = 0x0C
	cr  = 0x0D
	dle = 0x10
	can = 0x18
	esc = 0x1B
	fs  = 0x1C
	gs  = 0x1D
	us  = 0x1F
)

// fixed is a command whose total length depends only on its second byte.
type fixed struct {
	typ    CommandType
	length int
}

// Scan splits data into records. The spans of the returned records, joined
// in order, always equal data. Bytes that match no known command become
// one-byte unknown records; a command cut off by the end of data becomes a
// single Unknown record holding the remainder.
func Scan(data []byte, device DeviceType, fonts FontPatterns) []*Record {
	if device == "" {
		device = DevicePrinter
	}
	s := &scanner{data: data, device: device, fonts: fonts}

	records := make([]*Record, 0, len(data)/8+1)
	for pos := 0; pos < len(data); {
		typ, n := s.step(pos)
		if n < 1 {
			n = 1
		}
		if pos+n > len(data) {
			records = append(records, s.record(Unknown, pos, len(data)))
			break
		}
		records = append(records, s.record(typ, pos, pos+n))
		pos += n
	}
	return records
}

type scanner struct {
	data   []byte
	device DeviceType
	fonts  FontPatterns
}

func (s *scanner) record(typ CommandType, from, to int) *Record {
	return &Record{
		Type:     typ,
		Category: categoryOf(s.data[from], typ, s.device),
		Device:   s.device,
		Data:     bytes.Clone(s.data[from:to]),
	}
}

func categoryOf(first byte, typ CommandType, device DeviceType) Category {
	if typ.IsUnknown() {
		return CategoryUnknown
	}
	switch {
	case first >= 0x20:
		return CategoryPrintables
	case first == esc:
		return CategoryEscape
	case first == fs && device == DevicePrinter:
		return CategoryFieldSeparator
	case first == gs && device == DevicePrinter:
		return CategoryGroupSeparator
	case first == us && device == DeviceLineDisplay:
		return CategoryUnitSeparator
	default:
		return CategoryControls
	}
}

// truncated returns a length that runs past the end of data.
func (s *scanner) truncated(p int) int {
	return len(s.data) - p + 1
}

// has reports whether n bytes starting at p are available.
func (s *scanner) has(p, n int) bool {
	return p >= 0 && n >= 0 && p+n <= len(s.data)
}

func (s *scanner) u16(i int) int {
	return int(binary.LittleEndian.Uint16(s.data[i:]))
}

func (s *scanner) u32(i int) int {
	return int(binary.LittleEndian.Uint32(s.data[i:]))
}

func (s *scanner) step(p int) (CommandType, int) {
	c := s.data[p]
	switch {
	case c >= 0x20:
		return s.printables(p)
	case c == esc:
		if s.device == DeviceLineDisplay {
			return s.displayEsc(p)
		}
		return s.esc(p)
	case c == fs && s.device == DevicePrinter:
		return s.fs(p)
	case c == gs && s.device == DevicePrinter:
		return s.gs(p)
	case c == us && s.device == DeviceLineDisplay:
		return s.us(p)
	case s.device == DeviceLineDisplay:
		return s.displayControl(p)
	default:
		return s.printerControl(p)
	}
}

func (s *scanner) printables(p int) (CommandType, int) {
	i := p
	for i < len(s.data) && s.data[i] >= 0x20 {
		i++
	}
	if s.device == DeviceLineDisplay {
		return Displayables, i - p
	}
	return Printables, i - p
}

// paren reads the 16-bit parameter length of an ESC (, FS (, GS ( or US (
// command and returns the total command length.
func (s *scanner) paren(p int) (int, bool) {
	if !s.has(p, 5) {
		return 0, false
	}
	return 5 + s.u16(p+3), true
}

// parenFn returns the byte at offset off of a parenthesis command, when the
// declared length covers it.
func (s *scanner) parenFn(p, total, off int) (byte, bool) {
	if off >= total || !s.has(p, off+1) {
		return 0, false
	}
	return s.data[p+off], true
}

// terminated returns the length of a command ending with the first NUL at or
// after offset from.
func (s *scanner) terminated(p, from int) int {
	if i := bytes.IndexByte(s.data[min(p+from, len(s.data)):], nul); i >= 0 {
		return from + i + 1
	}
	return s.truncated(p)
}
