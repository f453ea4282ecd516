// pkg/escpos/decoder.go
package escpos

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// describeFunc reads a record's parameter bytes and returns its description.
// It may also attach bitmaps to the record.
type describeFunc func(r *Record) string

// describers is the dispatch table. Each command type owns at most one entry;
// types without an entry keep an empty description.
var describers = mergeDescribers(
	escDescribers,
	displayEscDescribers,
	fsDescribers,
	gsDescribers,
	gsSetupDescribers,
	gsGraphicsDescribers,
	gsSymbolDescribers,
	usDescribers,
)

func mergeDescribers(tables ...map[CommandType]describeFunc) map[CommandType]describeFunc {
	out := make(map[CommandType]describeFunc)
	for _, t := range tables {
		for typ, fn := range t {
			out[typ] = fn
		}
	}
	return out
}

// DecodeError reports a record whose parameters could not be read.
type DecodeError struct {
	Index int
	Type  CommandType
	Cause any
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("record %d (%s): %v", e.Index, e.Type, e.Cause)
}

// DecodeRecords fills in the description and bitmaps of every record in
// place. A record that fails to decode keeps whatever it had before and is
// reported in the returned slice; the remaining records are still decoded.
func DecodeRecords(records []*Record) []*DecodeError {
	var failed []*DecodeError
	for i, r := range records {
		if err := describe(r); err != nil {
			err.Index = i
			failed = append(failed, err)
		}
	}
	return failed
}

func describe(r *Record) (derr *DecodeError) {
	fn, ok := describers[r.Type]
	if !ok {
		return nil
	}
	defer func() {
		if p := recover(); p != nil {
			r.Bitmaps = nil
			derr = &DecodeError{Type: r.Type, Cause: p}
		}
	}()
	r.Description = fn(r)
	return nil
}

func (r *Record) u16(i int) int {
	return int(binary.LittleEndian.Uint16(r.Data[i : i+2]))
}

func (r *Record) u32(i int) int {
	return int(binary.LittleEndian.Uint32(r.Data[i : i+4]))
}

// paramLen is the declared parameter length of a parenthesis command.
func (r *Record) paramLen() int {
	return r.u16(3)
}

// longParamLen is the declared parameter length of a GS 8 L command.
func (r *Record) longParamLen() int {
	return r.u32(3)
}

// doubleWord reports whether the record is the GS 8 L form of a graphics command.
func (r *Record) doubleWord() bool {
	return len(r.Data) > 1 && r.Data[1] == '8'
}

// ascii returns n bytes at i as text, clipped to the record.
func (r *Record) ascii(i, n int) string {
	if i >= len(r.Data) || n <= 0 {
		return ""
	}
	return string(r.Data[i:min(i+n, len(r.Data))])
}

func (r *Record) hexFrom(i int) string {
	if i >= len(r.Data) {
		return ""
	}
	return hexString(r.Data[i:])
}

func hexString(b []byte) string {
	return strings.ToUpper(fmt.Sprintf("% x", b))
}

// dual names a parameter accepted both as n and as the ASCII digit '0'+n.
func dual(v byte, names ...string) string {
	if int(v) < len(names) {
		return names[v]
	}
	if v >= '0' && int(v-'0') < len(names) {
		return names[v-'0']
	}
	return "Undefined"
}

func named(v byte, names map[byte]string) string {
	if s, ok := names[v]; ok {
		return s
	}
	return "Undefined"
}

func inRange(v, lo, hi int) string {
	if v < lo || v > hi {
		return "Out of range"
	}
	return strconv.Itoa(v)
}

func flag(v, mask byte, on, off string) string {
	if v&mask != 0 {
		return on
	}
	return off
}

func onOff(v, mask byte) string {
	return flag(v, mask, "ON", "OFF")
}

func enabled(v, mask byte) string {
	return flag(v, mask, "Enabled", "Disabled")
}

// unpackInto decodes one packed image and appends it to the record. Bad
// dimensions leave the record without that image.
func (r *Record) unpackInto(width, height int, layout Layout, from int, ink byte) {
	if from > len(r.Data) {
		return
	}
	bm, err := Unpack(width, height, layout, r.Data[from:], planeColor(ink))
	if err != nil {
		return
	}
	r.Bitmaps = append(r.Bitmaps, bm)
}
