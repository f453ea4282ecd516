// pkg/escpos/record.go
package escpos

import (
	"fmt"
	"strings"
)

// DeviceType selects the command set a byte stream is interpreted with.
type DeviceType string

const (
	DevicePrinter     DeviceType = "printer"
	DeviceLineDisplay DeviceType = "linedisplay"
)

// ParseDeviceType accepts the names used in configuration and on the command line.
func ParseDeviceType(s string) (DeviceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "printer", "prt", "p":
		return DevicePrinter, nil
	case "linedisplay", "display", "vfd", "l", "d":
		return DeviceLineDisplay, nil
	default:
		return "", fmt.Errorf("unknown device type %q", s)
	}
}

// Category groups command types by their leading byte.
type Category string

const (
	CategoryPrintables     Category = "PRINTABLES"
	CategoryControls       Category = "CONTROLS"
	CategoryEscape         Category = "ESC"
	CategoryFieldSeparator Category = "FS"
	CategoryGroupSeparator Category = "GS"
	CategoryUnitSeparator  Category = "US"
	CategoryUnknown        Category = "UNKNOWN"
)

// FontPatterns pick the character cell sizes a device model uses for
// user-defined characters.
type FontPatterns struct {
	SBCS    int // 1-9
	MBCS    int // 1-5
	Display int // 1-2
}

// DefaultFontPatterns is pattern 1 for every font class.
var DefaultFontPatterns = FontPatterns{SBCS: 1, MBCS: 1, Display: 1}

// Validate checks the pattern ranges.
func (f FontPatterns) Validate() error {
	if f.SBCS < 1 || f.SBCS > 9 {
		return fmt.Errorf("sbcs font pattern %d out of range 1-9", f.SBCS)
	}
	if f.MBCS < 1 || f.MBCS > 5 {
		return fmt.Errorf("mbcs font pattern %d out of range 1-5", f.MBCS)
	}
	if f.Display < 1 || f.Display > 2 {
		return fmt.Errorf("display font pattern %d out of range 1-2", f.Display)
	}
	return nil
}

// Record is one tokenized command or run of printable bytes.
type Record struct {
	Type     CommandType
	Category Category
	Device   DeviceType
	// Data is the exact span of the input this record covers.
	Data        []byte
	Description string
	Bitmaps     []*Bitmap
	// Text is the decoded text the assembler produced for this record.
	Text string
}

// Len returns the number of input bytes the record consumed.
func (r *Record) Len() int {
	return len(r.Data)
}

// Hex renders the raw bytes as space separated hex pairs.
func (r *Record) Hex() string {
	var b strings.Builder
	for i, c := range r.Data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", c)
	}
	return b.String()
}

// IsUnknown reports whether the record could not be classified.
func (r *Record) IsUnknown() bool {
	return r.Category == CategoryUnknown
}

func (r *Record) String() string {
	if r.Description == "" {
		return fmt.Sprintf("%s [%d]", r.Type, r.Len())
	}
	return fmt.Sprintf("%s [%d] %s", r.Type, r.Len(), r.Description)
}
