// pkg/escpos/assembler.go
package escpos

import (
	"strings"

	"go.uber.org/zap"

	"escpos-service/pkg/escpos/codepage"
)

// SideState is the character state of one device side.
type SideState struct {
	CodePage codepage.Resolution
	ICS      byte
	Replace  codepage.Substitution
	Kanji    bool
	UTF8     bool
}

// DeviceContext is the running state of one assemble pass. The printer and
// the line display keep separate state.
type DeviceContext struct {
	Printer SideState
	Display SideState
}

// NewDeviceContext builds the initial state for cfg.
func NewDeviceContext(cfg Config) *DeviceContext {
	ctx := &DeviceContext{}
	ctx.Printer = initialSide(cfg, false)
	ctx.Display = initialSide(cfg, true)
	return ctx
}

func initialSide(cfg Config, display bool) SideState {
	s := SideState{
		CodePage: codepage.Resolve(cfg.CodePage),
		Kanji:    cfg.Kanji,
	}
	ics := cfg.ICS
	if display && !codepage.DisplayICS(ics) {
		ics = 0
	}
	if sub, ok := codepage.ICS(ics); ok && ics != 0 {
		s.ICS, s.Replace = ics, sub
	}
	return s
}

type assembler struct {
	cfg    Config
	ctx    *DeviceContext
	logger *zap.Logger
}

func newAssembler(cfg Config, logger *zap.Logger) *assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &assembler{cfg: cfg, ctx: NewDeviceContext(cfg), logger: logger}
	a.checkFallback(a.ctx.Printer.CodePage)
	return a
}

// Assemble walks decoded records and returns the text they print together
// with every bitmap the decoder attached.
func Assemble(records []*Record, cfg Config) (string, []*Bitmap) {
	return newAssembler(cfg, nil).run(records)
}

func (a *assembler) run(records []*Record) (string, []*Bitmap) {
	for _, r := range records {
		a.apply(r)
	}

	var out strings.Builder
	var bitmaps []*Bitmap
	for i, r := range records {
		bitmaps = append(bitmaps, r.Bitmaps...)

		if i >= 2 && misSegmented(records[i-2], records[i-1], r) {
			continue
		}
		switch r.Type {
		case PrintAndLineFeed, PrintAndCarriageReturnLineFeed, PrintAndCarriageReturn:
			out.WriteByte('\n')
			continue
		}
		if !printableHex(r.Data) {
			continue
		}
		out.WriteString(r.Text)
	}
	return out.String(), bitmaps
}

// misSegmented matches an unknown record followed by a stray control byte
// and a text run. The text run is usually the tail of the unknown command.
func misSegmented(first, second, third *Record) bool {
	return first.IsUnknown() && second.Type == Controls && third.Type == Printables
}

// printableHex reports whether the dash separated hex form of data stays
// within 0x21-0x7E. Hex digits and dashes always do.
func printableHex(data []byte) bool {
	for _, c := range strings.ReplaceAll(hexString(data), " ", "-") {
		if c < 0x21 || c > 0x7E {
			return false
		}
	}
	return true
}

func (a *assembler) side(r *Record) *SideState {
	if r.Device == DeviceLineDisplay {
		return &a.ctx.Display
	}
	return &a.ctx.Printer
}

// apply updates the device state for r and fills r.Text for text runs.
func (a *assembler) apply(r *Record) {
	display := r.Device == DeviceLineDisplay
	s := a.side(r)

	switch r.Type {
	case EscInitialize:
		utf8 := s.UTF8
		*s = initialSide(a.cfg, display)
		s.UTF8 = utf8
	case EscSelectInternationalCharacterSet:
		a.selectICS(s, r.Data[2], display)
	case EscSelectCharacterCodeTable:
		a.selectCodeTable(s, r.Data[2], display)
	case FsSelectKanjiMode:
		s.Kanji = true
	case FsCancelKanjiMode:
		s.Kanji = false
	case FsSelectCharacterEncodeSystem:
		if len(r.Data) > 6 {
			m := r.Data[6]
			s.UTF8 = m == 2 || m == 50
		}
	case UsKanjiCharacterModeOnOff:
		if len(r.Data) > 6 {
			switch r.Data[6] {
			case 0, 48:
				s.Kanji = false
			case 1, 49:
				s.Kanji = true
			}
		}
	case Printables:
		r.Text = a.text(s, r.Data, true)
	case Displayables:
		r.Text = a.text(s, r.Data, false)
	}
}

func (a *assembler) selectICS(s *SideState, id byte, display bool) {
	sub, ok := codepage.ICS(id)
	if !ok {
		return
	}
	if display && !codepage.DisplayICS(id) {
		s.ICS, s.Replace = 0, nil
		return
	}
	s.ICS = id
	if id != 0 {
		s.Replace = sub
	}
}

func (a *assembler) selectCodeTable(s *SideState, n byte, display bool) {
	lookup := codepage.PrinterCodeTable
	if display {
		lookup = codepage.DisplayCodeTable
	}
	id, ok := lookup(n)
	if !ok {
		a.logger.Debug("Ignoring undefined character code table", zap.Uint8("table", n), zap.Bool("display", display))
		return
	}
	s.CodePage = codepage.Resolve(id)
	a.checkFallback(s.CodePage)
}

func (a *assembler) checkFallback(res codepage.Resolution) {
	if res.Fallback() {
		a.logger.Warn("Code page not available, decoding as ASCII", zap.Int("codePage", res.ID))
	}
}

func (a *assembler) text(s *SideState, data []byte, allowUTF8 bool) string {
	var chars []string
	if allowUTF8 && s.UTF8 {
		chars = codepage.Resolve(65001).Decode(data)
	} else {
		chars = s.CodePage.Decode(data)
	}

	var b strings.Builder
	for _, c := range chars {
		if s.ICS != 0 {
			c = s.Replace.Apply(c)
		}
		b.WriteString(c)
	}
	return b.String()
}
