// pkg/escpos/tokenize_ctl.go
package escpos

var displayControls = map[byte]CommandType{
	0x08: DisplayMoveCursorLeft,
	ht:   DisplayMoveCursorRight,
	lf:   DisplayMoveCursorDown,
	0x0B: DisplayMoveCursorHome,
	ff:   DisplayClearScreen,
	cr:   DisplayMoveCursorLeftMost,
	can:  DisplayClearCursorLine,
}

// DLE DC4 functions and their total lengths
var realtimeRequests = map[byte]fixed{
	1: {DleGeneratePulseRealtime, 5},
	2: {DleExecutePowerOff, 5},
	3: {DleSoundBuzzerRealtime, 8},
	7: {DleTransmitSpecifiedStatus, 4},
	8: {DleClearBuffer, 10},
}

func (s *scanner) printerControl(p int) (CommandType, int) {
	switch s.data[p] {
	case lf:
		return PrintAndLineFeed, 1
	case cr:
		if s.has(p, 2) && s.data[p+1] == lf {
			return PrintAndCarriageReturnLineFeed, 2
		}
		return PrintAndCarriageReturn, 1
	case ht:
		return HorizontalTab, 1
	case ff:
		return PrintAndReturnStandardMode, 1
	case can:
		return CancelPrintDataPageMode, 1
	case dle:
		return s.dle(p)
	default:
		return Controls, 1
	}
}

func (s *scanner) dle(p int) (CommandType, int) {
	if !s.has(p, 2) {
		return Controls, 1
	}
	switch s.data[p+1] {
	case 0x04:
		return DleTransmitRealtimeStatus, 3
	case 0x05:
		return DleSendRealtimeRequest, 3
	case 0x14:
		if !s.has(p, 3) {
			return Controls, s.truncated(p)
		}
		if f, ok := realtimeRequests[s.data[p+2]]; ok {
			return f.typ, f.length
		}
	}
	return Controls, 1
}

func (s *scanner) displayControl(p int) (CommandType, int) {
	if t, ok := displayControls[s.data[p]]; ok {
		return t, 1
	}
	return Controls, 1
}
