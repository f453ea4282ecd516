// pkg/escpos/tokenize_esc.go
package escpos

var escFixed = map[byte]fixed{
	0x0C: {EscPrintDataInPageMode, 2},
	0x20: {EscRightSideCharacterSpacing, 3},
	0x21: {EscSelectPrintMode, 3},
	0x24: {EscSetAbsolutePrintPosition, 4},
	0x25: {EscSelectUserDefinedCharacterSet, 3},
	0x2D: {EscUnderlineMode, 3},
	0x32: {EscSelectDefaultLineSpacing, 2},
	0x33: {EscSetLineSpacing, 3},
	0x3C: {EscReturnHome, 2},
	0x3D: {EscSelectPeripheralDevice, 3},
	0x3F: {EscCancelUserDefinedCharacters, 3},
	0x40: {EscInitialize, 2},
	0x45: {EscTurnEmphasizedMode, 3},
	0x47: {EscTurnDoubleStrikeMode, 3},
	0x4A: {EscPrintAndFeedPaper, 3},
	0x4B: {EscPrintAndReverseFeed, 3},
	0x4C: {EscSelectPageMode, 2},
	0x4D: {EscSelectCharacterFont, 3},
	0x52: {EscSelectInternationalCharacterSet, 3},
	0x53: {EscSelectStandardMode, 2},
	0x54: {EscSelectPrintDirection, 3},
	0x55: {EscTurnUnidirectionalPrintMode, 3},
	0x56: {EscTurn90ClockwiseRotationMode, 3},
	0x57: {EscSetPrintAreaInPageMode, 10},
	0x5C: {EscSetRelativePrintPosition, 4},
	0x61: {EscSelectJustification, 3},
	0x64: {EscPrintAndFeedLines, 3},
	0x65: {EscPrintAndReverseFeedLines, 3},
	0x66: {EscCutSheetWaitTime, 4},
	0x69: {EscPartialCutOnePoint, 2},
	0x6D: {EscPartialCutThreePoint, 2},
	0x70: {EscGeneratePulse, 5},
	0x72: {EscSelectPrinterColor, 3},
	0x74: {EscSelectCharacterCodeTable, 3},
	0x75: {EscTransmitPeripheralDeviceStatus, 3},
	0x76: {EscTransmitPaperSensorStatus, 2},
	0x7B: {EscTurnUpsideDownPrintMode, 3},
}

var displayEscFixed = map[byte]fixed{
	0x25: {EscSelectUserDefinedCharacterSet, 3},
	0x3D: {EscSelectPeripheralDevice, 3},
	0x3F: {EscCancelUserDefinedCharacters, 3},
	0x40: {EscInitialize, 2},
	0x52: {EscSelectInternationalCharacterSet, 3},
	0x74: {EscSelectCharacterCodeTable, 3},
}

// ESC c <n> selectors
var escPaperSensors = map[byte]CommandType{
	'0': EscSelectPaperTypesPrinting,
	'1': EscSelectPaperTypesCommandSettings,
	'3': EscSelectPaperSensorsPaperEndSignals,
	'4': EscSelectPaperSensorsStopPrinting,
	'5': EscEnableDisablePanelButtons,
}

type cell struct {
	width, height int
	typ           CommandType
}

var (
	cell1224 = cell{12, 24, EscDefineUserDefinedCharacters1224}
	cell1024 = cell{10, 24, EscDefineUserDefinedCharacters1024}
	cell0924 = cell{9, 24, EscDefineUserDefinedCharacters0924}
	cell0917 = cell{9, 17, EscDefineUserDefinedCharacters0917}
	cell0909 = cell{9, 9, EscDefineUserDefinedCharacters0909}
	cell0709 = cell{7, 9, EscDefineUserDefinedCharacters0709}
	cell0816 = cell{8, 16, EscDefineUserDefinedCharacters0816}
	cell0507 = cell{5, 7, EscDefineUserDefinedCharacters0507}
)

// Single byte font cells per SBCS font pattern, font A first.
var sbcsCells = map[int][]cell{
	1: {cell1224, cell1024, cell0816},
	2: {cell1224, cell1024, cell0816},
	3: {cell1224, cell1024, cell0917},
	4: {cell1224, cell0816},
	5: {cell1224, cell0917},
	6: {cell1224, cell0924, cell0917, cell1024, cell0816},
	7: {cell1224, cell0924, cell0917, cell1024, cell0816, cell1224, cell0924},
	8: {cell1224, cell0924, cell1224, cell0924},
	9: {cell0909, cell0709},
}

var displayCells = map[int]cell{
	1: cell0816,
	2: cell0507,
}

// userDefinedCell picks the font cell an ESC & record defines: among the
// pattern's fonts that are y bytes high, the narrowest one that fits the
// widest glyph.
func (s *scanner) userDefinedCell(y, maxX int) cell {
	if s.device == DeviceLineDisplay {
		if c, ok := displayCells[s.fonts.Display]; ok {
			return c
		}
		return cell0816
	}
	cells, ok := sbcsCells[s.fonts.SBCS]
	if !ok {
		cells = sbcsCells[1]
	}

	var best, widest *cell
	for i := range cells {
		c := &cells[i]
		if (c.height+7)/8 != y {
			continue
		}
		if widest == nil || c.width > widest.width {
			widest = c
		}
		if c.width >= maxX && (best == nil || c.width < best.width) {
			best = c
		}
	}
	switch {
	case best != nil:
		return *best
	case widest != nil:
		return *widest
	default:
		return cells[0]
	}
}

// userDefined measures ESC & y c1 c2 [x d1...d(y*x)]...
func (s *scanner) userDefined(p int) (CommandType, int) {
	if !s.has(p, 5) {
		return EscUnknown, s.truncated(p)
	}
	y := int(s.data[p+2])
	c1, c2 := int(s.data[p+3]), int(s.data[p+4])
	count := 0
	if c2 >= c1 {
		count = c2 - c1 + 1
	}

	i, maxX := p+5, 0
	for n := 0; n < count; n++ {
		if !s.has(i, 1) {
			return EscUnknown, s.truncated(p)
		}
		x := int(s.data[i])
		maxX = max(maxX, x)
		i += 1 + x*y
	}
	return s.userDefinedCell(y, maxX).typ, i - p
}

func (s *scanner) esc(p int) (CommandType, int) {
	if !s.has(p, 2) {
		return EscUnknown, s.truncated(p)
	}
	c := s.data[p+1]
	if f, ok := escFixed[c]; ok {
		return f.typ, f.length
	}

	switch c {
	case 0x26: // &
		return s.userDefined(p)
	case 0x2A: // *
		if !s.has(p, 5) {
			return EscUnknown, s.truncated(p)
		}
		n := s.u16(p + 3)
		switch s.data[p+2] {
		case 0, 1:
			return EscSelectBitImageMode, 5 + n
		case 32, 33:
			return EscSelectBitImageMode, 5 + 3*n
		}
	case 0x44: // D
		return EscHorizontalTabPosition, s.terminated(p, 2)
	case 0x63: // c
		if !s.has(p, 3) {
			return EscUnknown, s.truncated(p)
		}
		if t, ok := escPaperSensors[s.data[p+2]]; ok {
			return t, 4
		}
		if t, ok := escPaperSensors[s.data[p+2]+'0']; ok {
			return t, 4
		}
	case 0x28: // (
		return s.escParen(p)
	}
	return EscUnknown, 1
}

func (s *scanner) escParen(p int) (CommandType, int) {
	total, ok := s.paren(p)
	if !ok {
		return EscUnknown, s.truncated(p)
	}
	fn, _ := s.parenFn(p, total, 5)
	switch s.data[p+2] {
	case 'A':
		switch fn {
		case 0x30:
			return EscBeeperBuzzer, total
		case 0x61:
			if total == 8 {
				return EscBeeperBuzzerM1a, total
			}
			return EscBeeperBuzzerM1b, total
		case 0x62:
			return EscBeeperBuzzerOffline, total
		case 0x63:
			return EscBeeperBuzzerNearEnd, total
		}
	case 'Y':
		return EscSpecifyBatchPrint, total
	}
	return EscUnknown, total
}

func (s *scanner) displayEsc(p int) (CommandType, int) {
	if !s.has(p, 2) {
		return EscUnknown, s.truncated(p)
	}
	c := s.data[p+1]
	if f, ok := displayEscFixed[c]; ok {
		return f.typ, f.length
	}

	switch c {
	case 0x26: // &
		return s.userDefined(p)
	case 0x57: // W n m ...
		if !s.has(p, 4) {
			return EscUnknown, s.truncated(p)
		}
		switch s.data[p+3] {
		case 0, '0':
			return DisplayCancelWindowArea, 4
		case 1, '1':
			return DisplaySelectWindowArea, 8
		}
	}
	return EscUnknown, 1
}
