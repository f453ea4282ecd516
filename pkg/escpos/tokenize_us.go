// pkg/escpos/tokenize_us.go
package escpos

var usFixed = map[byte]fixed{
	0x01: {UsOverwriteMode, 2},
	0x02: {UsVerticalScrollMode, 2},
	0x03: {UsHorizontalScrollMode, 2},
	0x0A: {UsMoveCursorUp, 2},
	0x0D: {UsMoveCursorRightMost, 2},
	0x23: {UsTurnAnnounciatorOnOff, 4},
	0x24: {UsMoveCursorSpecifiedPosition, 4},
	0x2C: {UsDisplayCharWithComma, 3},
	0x2E: {UsDisplayCharWithPeriod, 3},
	0x3A: {UsStartEndMacroDefinition, 2},
	0x3B: {UsDisplayCharWithSemicolon, 3},
	0x40: {UsExecuteSelfTest, 2},
	0x42: {UsMoveCursorBottom, 2},
	0x43: {UsTurnCursorDisplayModeOnOff, 3},
	0x45: {UsSetDisplayBlinkInterval, 3},
	0x54: {UsSetAndDisplayCountTime, 4},
	0x55: {UsDisplayCounterTime, 2},
	0x58: {UsBrightnessAdjustment, 3},
	0x5E: {UsExecuteMacro, 4},
	0x72: {UsTurnReverseMode, 3},
	0x76: {UsStatusConfirmationByDTR, 3},
}

var usParen = map[byte]map[byte]CommandType{
	'E': {
		0x01: UsChangeIntoUserSettingMode,
		0x02: UsEndUserSettingMode,
		0x03: UsSetMemorySwitchValues,
		0x04: UsSendMemorySwitchValues,
	},
	'G': {
		0x60: UsKanjiCharacterModeOnOff,
		0x61: UsSelectKanjiCharacterCodeSystem,
	},
}

func (s *scanner) us(p int) (CommandType, int) {
	if !s.has(p, 2) {
		return UsUnknown, s.truncated(p)
	}
	c := s.data[p+1]
	if f, ok := usFixed[c]; ok {
		return f.typ, f.length
	}
	if c != 0x28 {
		return UsUnknown, 1
	}

	total, ok := s.paren(p)
	if !ok {
		return UsUnknown, s.truncated(p)
	}
	letter := s.data[p+2]
	if letter == 'A' {
		return UsSelectDisplays, total
	}
	fn, _ := s.parenFn(p, total, 5)
	if t, ok := usParen[letter][fn]; ok {
		return t, total
	}
	return UsUnknown, total
}
