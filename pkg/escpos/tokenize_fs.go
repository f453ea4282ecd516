// pkg/escpos/tokenize_fs.go
package escpos

var fsFixed = map[byte]fixed{
	0x21: {FsSelectPrintModeKanji, 3},
	0x26: {FsSelectKanjiMode, 2},
	0x2D: {FsTurnKanjiUnderlineMode, 3},
	0x2E: {FsCancelKanjiMode, 2},
	0x3F: {FsCancelUserDefinedKanji, 4},
	0x43: {FsSelectKanjiCodeSystem, 3},
	0x53: {FsSetKanjiCharacterSpacing, 4},
	0x57: {FsTurnKanjiQuadrupleMode, 3},
	0x70: {FsPrintNVBitImage, 4},
}

// FS ( <letter> <fn> forms
var fsParen = map[byte]map[byte]CommandType{
	'A': {0x30: FsSelectKanjiCharacterFont},
	'C': {
		0x30: FsSelectCharacterEncodeSystem,
		0x3C: FsSetFontPriority,
	},
	'E': {
		0x3C: FsCancelSetValuesTopBottomLogo,
		0x3D: FsTransmitSetValuesTopBottomLogo,
		0x3E: FsSetTopLogoPrinting,
		0x3F: FsSetBottomLogoPrinting,
		0x40: FsMakeExtendSettingsTopBottomLogo,
		0x41: FsEnableDisableTopBottomLogo,
	},
	'L': {
		0x21: FsPaperLayoutSetting,
		0x22: FsPaperLayoutInformationTransmission,
		0x30: FsTransmitPositioningInformation,
		0x41: FsFeedPaperLabelPeelingPosition,
		0x42: FsFeedPaperCuttingPosition,
		0x43: FsFeedPaperPrintStartingPosition,
		0x50: FsPaperLayoutErrorSpecialMarginSetting,
	},
	'e': {0x33: FsEnableDisableAutomaticStatusBackOption},
	'g': {
		0x20: FsSelectImageScannerCommandSettings,
		0x28: FsSetBasicOperationOfImageScanner,
		0x29: FsSetScanningArea,
		0x32: FsSelectCompressionMethodForImageData,
		0x38: FsDeleteCroppingArea,
		0x39: FsSetCroppingArea,
		0x3C: FsSelectTransmissionFormatForImage,
	},
}

// userDefinedKanji picks the FS 2 glyph size from the MBCS font pattern.
func (s *scanner) userDefinedKanji() (CommandType, int) {
	if s.fonts.MBCS == 5 {
		return FsDefineUserDefinedKanji1616, 32
	}
	return FsDefineUserDefinedKanji2424, 72
}

func (s *scanner) fs(p int) (CommandType, int) {
	if !s.has(p, 2) {
		return FsUnknown, s.truncated(p)
	}
	c := s.data[p+1]
	if f, ok := fsFixed[c]; ok {
		return f.typ, f.length
	}

	switch c {
	case 0x28: // (
		total, ok := s.paren(p)
		if !ok {
			return FsUnknown, s.truncated(p)
		}
		letter := s.data[p+2]
		if letter == 'f' {
			return FsSelectMICRDataHandling, total
		}
		fn, _ := s.parenFn(p, total, 5)
		if t, ok := fsParen[letter][fn]; ok {
			return t, total
		}
		return FsUnknown, total
	case 0x32: // 2 c1 c2 d...
		t, k := s.userDefinedKanji()
		return t, 4 + k
	case 0x61: // a
		if !s.has(p, 3) {
			return FsUnknown, s.truncated(p)
		}
		switch s.data[p+2] {
		case 0, '0':
			return FsReadCheckPaper, 4
		case 1, '1':
			return FsLoadCheckPaper, 3
		case 2, '2':
			return FsEjectCheckPaper, 3
		}
	case 0x67: // g
		if !s.has(p, 3) {
			return FsUnknown, s.truncated(p)
		}
		switch s.data[p+2] {
		case '1':
			if !s.has(p, 10) {
				return FsUnknown, s.truncated(p)
			}
			return FsWriteNVUserMemory, 10 + s.u16(p+8)
		case '2':
			return FsReadNVUserMemory, 10
		}
	case 0x71: // q n [xL xH yL yH d...]...
		return s.nvBitImages(p)
	}
	return FsUnknown, 1
}

// nvBitImages measures FS q. Each image is x*8 dots wide and y*8 dots high.
func (s *scanner) nvBitImages(p int) (CommandType, int) {
	if !s.has(p, 3) {
		return FsUnknown, s.truncated(p)
	}
	n := int(s.data[p+2])
	i := p + 3
	for k := 0; k < n; k++ {
		if !s.has(i, 4) {
			return FsUnknown, s.truncated(p)
		}
		x, y := s.u16(i), s.u16(i+2)
		i += 4 + x*y*8
	}
	return FsDefineNVBitImage, i - p
}
