// pkg/escpos/tokenize_gs.go
package escpos

var gsFixed = map[byte]fixed{
	0x21: {GsSelectCharacterSize, 3},
	0x24: {GsSetAbsoluteVerticalPrintPosition, 4},
	0x2F: {GsPrintDownloadedBitImage, 3},
	0x3A: {GsStartEndMacroDefinition, 2},
	0x42: {GsTurnWhiteBlackReversePrintMode, 3},
	0x45: {GsSelectHeadControlMethod, 3},
	0x48: {GsSelectPrintPositionHRI, 3},
	0x49: {GsTransmitPrinterID, 3},
	0x4C: {GsSetLeftMargin, 4},
	0x50: {GsSetMotionUnits, 4},
	0x54: {GsSetPrintPositionBeginningOfLine, 3},
	0x57: {GsSetPrintAreaWidth, 4},
	0x5C: {GsSetRelativeVerticalPrintPosition, 4},
	0x5E: {GsExecuteMacro, 5},
	0x61: {GsEnableDisableAutomaticStatusBack, 3},
	0x62: {GsTurnSmoothingMode, 3},
	0x63: {GsPrintCounter, 2},
	0x66: {GsSelectFontHRI, 3},
	0x68: {GsSetBarcodeHeight, 3},
	0x6A: {GsEnableDisableAutomaticStatusBackInk, 3},
	0x72: {GsTransmitStatus, 3},
	0x77: {GsSetBarcodeWidth, 3},
}

// GS ( <letter> <fn> forms, fn at byte 5
var gsParen = map[byte]map[byte]CommandType{
	'B': {0x61: GsCustomizeASBStatusBits},
	'D': {0x14: GsEnableDisableRealtimeCommand},
	'E': {
		0x01: GsChangeUserSettingMode,
		0x02: GsEndUserSettingMode,
		0x03: GsChangeMemorySwitch,
		0x04: GsTransmitSettingsMemorySwitch,
		0x05: GsSetCustomizeSettingValues,
		0x06: GsTransmitCustomizeSettingValues,
		0x07: GsCopyUserDefinedPage,
		0x08: GsDefineColumnFormatCharacterCodePage,
		0x09: GsDefineRasterFormatCharacterCodePage,
		0x0A: GsDeleteCharacterCodePage,
		0x0B: GsSetSerialInterface,
		0x0C: GsTransmitSerialInterface,
		0x0D: GsSetBluetoothInterface,
		0x0E: GsTransmitBluetoothInterface,
		0x0F: GsSetUSBInterface,
		0x10: GsTransmitUSBInterface,
		0x30: GsDeletePaperLayout,
		0x31: GsSetPaperLayout,
		0x32: GsTransmitPaperLayout,
		0x63: GsSetInternalBuzzerPatterns,
		0x64: GsTransmitInternalBuzzerPatterns,
	},
	'G': {
		0x30: GsSelectSideOfSlip,
		0x3C: GsReadMagneticInkCharacter,
		0x40: GsReadDataAndTransmitResult,
		0x41: GsScanImageData,
		0x42: GsRetransmitImageScanningResult,
		0x44: GsDeleteImageScanningResult,
		0x50: GsSelectActiveSheet,
		0x55: GsFinishProcessingOfCutSheet,
	},
	'H': {
		0x30: GsSpecifyProcessIDResponse,
		0x31: GsSpecifyOfflineResponse,
	},
	'K': {
		0x30: GsSelectPrintControlMode,
		0x31: GsSelectPrintDensity,
		0x32: GsSelectPrintSpeed,
		0x61: GsSelectThermalHeadEnergizing,
	},
	'M': {
		0x01: GsSaveSettingsToStorage, 0x31: GsSaveSettingsToStorage,
		0x02: GsLoadSettingsFromStorage, 0x32: GsLoadSettingsFromStorage,
		0x03: GsSelectSettingsAfterInitialize, 0x33: GsSelectSettingsAfterInitialize,
	},
	'N': {
		0x30: GsSetCharacterColor,
		0x31: GsSetBackgroundColor,
		0x32: GsTurnShadingMode,
	},
	'P': {0x30: GsSetPrintableArea},
	'Q': {
		0x30: GsDrawLineInPageMode,
		0x31: GsDrawRectangleInPageMode,
		0x32: GsDrawHorizontalLineInStandardMode,
		0x33: GsDrawVerticalLineInStandardMode,
	},
	'z': {
		0x2A: GsSetReadOperationsOfCheckPaper,
		0x3E: GsSetCounterForReverseSidePrint,
	},
}

// GS ( L and GS 8 L graphics functions
var gsGraphics = map[byte]CommandType{
	0x00: GsTransmitNVGraphicsMemoryCapacity, 0x30: GsTransmitNVGraphicsMemoryCapacity,
	0x01: GsSetReferenceDotDensityGraphics, 0x31: GsSetReferenceDotDensityGraphics,
	0x02: GsPrintGraphicsDataInPrintBuffer, 0x32: GsPrintGraphicsDataInPrintBuffer,
	0x03: GsTransmitNVGraphicsRemainingCapacity, 0x33: GsTransmitNVGraphicsRemainingCapacity,
	0x04: GsTransmitDownloadRemainingCapacity, 0x34: GsTransmitDownloadRemainingCapacity,
	0x40: GsTransmitKeyCodeListNVGraphics,
	0x41: GsDeleteAllNVGraphics,
	0x42: GsDeleteSpecifiedNVGraphics,
	0x43: GsDefineNVGraphicsRaster,
	0x44: GsDefineNVGraphicsColumn,
	0x45: GsPrintSpecifiedNVGraphics,
	0x50: GsTransmitKeyCodeListDownloadGraphics,
	0x51: GsDeleteAllDownloadGraphics,
	0x52: GsDeleteSpecifiedDownloadGraphics,
	0x53: GsDefineDownloadGraphicsRaster,
	0x54: GsDefineDownloadGraphicsColumn,
	0x55: GsPrintSpecifiedDownloadGraphics,
	0x70: GsStoreGraphicsInPrintBufferRaster,
	0x71: GsStoreGraphicsInPrintBufferColumn,
}

// GS ( k functions per symbol, keyed by cn then fn
var gs2DCode = map[byte]map[byte]CommandType{
	0x30: {
		0x41: GsPDF417SetNumberOfColumns,
		0x42: GsPDF417SetNumberOfRows,
		0x43: GsPDF417SetWidthOfModule,
		0x44: GsPDF417SetRowHeight,
		0x45: GsPDF417SetErrorCorrectionLevel,
		0x46: GsPDF417SelectOptions,
		0x50: GsPDF417StoreData,
	},
	0x31: {
		0x41: GsQRCodeSelectModel,
		0x43: GsQRCodeSetSizeOfModule,
		0x45: GsQRCodeSetErrorCorrectionLevel,
		0x50: GsQRCodeStoreData,
	},
	0x32: {
		0x41: GsMaxiCodeSelectMode,
		0x50: GsMaxiCodeStoreData,
	},
	0x33: {
		0x43: GsGS1DataBarSetWidthOfModule,
		0x47: GsGS1DataBarSetExpandStackedMaxWidth,
		0x50: GsGS1DataBarStoreData,
	},
	0x34: {
		0x43: GsCompositeSetWidthOfModule,
		0x47: GsCompositeSetExpandStackedMaxWidth,
		0x48: GsCompositeSelectHRIFont,
		0x50: GsCompositeStoreData,
	},
	0x35: {
		0x42: GsAztecSetModeTypesAndDataLayer,
		0x43: GsAztecSetSizeOfModule,
		0x45: GsAztecSetErrorCorrectionLevel,
		0x50: GsAztecStoreData,
	},
	0x36: {
		0x42: GsDataMatrixSetSymbolTypeColumnsRows,
		0x43: GsDataMatrixSetSizeOfModule,
		0x50: GsDataMatrixStoreData,
	},
}

func (s *scanner) gs(p int) (CommandType, int) {
	if !s.has(p, 2) {
		return GsUnknown, s.truncated(p)
	}
	c := s.data[p+1]
	if f, ok := gsFixed[c]; ok {
		return f.typ, f.length
	}
	if c == 0x28 {
		return s.gsParen(p)
	}
	if c == 0x38 {
		return s.gsDoubleWord(p)
	}

	if !s.has(p, 3) {
		return GsUnknown, s.truncated(p)
	}
	m := s.data[p+2]
	switch c {
	case 0x2A: // * x y d...
		if !s.has(p, 4) {
			return GsUnknown, s.truncated(p)
		}
		return GsDefineDownloadedBitImage, 4 + int(s.data[p+2])*int(s.data[p+3])*8
	case 0x43: // C
		switch m {
		case '0':
			return GsSelectCounterPrintMode, 5
		case '1':
			return GsSelectCounterModeA, 9
		case '2':
			return GsSetCounter, 5
		case ';':
			return GsSelectCounterModeB, s.counterModeB(p)
		}
	case 0x44: // D 30 fn 30 kc1 kc2 b c 'B' 'M' size...
		if !s.has(p, 15) {
			return GsUnknown, s.truncated(p)
		}
		if m != 0x30 {
			break
		}
		switch s.data[p+3] {
		case 0x43:
			return GsDefineWindowsBMPNVGraphics, 9 + s.u32(p+11)
		case 0x53:
			return GsDefineWindowsBMPDownloadGraphics, 9 + s.u32(p+11)
		}
	case 0x51: // Q 0 m xL xH yL yH d...
		if m != '0' {
			break
		}
		if !s.has(p, 8) {
			return GsUnknown, s.truncated(p)
		}
		return GsPrintVariableVerticalSizeBitImage, 8 + s.u16(p+4)*s.u16(p+6)
	case 0x56: // V
		switch m {
		case 0, 1, '0', '1':
			return GsPaperCut, 3
		default:
			return GsPaperFeedAndCut, 4
		}
	case 0x67: // g
		switch m {
		case '0':
			return GsInitializeMaintenanceCounter, 6
		case '2':
			return GsTransmitMaintenanceCounter, 6
		}
	case 0x6B: // k
		switch {
		case m <= 6:
			return GsPrintBarcodeAsciiz, s.terminated(p, 3)
		case m >= 65 && m <= 79:
			if !s.has(p, 4) {
				return GsUnknown, s.truncated(p)
			}
			return GsPrintBarcodeSpecifiedLength, 4 + int(s.data[p+3])
		}
	case 0x76: // v 0 m xL xH yL yH d...
		if m != '0' {
			break
		}
		if !s.has(p, 8) {
			return GsUnknown, s.truncated(p)
		}
		return GsPrintRasterBitImage, 8 + s.u16(p+4)*s.u16(p+6)
	case 0x7A: // z 0 t1 t2
		if m == '0' {
			return GsSetOnlineRecoveryWaitTime, 5
		}
	}
	return GsUnknown, 1
}

// counterModeB measures GS C ; sa ; sb ; sn ; sr ; sc ;
func (s *scanner) counterModeB(p int) int {
	seen := 0
	for i := p + 3; i < len(s.data); i++ {
		if s.data[i] == ';' {
			seen++
			if seen == 5 {
				return i - p + 1
			}
		}
	}
	return s.truncated(p)
}

func (s *scanner) gsParen(p int) (CommandType, int) {
	total, ok := s.paren(p)
	if !ok {
		return GsUnknown, s.truncated(p)
	}
	letter := s.data[p+2]
	switch letter {
	case 'A':
		return GsExecuteTestPrint, total
	case 'C':
		m, _ := s.parenFn(p, total, 6)
		switch m {
		case 0, '0':
			return GsDeleteSpecifiedRecord, total
		case 1, '1':
			return GsStoreDataSpecifiedRecord, total
		case 2, '2':
			return GsTransmitDataSpecifiedRecord, total
		}
		return GsUnknown, total
	case 'L':
		fn, _ := s.parenFn(p, total, 6)
		if t, ok := gsGraphics[fn]; ok {
			return t, total
		}
		return GsUnknown, total
	case 'k':
		cn, _ := s.parenFn(p, total, 5)
		fn, _ := s.parenFn(p, total, 6)
		switch fn {
		case 0x51:
			return Gs2DCodePrintSymbol, total
		case 0x52:
			return Gs2DCodeTransmitSize, total
		}
		if t, ok := gs2DCode[cn][fn]; ok {
			return t, total
		}
		return GsUnknown, total
	}

	fn, _ := s.parenFn(p, total, 5)
	if t, ok := gsParen[letter][fn]; ok {
		return t, total
	}
	return GsUnknown, total
}

// gsDoubleWord measures GS 8 L p1 p2 p3 p4 m fn ...
func (s *scanner) gsDoubleWord(p int) (CommandType, int) {
	if !s.has(p, 7) {
		return GsUnknown, s.truncated(p)
	}
	if s.data[p+2] != 'L' {
		return GsUnknown, 1
	}
	total := 7 + s.u32(p+3)
	fn, _ := s.parenFn(p, total, 8)
	if t, ok := gsGraphics[fn]; ok {
		return t, total
	}
	return GsUnknown, total
}
