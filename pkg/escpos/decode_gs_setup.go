// pkg/escpos/decode_gs_setup.go
package escpos

import (
	"fmt"
	"strings"
)

var gsSetupDescribers = map[CommandType]describeFunc{
	GsExecuteTestPrint:                    describeTestPrint,
	GsCustomizeASBStatusBits:              describeASBStatusBits,
	GsDeleteSpecifiedRecord:               describeUserRecord,
	GsStoreDataSpecifiedRecord:            describeUserRecord,
	GsTransmitDataSpecifiedRecord:         describeUserRecord,
	GsEnableDisableRealtimeCommand:        describeRealtimeCommands,
	GsChangeMemorySwitch:                  describeChangeMemorySwitch,
	GsTransmitSettingsMemorySwitch:        describeTransmitMemorySwitch,
	GsSetCustomizeSettingValues:           describeCustomizeValues,
	GsTransmitCustomizeSettingValues:      func(r *Record) string { return customizeSwitch(r.Data[6]) },
	GsCopyUserDefinedPage:                 describeCopyUserDefinedPage,
	GsDefineColumnFormatCharacterCodePage: describeColumnCodePage,
	GsDefineRasterFormatCharacterCodePage: describeRasterCodePage,
	GsDeleteCharacterCodePage:             func(r *Record) string { return fmt.Sprintf("1st code:%X, Last code:%X", r.Data[6], r.Data[7]) },
	GsSetSerialInterface:                  describeSerialInterface,
	GsTransmitSerialInterface:             func(r *Record) string { return named(r.Data[6], serialSettings) },
	GsSetBluetoothInterface:               describeBluetoothInterface,
	GsTransmitBluetoothInterface:          func(r *Record) string { return named(r.Data[6], bluetoothSettings) },
	GsSetUSBInterface:                     describeUSBInterface,
	GsTransmitUSBInterface:                func(r *Record) string { return named(r.Data[6], usbSettings) },
	GsSetPaperLayout:                      describeSetPaperLayout,
	GsTransmitPaperLayout:                 describeTransmitPaperLayout,
	GsSetInternalBuzzerPatterns:           describeBuzzerPatterns,
	GsTransmitInternalBuzzerPatterns:      func(r *Record) string { return named(r.Data[6], internalBuzzerPatterns) },

	GsSelectSideOfSlip:              func(r *Record) string { return named(r.Data[6], map[byte]string{4: "Face of slip", 68: "Back of slip"}) },
	GsReadMagneticInkCharacter:      func(r *Record) string { return named(r.Data[8], micrFonts) },
	GsReadDataAndTransmitResult:     describeReadAndTransmit,
	GsScanImageData:                 describeScanImage,
	GsRetransmitImageScanningResult: describeRetransmitScan,
	GsDeleteImageScanningResult:     func(r *Record) string { return fmt.Sprintf("Data ID:%d", r.u16(7)) },
	GsSelectActiveSheet:             describeActiveSheet,
	GsFinishProcessingOfCutSheet:    func(r *Record) string { return named(r.Data[6], map[byte]string{48: "Ejecting operation", 49: "Releasing operation"}) },

	GsSpecifyProcessIDResponse: func(r *Record) string { return r.ascii(7, 4) },
	GsSpecifyOfflineResponse:   describeOfflineResponse,

	GsSelectPrintControlMode:      describePrintControlMode,
	GsSelectPrintDensity:          describePrintDensity,
	GsSelectPrintSpeed:            describePrintSpeed,
	GsSelectThermalHeadEnergizing: describeHeadEnergizing,

	GsSaveSettingsToStorage:         describeSaveSettings,
	GsLoadSettingsFromStorage:       func(r *Record) string { return dual(r.Data[6], "Initial value loaded", "1st saved value loaded") },
	GsSelectSettingsAfterInitialize: func(r *Record) string { return dual(r.Data[6], "Select initial value", "Select 1st saved value") },

	GsSetCharacterColor:  func(r *Record) string { return named(r.Data[6], printColors) },
	GsSetBackgroundColor: func(r *Record) string { return named(r.Data[6], printColors) },
	GsTurnShadingMode:    describeShadingMode,

	GsSetPrintableArea: describePrintableArea,

	GsDrawLineInPageMode:               describeDrawLine,
	GsDrawRectangleInPageMode:          describeDrawRectangle,
	GsDrawHorizontalLineInStandardMode: describeHorizontalLine,
	GsDrawVerticalLineInStandardMode:   describeVerticalLine,

	GsSetReadOperationsOfCheckPaper: describeCheckPaperOperations,
	GsSetCounterForReverseSidePrint: describeReverseSideCounter,
}

func describeTestPrint(r *Record) string {
	paper := dual(r.Data[5], "Basic sheet", "Roll paper", "Roll paper", "Slip(face)", "Validation", "Slip(back)")
	pattern := "Undefined"
	switch r.Data[6] {
	case 1, '1':
		pattern = "Hexadecimal dump"
	case 2, '2':
		pattern = "Printer status"
	case 3, '3':
		pattern = "Rolling pattern"
	case 64:
		pattern = "Automatic setting of paper layout"
	}
	return fmt.Sprintf("Print to:%s, Test pattern:%s", paper, pattern)
}

var asbStatusBits = map[string]string{
	"1,": "cut sheet insertion waiting status",
	"3-": "cut sheet removal waiting status",
	"E8": "card sensor status",
	"F7": "slip paper ejection sensor status",
}

// describeASBStatusBits decodes GS ( B pL pH 61 [n m]...
func describeASBStatusBits(r *Record) string {
	length := r.paramLen()
	if length == 2 {
		if r.Data[6] == 0 {
			return "All Disabled"
		}
		return "Undefined"
	}
	if length < 2 || length > 9 || length&1 == 0 {
		return "Length out of range"
	}
	var bits []string
	for i, at := 0, 6; i < (length-1)/2; i, at = i+1, at+2 {
		s, ok := asbStatusBits[r.ascii(at, 2)]
		if !ok {
			s = "Undefined"
		}
		bits = append(bits, s)
	}
	return strings.Join(bits, ", ")
}

func describeUserRecord(r *Record) string {
	return fmt.Sprintf("Code1:%X, Code2:%X", r.Data[8], r.Data[9])
}

func describeRealtimeCommands(r *Record) string {
	length := r.paramLen()
	if length != 3 && length != 5 {
		return "Length out of range"
	}
	var cmds []string
	for i, at := 0, 6; i < (length-1)/2; i, at = i+1, at+2 {
		typ := named(r.Data[at], map[byte]string{1: "Generate pulse in real-time", 2: "Execute power-off sequence"})
		cmds = append(cmds, fmt.Sprintf("Type:%s, %s", typ, dual(r.Data[at+1], "Disable", "Enable")))
	}
	return strings.Join(cmds, ", ")
}

// describeChangeMemorySwitch decodes GS ( E fn 3: [a b1..b8]... with each bit
// given as '0', '1' or '2' for unchanged.
func describeChangeMemorySwitch(r *Record) string {
	length := r.paramLen()
	if length < 10 {
		return "Out of range"
	}
	if (length-1)%9 != 0 {
		return "Miss align length"
	}
	var out []string
	for i, at := 0, 6; i < (length-1)/9; i, at = i+1, at+9 {
		msw := "Undefined"
		if n := r.Data[at]; n >= 1 && n <= 8 {
			msw = fmt.Sprintf("Msw%d", n)
		}
		setting := strings.ReplaceAll(r.ascii(at+1, 8), "2", "_")
		out = append(out, fmt.Sprintf("MemorySwitch:%s Setting:%s", msw, setting))
	}
	return strings.Join(out, ", ")
}

func describeTransmitMemorySwitch(r *Record) string {
	if n := r.Data[6]; n >= 1 && n <= 8 {
		return fmt.Sprintf("MemorySwitch:Msw%d", n)
	}
	return "Out of range"
}

func validCustomizeSwitch(n byte) bool {
	switch {
	case n >= 1 && n <= 14, n >= 20 && n <= 22:
	case n == 70, n == 71, n == 73, n == 97, n == 98:
	case n >= 100 && n <= 106, n == 111, n == 112:
	case n >= 116 && n <= 194:
	default:
		return false
	}
	return true
}

func customizeSwitch(n byte) string {
	if !validCustomizeSwitch(n) {
		return "Out of range"
	}
	return fmt.Sprint(n)
}

// describeCustomizeValues decodes GS ( E fn 5: [a nL nH]...
func describeCustomizeValues(r *Record) string {
	length := r.paramLen()
	if length < 4 {
		return "Out of range"
	}
	if (length-1)%3 != 0 {
		return "Miss align length"
	}
	var out []string
	for i, at := 0, 6; i < (length-1)/3; i, at = i+1, at+3 {
		if !validCustomizeSwitch(r.Data[at]) {
			return "Out of range"
		}
		out = append(out, fmt.Sprintf("MemorySwitch:%d Setting:%d", r.Data[at], r.u16(at+1)))
	}
	return strings.Join(out, ", ")
}

func describeCopyUserDefinedPage(r *Record) string {
	font := named(r.Data[6], map[byte]string{
		10: "Width 9 dot, Height 17 dot",
		12: "Width 12 dot, Height 24 dot",
		17: "Width 8 dot, Height 16 dot",
		18: "Width 10 dot, Height 24 dot",
	})
	direction := "Undefined"
	switch r.ascii(7, 2) {
	case "\x1E\x1D":
		direction = "FromStorage ToWork"
	case "\x1D\x1E":
		direction = "FromWork ToStorage"
	}
	return fmt.Sprintf("Font size:%s, Direction:%s", font, direction)
}

// describeColumnCodePage decodes GS ( E fn 8 y c1 c2 [x d1...d(y*x)]... where
// every glyph is x dots wide and y bytes tall in column layout.
func describeColumnCodePage(r *Record) string {
	length := r.paramLen()
	if length <= 5 {
		return "Length out of range"
	}
	y := int(r.Data[6])
	c1, c2 := r.Data[7], r.Data[8]
	var glyphs []string
	for i, at := 0, 9; i < int(c2)-int(c1)+1 && at < len(r.Data); i++ {
		x := int(r.Data[at])
		size := x * y
		r.unpackInto(x, y*8, LayoutColumn, at+1, 1)
		glyphs = append(glyphs, fmt.Sprintf("X size:%s dot, this Length:%d", named(byte(x), glyphWidths), size))
		at += size + 1
	}
	return fmt.Sprintf("Length:%d, Y size:%s byte, 1st code:%X, Last code:%X, Each data: %s",
		length, named(byte(y), map[byte]string{2: "2", 3: "3"}), c1, c2, strings.Join(glyphs, ", "))
}

var glyphWidths = map[byte]string{8: "8", 9: "9", 10: "10", 12: "12"}

// describeRasterCodePage decodes GS ( E fn 9 x c1 c2 [y d1...d(x*y)]... where
// every glyph is x bytes wide and y dots tall in raster layout.
func describeRasterCodePage(r *Record) string {
	length := r.paramLen()
	if length <= 5 {
		return "Length out of range"
	}
	x := int(r.Data[6])
	c1, c2 := r.Data[7], r.Data[8]
	var glyphs []string
	for i, at := 0, 9; i < int(c2)-int(c1)+1 && at < len(r.Data); i++ {
		y := int(r.Data[at])
		size := x * y
		r.unpackInto(x*8, y, LayoutRaster, at+1, 1)
		glyphs = append(glyphs, fmt.Sprintf("Y size:%s dot, this Length:%d",
			named(byte(y), map[byte]string{16: "16", 17: "17", 24: "24"}), size))
		at += size + 1
	}
	return fmt.Sprintf("Length:%d, X size:%s byte, 1st code:%X, Last code:%X, Each data: %s",
		length, named(byte(x), map[byte]string{1: "1", 2: "2"}), c1, c2, strings.Join(glyphs, ", "))
}

var serialSettings = map[byte]string{
	1: "Transmission speed",
	2: "Parity",
	3: "Flow control",
	4: "Data bits length",
}

func describeSerialInterface(r *Record) string {
	mode, data := r.Data[6], r.Data[7]
	value := "Undefined"
	switch mode {
	case 1:
		value = r.ascii(7, r.paramLen()-2)
	case 2:
		value = "Undefined parity"
		if s, ok := map[byte]string{48: "None parity", 49: "Odd parity", 50: "Even parity"}[data]; ok {
			value = s
		}
	case 3:
		value = "Undefined flow control"
		if s, ok := map[byte]string{48: "Flow control of DTR/DSR", 49: "Flow control of XON/XOFF"}[data]; ok {
			value = s
		}
	case 4:
		value = "Undefined bits length"
		if s, ok := map[byte]string{55: "7 bits length", 56: "8 bits length"}[data]; ok {
			value = s
		}
	}
	return fmt.Sprintf("Setting:%s, Value:%s", named(mode, serialSettings), value)
}

var bluetoothSettings = map[byte]string{
	48: "Device address",
	49: "Passkey",
	65: "Device name",
	70: "Bundle Seed ID",
	73: "Automatic reconnection with iOS device",
}

func describeBluetoothInterface(r *Record) string {
	setting := "Undefined"
	if r.Data[6] != 48 {
		setting = named(r.Data[6], bluetoothSettings)
	}
	return fmt.Sprintf("Setting:%s, Value:%s", setting, r.ascii(7, r.paramLen()-2))
}

var usbSettings = map[byte]string{1: "Class settings", 32: "IEEE1284 DeviceID settings"}

func describeUSBInterface(r *Record) string {
	v := r.Data[7]
	switch r.Data[6] {
	case 1:
		switch v {
		case 48:
			return "Class settings: Vendor-defined class"
		case 49:
			return "Class settings: Printer class"
		}
		return "Undefined class settings"
	case 32:
		switch v {
		case 48:
			return "IEEE1284 DeviceID settings: Do not transmit"
		case 49:
			return "IEEE1284 DeviceID settings: Transmits"
		}
		return "Undefined IEEE1284 DeviceID settings"
	}
	return "Undefined"
}

func describeSetPaperLayout(r *Record) string {
	mode := named(r.Data[6], map[byte]string{48: "None(does not use layout)", 49: "Top of black mark", 64: "Bottom of label"})
	return fmt.Sprintf("Setting:%s, Value:%s", mode, r.ascii(8, r.paramLen()-3))
}

func describeTransmitPaperLayout(r *Record) string {
	return named(r.Data[6], map[byte]string{
		64: "Setting value of the paper layout (unit: 0.1 mm {0.004\"})",
		80: "Actual value of the paper layout (unit: dot)",
	})
}

var internalBuzzerPatterns = map[byte]string{1: "A", 2: "B", 3: "C", 4: "D", 5: "E"}

// describeBuzzerPatterns decodes GS ( E fn 0x63: [n (on t)x6]...
func describeBuzzerPatterns(r *Record) string {
	length := r.paramLen()
	if length < 14 || (length-1)%13 != 0 {
		return "Length out of range or alignment"
	}
	var beeps []string
	for i, at := 0, 6; i < (length-1)/13 && at < len(r.Data); i, at = i+1, at+13 {
		var steps []string
		for j := 0; j < 6; j++ {
			p := at + 1 + j*2
			sound := named(r.Data[p], map[byte]string{0: "Off", 1: "On"})
			steps = append(steps, fmt.Sprintf("Sound:%s, Duration:%s x 100ms", sound, inRange(int(r.Data[p+1]), 0, 100)))
		}
		beeps = append(beeps, fmt.Sprintf("Pattern:%s, %s", named(r.Data[at], internalBuzzerPatterns), strings.Join(steps, ", ")))
	}
	return fmt.Sprintf("Length:%d, Each data: %s", length, strings.Join(beeps, ", "))
}

var micrFonts = map[byte]string{0: "E13B", 1: "CMC7"}

func describeReadAndTransmit(r *Record) string {
	length := r.paramLen()
	if length < 5 || length > 1029 {
		return "Length out of range"
	}
	scanning := named(r.Data[9], map[byte]string{
		1: "Magnetic ink character",
		2: "Image data",
		3: "Magnetic ink character and Image data",
	})
	return fmt.Sprintf("Length:%d, Data ID:%d, Scanning:%s, Font:%s", length, r.u16(6), scanning, named(r.Data[10], micrFonts))
}

func describeScanImage(r *Record) string {
	length := r.paramLen()
	if length < 5 || length > 1029 {
		return "Length out of range"
	}
	store := named(r.Data[8], map[byte]string{48: "To Work area temporarily", 49: "To NV Memory Image data storage"})
	return fmt.Sprintf("Length:%d, Data ID:%d, Store:%s", length, r.u16(6), store)
}

func describeRetransmitScan(r *Record) string {
	length := r.paramLen()
	if length < 3 || length > 4 {
		return "Length out of range"
	}
	side := "No specified side"
	if length == 4 {
		side = named(r.Data[8], map[byte]string{48: "Face side", 49: "Back side"})
	}
	return fmt.Sprintf("Length:%d, Data ID:%d, Side:%s", length, r.u16(6), side)
}

func describeActiveSheet(r *Record) string {
	m := r.Data[6]
	sel := func(mask byte) string { return flag(m, mask, "Select", "Do not Select") }
	roll := "Disable"
	switch m & 0x03 {
	case 1, 2:
		roll = "Active Sheet"
	case 3:
		roll = "Enable"
	}
	return fmt.Sprintf("Check:%s, Card:%s, Validation:%s, Slip:%s, Roll paper:%s",
		sel(0x20), sel(0x10), sel(0x08), sel(0x04), roll)
}

func describeOfflineResponse(r *Record) string {
	return dual(r.Data[7],
		"Turns off the offline response transmission.",
		"Specifies the offline response transmission (not including the offline cause).",
		"Specifies the offline response transmission (including the offline cause).")
}

func describePrintControlMode(r *Record) string {
	return dual(r.Data[6],
		"Print mode when power is turned on",
		"Print control mode 1",
		"Print control mode 2",
		"Print control mode 3",
		"Print control mode 4")
}

// describePrintDensity reads n as a signed step of 5% around the criterion.
func describePrintDensity(r *Record) string {
	n := int8(r.Data[6])
	switch {
	case n == 0:
		return "Criterion density"
	case n >= -6 && n <= 8:
		return fmt.Sprintf("Criterion density x %d%%", 100+int(n)*5)
	}
	return "Criterion density Undefined"
}

func describePrintSpeed(r *Record) string {
	n := r.Data[6]
	value := "Undefined"
	switch {
	case n == 0 || n == '0':
		value = "Customized value"
	case n >= 1 && n <= 14:
		value = fmt.Sprint(n)
	case n >= '1' && n <= '9'+2:
		value = fmt.Sprint(n - '0')
	}
	return "Print speed level " + value
}

func describeHeadEnergizing(r *Record) string {
	value := dual(r.Data[6], "Customized value", "One-part", "Two-part", "Three-part", "Four-part")
	if r.Data[6] == 14 {
		value = "Automatic control"
	}
	return value + " energizing"
}

func describeSaveSettings(r *Record) string {
	if r.Data[6] == 1 || r.Data[6] == '1' {
		return ""
	}
	return "Undefined"
}

var printColors = map[byte]string{48: "None(not print)", 49: "Color 1", 50: "Color 2", 51: "Color 3"}

func describeShadingMode(r *Record) string {
	color := named(r.Data[7], map[byte]string{48: "None(not print)", 49: "1", 50: "2", 51: "3"})
	return fmt.Sprintf("Shadow mode:%s, Color:%s", dual(r.Data[6], "OFF", "ON"), color)
}

func describePrintableArea(r *Record) string {
	return fmt.Sprintf("Horizontal size:%d, Vertical size:%d, Horizontal offset:%d, c:%s",
		r.u16(6), r.u16(8), r.u16(10), named(r.Data[12], map[byte]string{1: "1"}))
}

var lineStyles = map[byte]string{
	1: "Single line : Thin",
	2: "Single line : Moderately Thick",
	3: "Single line : Thick",
	4: "Double line : Thin",
	5: "Double line : Moderately Thick",
	6: "Double line : Thick",
}

var (
	zeroParam = map[byte]string{48: "0"}
	oneParam  = map[byte]string{1: "1"}
)

func describeDrawLine(r *Record) string {
	return fmt.Sprintf("X start:%d, Y start:%d, X end:%d, Y end:%d, c:%s, Line style:%s, m2:%s",
		r.u16(6), r.u16(8), r.u16(10), r.u16(12),
		named(r.Data[14], oneParam), named(r.Data[15], lineStyles), named(r.Data[16], zeroParam))
}

func describeDrawRectangle(r *Record) string {
	return fmt.Sprintf("X start:%d, Y start:%d, X end:%d, Y end:%d, c:%s, Line style:%s, m2:%s, m3:%s, m4:%s",
		r.u16(6), r.u16(8), r.u16(10), r.u16(12),
		named(r.Data[14], oneParam), named(r.Data[15], lineStyles), named(r.Data[16], zeroParam),
		named(r.Data[17], zeroParam), named(r.Data[18], oneParam))
}

func describeHorizontalLine(r *Record) string {
	return fmt.Sprintf("X start:%d, X end:%d, Feed:%d, c:%s, Line style:%s, m2:%s",
		r.u16(6), r.u16(8), r.Data[10],
		named(r.Data[11], oneParam), named(r.Data[12], lineStyles), named(r.Data[13], zeroParam))
}

func describeVerticalLine(r *Record) string {
	action := named(r.Data[8], map[byte]string{0: "Draw stop", 1: "Draw start"})
	return fmt.Sprintf("X position:%d, Action:%s, c:%s, Line style:%s, m2:%s",
		r.u16(6), action, named(r.Data[9], oneParam), named(r.Data[10], lineStyles), named(r.Data[11], zeroParam))
}

var checkPaperDetections = map[byte]string{
	60: "Multi feed detected : read check paper",
	64: "Magnetic waveforms cannot detected : read check paper",
	65: "Number of unrecognizable characters has exceeded specified number : Magnetic waveforms analysis",
	66: "Abnormality detected : noise measurement",
	70: "reading process check paper",
}

func describeCheckPaperOperations(r *Record) string {
	length := r.paramLen()
	if length < 3 {
		return "Length out of range"
	}
	if length&1 != 1 {
		return "Invalid alignment"
	}
	var ops []string
	for i, at := 0, 6; i < (length-1)/2; i, at = i+1, at+2 {
		n, m := r.Data[at], r.Data[at+1]
		op := dual(m, "Continues", "Cancels")
		if n == 70 {
			op = dual(m, "Paperjam detection level : High", "Paperjam detection level : Low")
		}
		ops = append(ops, fmt.Sprintf("Type:%s, %s", named(n, checkPaperDetections), op))
	}
	return strings.Join(ops, ", ")
}

// describeReverseSideCounter decodes GS ( z pL pH 3E 33 k n1..n4 d c1..c4.
func describeReverseSideCounter(r *Record) string {
	k := r.Data[7]
	digits := "Digits out of range"
	if k >= 1 && k <= 9 {
		digits = fmt.Sprint(k)
	}
	layout := named(r.Data[12], map[byte]string{
		32: "Right align with leading spaces",
		48: "Right align with leading 0",
		0:  "Left align with trailing spaces",
	})
	return fmt.Sprintf("Digits:%s, Layout:%s, Default Value:%d, Incremental Value:%d", digits, layout, r.u32(8), r.u32(13))
}
