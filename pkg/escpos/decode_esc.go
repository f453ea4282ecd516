// pkg/escpos/decode_esc.go
package escpos

import (
	"fmt"
	"strings"

	"escpos-service/pkg/escpos/codepage"
)

var escDescribers = map[CommandType]describeFunc{
	EscRightSideCharacterSpacing:         func(r *Record) string { return fmt.Sprintf("%d dots", r.Data[2]) },
	EscSelectPrintMode:                   describeEscPrintMode,
	EscSetAbsolutePrintPosition:          func(r *Record) string { return fmt.Sprintf("%d", r.u16(2)) },
	EscSelectUserDefinedCharacterSet:     func(r *Record) string { return flag(r.Data[2], 0x01, "Select", "Cancel") },
	EscDefineUserDefinedCharacters1224:   describeUserDefined,
	EscDefineUserDefinedCharacters1024:   describeUserDefined,
	EscDefineUserDefinedCharacters0924:   describeUserDefined,
	EscDefineUserDefinedCharacters0917:   describeUserDefined,
	EscDefineUserDefinedCharacters0909:   describeUserDefined,
	EscDefineUserDefinedCharacters0709:   describeUserDefined,
	EscDefineUserDefinedCharacters0816:   describeUserDefined,
	EscDefineUserDefinedCharacters0507:   describeUserDefined,
	EscBeeperBuzzer:                      describeBuzzer,
	EscBeeperBuzzerM1a:                   describeBuzzerM1a,
	EscBeeperBuzzerM1b:                   describeBuzzerM1b,
	EscBeeperBuzzerOffline:               describeBuzzerOffline,
	EscBeeperBuzzerNearEnd:               describeBuzzerNearEnd,
	EscSpecifyBatchPrint:                 describeBatchPrint,
	EscSelectBitImageMode:                describeBitImage,
	EscUnderlineMode:                     describeUnderline,
	EscSetLineSpacing:                    func(r *Record) string { return fmt.Sprintf("%d dots", r.Data[2]) },
	EscSelectPeripheralDevice:            describePeripheralDevice,
	EscCancelUserDefinedCharacters:       func(r *Record) string { return fmt.Sprintf("Code:%d", r.Data[2]) },
	EscHorizontalTabPosition:             describeTabPositions,
	EscTurnEmphasizedMode:                func(r *Record) string { return onOff(r.Data[2], 0x01) },
	EscTurnDoubleStrikeMode:              func(r *Record) string { return onOff(r.Data[2], 0x01) },
	EscPrintAndFeedPaper:                 func(r *Record) string { return fmt.Sprintf("%d dots", r.Data[2]) },
	EscPrintAndReverseFeed:               func(r *Record) string { return fmt.Sprintf("%d dots", r.Data[2]) },
	EscSelectCharacterFont:               describeCharacterFont,
	EscSelectInternationalCharacterSet:   describeInternationalCharacterSet,
	EscSelectPrintDirection:              describePrintDirection,
	EscTurnUnidirectionalPrintMode:       func(r *Record) string { return onOff(r.Data[2], 0x01) },
	EscTurn90ClockwiseRotationMode:       describeRotation,
	EscSetPrintAreaInPageMode:            describePrintArea,
	EscSetRelativePrintPosition:          func(r *Record) string { return fmt.Sprintf("%d", int16(r.u16(2))) },
	EscSelectJustification:               func(r *Record) string { return dual(r.Data[2], "Left", "Centered", "Right") },
	EscSelectPaperTypesPrinting:          describePaperTypesPrinting,
	EscSelectPaperTypesCommandSettings:   describePaperTypesCommandSettings,
	EscSelectPaperSensorsPaperEndSignals: describePaperSensors,
	EscSelectPaperSensorsStopPrinting:    describePaperSensors,
	EscEnableDisablePanelButtons:         func(r *Record) string { return flag(r.Data[3], 0x01, "Disabled", "Enabled") },
	EscPrintAndFeedLines:                 func(r *Record) string { return fmt.Sprintf("%d lines", r.Data[2]) },
	EscPrintAndReverseFeedLines:          func(r *Record) string { return fmt.Sprintf("%d lines", r.Data[2]) },
	EscCutSheetWaitTime:                  describeCutSheetWait,
	EscGeneratePulse:                     describePulse,
	EscSelectPrinterColor:                func(r *Record) string { return dual(r.Data[2], "Black", "Red") },
	EscSelectCharacterCodeTable:          describeCodeTable,
	EscTransmitPeripheralDeviceStatus:    describePeripheralStatus,
	EscTurnUpsideDownPrintMode:           func(r *Record) string { return onOff(r.Data[2], 0x01) },
}

var displayEscDescribers = map[CommandType]describeFunc{
	DisplayCancelWindowArea: describeCancelWindow,
	DisplaySelectWindowArea: describeSelectWindow,
}

func describeEscPrintMode(r *Record) string {
	m := r.Data[2]
	return fmt.Sprintf("Underline:%s, DoubleWidth:%s, DoubleHeight:%s, Emphasize:%s, Font:%s",
		onOff(m, 0x80), onOff(m, 0x20), onOff(m, 0x10), onOff(m, 0x08), flag(m, 0x01, "B", "A"))
}

var cellsByType = map[CommandType]cell{
	cell1224.typ: cell1224,
	cell1024.typ: cell1024,
	cell0924.typ: cell0924,
	cell0917.typ: cell0917,
	cell0909.typ: cell0909,
	cell0709.typ: cell0709,
	cell0816.typ: cell0816,
	cell0507.typ: cell0507,
}

// describeUserDefined decodes ESC & y c1 c2 [x d1...d(y*x)]... into one glyph
// per character code.
func describeUserDefined(r *Record) string {
	c := cellsByType[r.Type]
	y := int(r.Data[2])
	c1, c2 := int(r.Data[3]), int(r.Data[4])
	count := 0
	if c2 >= c1 {
		count = c2 - c1 + 1
	}
	height := c.height
	if (height+7)/8 != y {
		height = y * 8
	}

	chars := make([]string, 0, count)
	i := 5
	for n := 0; n < count; n++ {
		x := int(r.Data[i])
		size := x * y
		if size > 0 {
			r.unpackInto(x, height, LayoutColumn, i+1, '1')
		} else {
			r.Bitmaps = append(r.Bitmaps, Blank(c.width, c.height))
		}
		chars = append(chars, fmt.Sprintf("X:%d bytes, Size:%d", x, size))
		i += size + 1
	}
	return fmt.Sprintf("VerticalBytes:%d, StartCode:%d, EndCode:%d, Characters:%s",
		y, c1, c2, strings.Join(chars, ", "))
}

var buzzerPatterns = map[byte]string{
	48: "doesn't beep",
	49: "1320 Hz: 1000 ms beeping",
	50: "2490 Hz: 1000 ms beeping",
	51: "1320 Hz: 200 ms beeping",
	52: "2490 Hz: 200 ms beeping",
	53: "1320 Hz: 200 ms beeping, 200 ms off, 200 ms beeping",
	54: "2490 Hz: 200 ms beeping, 200 ms off, 200 ms beeping",
	55: "1320 Hz: 500 ms beeping",
	56: "2490 Hz: 500 ms beeping",
	57: "1320 Hz: 200 ms beeping, 200 ms off, 200 ms beeping, 200 ms off, 200 ms beeping",
	58: "2490 Hz: 200 ms beeping, 200 ms off, 200 ms beeping, 200 ms off, 200 ms beeping",
}

func describeBuzzer(r *Record) string {
	p := r.Data[6]
	return fmt.Sprintf("Cycles:%d, Duration:%d x 100ms, Pattern:%d is %s",
		r.Data[7], r.Data[8], p, named(p, buzzerPatterns))
}

func describeBuzzerM1a(r *Record) string {
	p := r.Data[6]
	name := named(p, map[byte]string{1: "A", 2: "B", 3: "C", 4: "D", 5: "E", 6: "Error", 7: "Paper-End"})
	return fmt.Sprintf("Cycles:%d, Pattern:%d is %s", r.Data[7], p, name)
}

func describeBuzzerM1b(r *Record) string {
	return fmt.Sprintf("Cycles:%d, On-Duration:%d x 100ms, Off-Duration:%d x 100ms",
		r.Data[7], r.Data[8], r.Data[9])
}

var beepTypes = map[byte]string{0: "OFF", 255: "Infinite"}

func describeBuzzerOffline(r *Record) string {
	factor := named(r.Data[6], map[byte]string{
		48: "Cover open",
		49: "Paper end",
		50: "Recoverable error",
		51: "Unrecoverable error",
	})
	return fmt.Sprintf("Factor:%s, Type:%s, On-Duration:%d x 100ms, Off-Duration:%d x 100ms",
		factor, named(r.Data[9], beepTypes), r.Data[10], r.Data[11])
}

func describeBuzzerNearEnd(r *Record) string {
	on, off := r.Data[10], r.Data[11]
	onDuration := fmt.Sprintf("On-Duration:%d Out of range", on)
	switch {
	case on == 255:
		onDuration = "On-Duration:Infinite"
	case on >= 1 && on <= 50:
		onDuration = fmt.Sprintf("On-Duration:%d x 100ms", on)
	}
	offDuration := fmt.Sprintf("Off-Duration:%d Out of range", off)
	if off >= 1 && off <= 50 {
		offDuration = fmt.Sprintf("Off-Duration:%d x 100ms", off)
	}
	return fmt.Sprintf("Type:%s, %s, %s", named(r.Data[9], beepTypes), onDuration, offDuration)
}

func describeBatchPrint(r *Record) string {
	return fmt.Sprintf("%s, %s",
		dual(r.Data[5], "Print buffered batch data", "Start batch buffering"),
		dual(r.Data[6], "Normal direction", "Reverse direction"))
}

// describeBitImage decodes ESC * m nL nH d... as a column image 8 or 24 dots high.
func describeBitImage(r *Record) string {
	m := r.Data[2]
	height := 0
	switch m {
	case 0, 1:
		height = 8
	case 32, 33:
		height = 24
	}
	mode := named(m, map[byte]string{
		0:  "8 dot Single(low) density",
		1:  "8 dot Double(high) density",
		32: "24 dot Single(low) density",
		33: "24 dot Double(high) density",
	})
	width := r.u16(3)
	if height > 0 && width > 0 && width <= 0x960 {
		r.unpackInto(width, height, LayoutColumn, 5, '1')
	}
	return fmt.Sprintf("Mode:%s, Width:%d dot", mode, width)
}

func describeUnderline(r *Record) string {
	return dual(r.Data[2], "OFF", "ON 1 dot", "ON 2 dot")
}

func describePeripheralDevice(r *Record) string {
	return named(r.Data[2], map[byte]string{1: "Printer", 2: "LineDisplay", 3: "Printer and LineDisplay"})
}

func describeTabPositions(r *Record) string {
	end := len(r.Data)
	if r.Data[end-1] == nul {
		end--
	}
	if end <= 2 {
		return "Clear all tab settings."
	}
	stops := make([]string, 0, end-2)
	for _, b := range r.Data[2:end] {
		stops = append(stops, fmt.Sprintf("%02X", b))
	}
	return strings.Join(stops, ",")
}

func describeCharacterFont(r *Record) string {
	switch r.Data[2] {
	case 97:
		return "Special A"
	case 98:
		return "Special B"
	}
	return dual(r.Data[2], "A", "B", "C", "D", "E")
}

func describeInternationalCharacterSet(r *Record) string {
	id := r.Data[2]
	if r.Device == DeviceLineDisplay && !codepage.DisplayICS(id) {
		return "Undefined"
	}
	return codepage.ICSName(id)
}

func describePrintDirection(r *Record) string {
	return dual(r.Data[2],
		"Left to Right : Normal",
		"Bottom to Top : Left90",
		"Right to Left : Rotate180",
		"Top to Bottom : Right90")
}

func describeRotation(r *Record) string {
	return dual(r.Data[2],
		"Turns OFF 90 degree Clockwise Rotation",
		"Turns ON 90 degree Clockwise Rotation : 1 dot Character spacing",
		"Turns ON 90 degree Clockwise Rotation : 5 dot Character spacing")
}

func describePrintArea(r *Record) string {
	return fmt.Sprintf("Top:%d dot, Left:%d dot, Width:%d dot, Height:%d dot",
		r.u16(2), r.u16(4), r.u16(6), r.u16(8))
}

func rollPaper(m byte) string {
	switch m & 0x03 {
	case 0:
		return "Disable"
	case 3:
		return "Enable"
	default:
		return "Active Sheet"
	}
}

func describePaperTypesPrinting(r *Record) string {
	m := r.Data[3]
	return fmt.Sprintf("Validation paper:%s, Slip paper:%s, Roll paper:%s",
		flag(m, 0x08, "Enable", "Disable"), flag(m, 0x04, "Enable", "Disable"), rollPaper(m))
}

func describePaperTypesCommandSettings(r *Record) string {
	m := r.Data[3]
	return fmt.Sprintf("Validation paper:%s, Face of Slip paper:%s, Back of Slip paper:%s, Roll paper:%s",
		flag(m, 0x08, "Enable", "Disable"), flag(m, 0x04, "Enable", "Disable"),
		flag(m, 0x20, "Enable", "Disable"), rollPaper(m))
}

func describePaperSensors(r *Record) string {
	m := r.Data[3]
	return fmt.Sprintf("Validation:%s, SlipBOF:%s, SlipTOF:%s, Empty:%s, Near End:%s",
		flag(m, 0xC0, "Enable", "Disable"), flag(m, 0x20, "Enable", "Disable"),
		flag(m, 0x20, "Enable", "Disable"), flag(m, 0x0C, "Enable", "Disable"),
		flag(m, 0x03, "Enable", "Disable"))
}

func describeCutSheetWait(r *Record) string {
	insert, detect := int(r.Data[2]), int(r.Data[3])
	insertWait, detectWait := "Out of range", "Out of range"
	if insert <= 15 {
		insertWait = fmt.Sprintf("%d minute", insert)
	}
	if detect <= 64 {
		detectWait = fmt.Sprintf("%d x 100ms", detect)
	}
	return fmt.Sprintf("Insertion Wait:%s, Detection Wait:%s", insertWait, detectWait)
}

func describePulse(r *Record) string {
	return fmt.Sprintf("Pin:%s, On-Duration:%d x 100ms, Off-Duration:%d x 100ms",
		dual(r.Data[2], "2", "5"), r.Data[3], r.Data[4])
}

func describeCodeTable(r *Record) string {
	if r.Device == DeviceLineDisplay {
		return codepage.DisplayCodeTableName(r.Data[2])
	}
	return codepage.PrinterCodeTableName(r.Data[2])
}

func describePeripheralStatus(r *Record) string {
	return dual(r.Data[2], "DrawerKickConnector Pin 3")
}

func describeCancelWindow(r *Record) string {
	return fmt.Sprintf("Window number:%s, Action:%s",
		inRange(int(r.Data[2]), 1, 4), dual(r.Data[3], "Release"))
}

func describeSelectWindow(r *Record) string {
	x1, y1, x2, y2 := int(r.Data[4]), int(r.Data[5]), int(r.Data[6]), int(r.Data[7])
	right, bottom := "Out of range", "Out of range"
	if x2 >= 1 && x2 <= 20 && x1 <= x2 {
		right = fmt.Sprint(x2)
	}
	if y2 >= 1 && y2 <= 2 && y1 <= y2 {
		bottom = fmt.Sprint(y2)
	}
	action := "Undefined"
	if m := r.Data[3]; m == 1 || m == '1' {
		action = "Specify"
	}
	return fmt.Sprintf("Window number:%s, Action:%s, Left:%s, Top:%s, Right:%s, Bottom:%s",
		inRange(int(r.Data[2]), 1, 4), action, inRange(x1, 1, 20), inRange(y1, 1, 2), right, bottom)
}
