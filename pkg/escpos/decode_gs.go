// pkg/escpos/decode_gs.go
package escpos

import (
	"fmt"
)

var gsDescribers = map[CommandType]describeFunc{
	GsSelectCharacterSize:                 describeCharacterSize,
	GsSetAbsoluteVerticalPrintPosition:    func(r *Record) string { return fmt.Sprintf("%d", r.u16(2)) },
	GsTurnWhiteBlackReversePrintMode:      func(r *Record) string { return onOff(r.Data[2], 0x01) },
	GsSelectCounterPrintMode:              describeCounterPrintMode,
	GsSelectCounterModeA:                  describeCounterModeA,
	GsSetCounter:                          func(r *Record) string { return fmt.Sprintf("%d", r.u16(3)) },
	GsSelectCounterModeB:                  func(r *Record) string { return r.ascii(3, len(r.Data)-3) },
	GsSelectHeadControlMethod:             describeHeadControl,
	GsTransmitPrinterID:                   func(r *Record) string { return named(r.Data[2], printerIDs) },
	GsSetLeftMargin:                       func(r *Record) string { return fmt.Sprintf("%d", r.u16(2)) },
	GsSetMotionUnits:                      describeMotionUnits,
	GsSetPrintPositionBeginningOfLine:     describeBeginningOfLine,
	GsPaperCut:                            describePaperCut,
	GsPaperFeedAndCut:                     describePaperCut,
	GsSetPrintAreaWidth:                   func(r *Record) string { return fmt.Sprintf("%d", r.u16(2)) },
	GsSetRelativeVerticalPrintPosition:    func(r *Record) string { return fmt.Sprintf("%d", int16(r.u16(2))) },
	GsExecuteMacro:                        describeExecuteMacro,
	GsEnableDisableAutomaticStatusBack:    describeAutomaticStatusBack,
	GsTurnSmoothingMode:                   func(r *Record) string { return onOff(r.Data[2], 0x01) },
	GsInitializeMaintenanceCounter:        describeMaintenanceCounter,
	GsTransmitMaintenanceCounter:          describeMaintenanceCounter,
	GsEnableDisableAutomaticStatusBackInk: describeAutomaticStatusBackInk,
	GsTransmitStatus:                      func(r *Record) string { return dual(r.Data[2], "Undefined", "Paper sensor", "Drawer kick out connector", "Undefined", "Ink") },
	GsSetOnlineRecoveryWaitTime:           describeRecoveryWaitTime,
}

func describeCharacterSize(r *Record) string {
	m := r.Data[2]
	if m&0x88 != 0 {
		return "Undefined pattern value"
	}
	return fmt.Sprintf("Horizontal:%d, Vertical:%d", m>>4+1, m&0x07+1)
}

var counterLayouts = map[byte]string{
	0: "Right align with leading spaces", '0': "Right align with leading spaces",
	1: "Right align with leading 0", '1': "Right align with leading 0",
	2: "Left align with trailing spaces", '2': "Left align with trailing spaces",
}

func describeCounterPrintMode(r *Record) string {
	digits := "Out of range"
	switch n := r.Data[3]; {
	case n == 0:
		digits = "actual digits"
	case n <= 5:
		digits = fmt.Sprint(n)
	}
	return fmt.Sprintf("Digits:%s, Layout:%s", digits, named(r.Data[4], counterLayouts))
}

// describeCounterModeA decodes GS C 1 aL aH bL bH n r.
func describeCounterModeA(r *Record) string {
	a, b := r.u16(3), r.u16(5)
	n, rep := r.Data[7], r.Data[8]
	mode := "Count Stop"
	switch {
	case n == 0 || rep == 0 || a == b:
	case a < b:
		mode = "Count Up"
	default:
		mode = "Count Down"
	}
	return fmt.Sprintf("Count mode:%s, Range:%d, %d, Stepping amount:%d, Repetition number:%d", mode, a, b, n, rep)
}

func describeHeadControl(r *Record) string {
	m := r.Data[2]
	return fmt.Sprintf("Head energizing time:%s, Print quality:%s, Printing speed:%s",
		flag(m, 0x01, "Normal", "Copy"), flag(m, 0x04, "Fine", "Economy"), flag(m, 0x10, "Low", "High"))
}

var printerIDs = map[byte]string{
	1: "Printer Model ID", '1': "Printer Model ID",
	2: "Type ID", '2': "Type ID",
	3: "Version ID", '3': "Version ID",
	33:  "Type Information",
	35:  "Model specific information 35",
	36:  "Model specific information 36",
	65:  "Firmware Version",
	66:  "Maker name",
	67:  "Model name",
	68:  "Serial number",
	69:  "Font language",
	96:  "Model specific information 96",
	110: "Model specific information 110",
	111: "Model specific information 111",
	112: "Model specific information 112",
}

func describeMotionUnits(r *Record) string {
	unit := func(v byte) string {
		if v == 0 {
			return "Initial value"
		}
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("Basic motion units Horizontal:%s, Vertical:%s", unit(r.Data[2]), unit(r.Data[3]))
}

func describeBeginningOfLine(r *Record) string {
	return dual(r.Data[2],
		"Erases buffer data, then move print position to beginning of line",
		"Prints buffer data, then move print position to beginning of line")
}

// describePaperCut covers the GS V function A to D forms.
func describePaperCut(r *Record) string {
	m := r.Data[2]
	switch m {
	case 0, '0':
		return "Full cut"
	case 1, '1':
		return "Partial cut"
	case 65:
		return fmt.Sprintf("Feed %d and Full cut", r.Data[3])
	case 66:
		return fmt.Sprintf("Feed %d and Partial cut", r.Data[3])
	case 97:
		return fmt.Sprintf("Reserve Full cut at %d", r.Data[3])
	case 98:
		return fmt.Sprintf("Reserve Partial cut at %d", r.Data[3])
	case 103:
		return fmt.Sprintf("Feed %d and Full cut and return", r.Data[3])
	case 104:
		return fmt.Sprintf("Feed %d and Partial cut and return", r.Data[3])
	default:
		return "Undefined"
	}
}

func describeExecuteMacro(r *Record) string {
	mode := named(r.Data[4], map[byte]string{0: "Continuous execution", 1: "Execution by button"})
	return fmt.Sprintf("Times:%d, Wait:%d x 100ms, Mode:%s", r.Data[2], r.Data[3], mode)
}

func describeAutomaticStatusBack(r *Record) string {
	m := r.Data[2]
	return fmt.Sprintf("Panel switch:%s, Roll Paper Sensor:%s, Error:%s, Online/Offline:%s, Drawer kick out connector:%s",
		enabled(m, 0x40), enabled(m, 0x08), enabled(m, 0x04), enabled(m, 0x02), enabled(m, 0x01))
}

var counterCategories = map[int]string{
	1: "Serial impact head",
	2: "Thermal head",
	3: "Ink jet head",
	4: "Shuttle head",
	5: "Standard devices",
	6: "Optional devices",
	7: "Time",
}

// describeMaintenanceCounter covers GS g 0 and GS g 2: m nL nH at offset 3.
func describeMaintenanceCounter(r *Record) string {
	n := r.u16(4)
	category, ok := counterCategories[(n&0x7F)/10]
	if !ok {
		category = "Undefined"
	}
	if r.Type == GsInitializeMaintenanceCounter {
		return fmt.Sprintf("Value:%d, Category:%s", n, category)
	}
	return fmt.Sprintf("Value:%d, Type:%s, Category:%s", n, flag(byte(n), 0x80, "Cumulative", "Resettable"), category)
}

func describeAutomaticStatusBackInk(r *Record) string {
	m := r.Data[2]
	return fmt.Sprintf("Online/Offline:%s, Ink status:%s", enabled(m, 0x02), enabled(m, 0x01))
}

func describeRecoveryWaitTime(r *Record) string {
	return fmt.Sprintf("Paper loading wait:%d x 500ms, Recovery confirmation time:%d x 500ms", r.Data[3], r.Data[4])
}
