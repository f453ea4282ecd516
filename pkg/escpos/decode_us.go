// pkg/escpos/decode_us.go
package escpos

import (
	"fmt"
	"strings"
)

var usDescribers = map[CommandType]describeFunc{
	UsTurnAnnounciatorOnOff:          describeAnnunciator,
	UsMoveCursorSpecifiedPosition:    describeCursorPosition,
	UsDisplayCharWithComma:           func(r *Record) string { return fmt.Sprintf("%c", r.Data[2]) },
	UsDisplayCharWithPeriod:          func(r *Record) string { return fmt.Sprintf("%c", r.Data[2]) },
	UsDisplayCharWithSemicolon:       func(r *Record) string { return fmt.Sprintf("%c", r.Data[2]) },
	UsTurnCursorDisplayModeOnOff:     func(r *Record) string { return dual(r.Data[2], "OFF", "ON") },
	UsSetDisplayBlinkInterval:        func(r *Record) string { return fmt.Sprintf("%d x 50ms", r.Data[2]) },
	UsSetAndDisplayCountTime:         describeCountTime,
	UsBrightnessAdjustment:           func(r *Record) string { return named(r.Data[2], brightnessLevels) },
	UsExecuteMacro:                   describeDisplayMacro,
	UsTurnReverseMode:                func(r *Record) string { return dual(r.Data[2], "OFF", "ON") },
	UsStatusConfirmationByDTR:        func(r *Record) string { return dual(r.Data[2], "DTR Space", "DTR Mark") },
	UsSelectDisplays:                 describeSelectDisplays,
	UsSetMemorySwitchValues:          describeDisplayMemorySwitches,
	UsSendMemorySwitchValues:         describeSendMemorySwitch,
	UsKanjiCharacterModeOnOff:        func(r *Record) string { return dual(r.Data[6], "OFF", "ON") },
	UsSelectKanjiCharacterCodeSystem: func(r *Record) string { return dual(r.Data[6], "JIS", "ShiftJIS") },
}

var brightnessLevels = map[byte]string{1: "20%", 2: "40%", 3: "60%", 4: "100%"}

func describeAnnunciator(r *Record) string {
	return fmt.Sprintf("Mode:%s, Number:%s", dual(r.Data[2], "OFF", "ON"), inRange(int(r.Data[3]), 0, 20))
}

func describeCursorPosition(r *Record) string {
	row := "Out of range"
	if y := r.Data[3]; y == 1 || y == 2 {
		row = fmt.Sprint(y)
	}
	return fmt.Sprintf("Column:%s, Row:%s", inRange(int(r.Data[2]), 1, 20), row)
}

func describeCountTime(r *Record) string {
	return fmt.Sprintf("Hour:%s, Minute:%s", inRange(int(r.Data[2]), 0, 23), inRange(int(r.Data[3]), 0, 59))
}

func describeDisplayMacro(r *Record) string {
	return fmt.Sprintf("InterCharacter Delay:%d x 20ms, InterMacro Idle:%d x 50ms", r.Data[2], r.Data[3])
}

// describeSelectDisplays decodes US ( A pL pH 30 [m d]...
func describeSelectDisplays(r *Record) string {
	length := r.paramLen()
	if length < 3 {
		return "Out of range"
	}
	if length&1 == 0 {
		return "Even length"
	}
	var displays []string
	for i, at := 0, 6; i < (length-1)/2; i, at = i+1, at+2 {
		setting := named(r.Data[at], map[byte]string{48: "Disabled", 49: "Enabled"})
		displays = append(displays, fmt.Sprintf("Setting:%s Display No.:%d", setting, r.Data[at+1]))
	}
	return strings.Join(displays, ", ")
}

var displayMemorySwitches = map[byte]string{
	9:  "Backlight OFF setting",
	10: "Character code table",
	11: "International character set",
	12: "Brightness adjustment",
	13: "Specification of the peripheral device",
	14: "Display of the cursor",
	15: "Number of display",
}

// describeDisplayMemorySwitches decodes US ( E fn 3: [a b1..b8]...
func describeDisplayMemorySwitches(r *Record) string {
	length := r.paramLen()
	if length < 10 {
		return "Out of range"
	}
	if (length-1)%9 != 0 {
		return "Miss align length"
	}
	var out []string
	for i, at := 0, 6; i < (length-1)/9; i, at = i+1, at+9 {
		setting := strings.ReplaceAll(r.ascii(at+1, 8), "2", "_")
		out = append(out, fmt.Sprintf("MemorySwitch:%s Setting:%s", named(r.Data[at], displayMemorySwitches), setting))
	}
	return strings.Join(out, ", ")
}

func describeSendMemorySwitch(r *Record) string {
	m := r.Data[6]
	if (m >= 9 && m <= 15) || (m >= 109 && m <= 112) || m == 114 || m == 115 {
		return fmt.Sprint(m)
	}
	return "Out of range"
}
