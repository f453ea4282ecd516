// pkg/escpos/decode_fs.go
package escpos

import (
	"fmt"
	"strings"
)

var fsDescribers = map[CommandType]describeFunc{
	FsSelectPrintModeKanji:                   describeKanjiPrintMode,
	FsTurnKanjiUnderlineMode:                 describeUnderline,
	FsDefineUserDefinedKanji2424:             describeUserDefinedKanji,
	FsDefineUserDefinedKanji1616:             describeUserDefinedKanji,
	FsCancelUserDefinedKanji:                 func(r *Record) string { return fmt.Sprintf("CharacterCode:%X", r.u16be(2)) },
	FsSelectKanjiCodeSystem:                  func(r *Record) string { return dual(r.Data[2], "JIS", "ShiftJIS", "ShiftJIS2004") },
	FsSetKanjiCharacterSpacing:               describeKanjiSpacing,
	FsTurnKanjiQuadrupleMode:                 func(r *Record) string { return onOff(r.Data[2], 0x01) },
	FsReadCheckPaper:                         describeReadCheckPaper,
	FsWriteNVUserMemory:                      describeNVUserMemory,
	FsReadNVUserMemory:                       describeNVUserMemory,
	FsPrintNVBitImage:                        describePrintNVBitImage,
	FsDefineNVBitImage:                       describeDefineNVBitImage,
	FsSelectKanjiCharacterFont:               func(r *Record) string { return dual(r.Data[6], "A", "B", "C") },
	FsSelectCharacterEncodeSystem:            describeEncodeSystem,
	FsSetFontPriority:                        describeFontPriority,
	FsCancelSetValuesTopBottomLogo:           func(r *Record) string { return named(r.Data[7], logoLocations) },
	FsTransmitSetValuesTopBottomLogo:         func(r *Record) string { return named(r.Data[7], logoLocations) },
	FsSetTopLogoPrinting:                     describeTopLogo,
	FsSetBottomLogoPrinting:                  describeBottomLogo,
	FsMakeExtendSettingsTopBottomLogo:        describeLogoExtendSettings,
	FsEnableDisableTopBottomLogo:             describeLogoEnable,
	FsPaperLayoutSetting:                     describePaperLayoutSetting,
	FsPaperLayoutInformationTransmission:     func(r *Record) string { return named(r.Data[6], map[byte]string{64: "Setting value", 80: "Effective value"}) },
	FsFeedPaperLabelPeelingPosition:          describeFeedToPeeling,
	FsFeedPaperCuttingPosition:               describeFeedToCutting,
	FsFeedPaperPrintStartingPosition:         describeFeedToPrintStart,
	FsPaperLayoutErrorSpecialMarginSetting:   describeLayoutErrorMargin,
	FsEnableDisableAutomaticStatusBackOption: func(r *Record) string { return enabled(r.Data[6], 0x08) },
	FsSelectMICRDataHandling:                 describeMICRDataHandling,
	FsSelectImageScannerCommandSettings:      describeImageScanner,
	FsSetBasicOperationOfImageScanner:        describeScannerOperation,
	FsSetScanningArea:                        func(r *Record) string { return describeScanArea(r.Data[6:10]) },
	FsSelectCompressionMethodForImageData:    describeCompression,
	FsDeleteCroppingArea:                     describeDeleteCropping,
	FsSetCroppingArea:                        describeSetCropping,
	FsSelectTransmissionFormatForImage:       describeTransmissionFormat,
}

// u16be reads a two byte character code.
func (r *Record) u16be(i int) int {
	return int(r.Data[i])<<8 | int(r.Data[i+1])
}

func describeKanjiPrintMode(r *Record) string {
	m := r.Data[2]
	return fmt.Sprintf("Underline:%s, DoubleWidth:%s, DoubleHeight:%s",
		onOff(m, 0x80), onOff(m, 0x20), onOff(m, 0x10))
}

// describeUserDefinedKanji decodes FS 2 c1 c2 d... as one square column glyph.
func describeUserDefinedKanji(r *Record) string {
	size := 24
	if r.Type == FsDefineUserDefinedKanji1616 {
		size = 16
	}
	r.unpackInto(size, size, LayoutColumn, 4, '1')
	return fmt.Sprintf("CharacterCode:%X", r.u16be(2))
}

func describeKanjiSpacing(r *Record) string {
	return fmt.Sprintf("LeftSideSpacing:%d dots, RightSideSpacing:%d dots", r.Data[2], r.Data[3])
}

func describeReadCheckPaper(r *Record) string {
	switch r.Data[3] & 0x03 {
	case 0:
		return "E13B"
	case 1:
		return "CMC7"
	default:
		return "Reserved"
	}
}

// describeNVUserMemory covers FS g 1 and FS g 2: m a1-a4 nL nH.
func describeNVUserMemory(r *Record) string {
	start, size := r.u32(4), r.u16(8)
	address, length := "Out of range", "Out of range"
	if start < 0x400 {
		address = fmt.Sprintf("0x%08X", start)
	}
	if size != 0 && size <= 0x400 {
		length = fmt.Sprintf("0x%04X", size)
	}
	return fmt.Sprintf("StartAddress:%s, Size:%s", address, length)
}

func describePrintNVBitImage(r *Record) string {
	number := fmt.Sprint(r.Data[2])
	if r.Data[2] == 0 {
		number = "0=Unsupported"
	}
	return fmt.Sprintf("NVImageNumber:%s, Scaling:%s", number,
		dual(r.Data[3], "Normal", "DoubleWidth", "DoubleHeight", "Quadruple"))
}

// describeDefineNVBitImage decodes FS q n [xL xH yL yH d...]... Each image is
// x*8 dots wide and y*8 dots high in column layout.
func describeDefineNVBitImage(r *Record) string {
	n := int(r.Data[2])
	count := fmt.Sprint(n)
	if n == 0 {
		count = "0=Unsupported"
	}
	i := 3
	for k := 0; k < n; k++ {
		x, y := r.u16(i), r.u16(i+2)
		i += 4
		if x > 0 && x <= 1023 && y > 0 && y <= 288 {
			r.unpackInto(x*8, y*8, LayoutColumn, i, '1')
		}
		i += x * y * 8
	}
	return fmt.Sprintf("NVImageCount:%s", count)
}

func describeEncodeSystem(r *Record) string {
	switch r.Data[6] {
	case 1, '1':
		return "1 byte character encoding"
	case 2, '2':
		return "UTF-8"
	default:
		return "Undefined"
	}
}

func describeFontPriority(r *Record) string {
	font := named(r.Data[7], map[byte]string{
		0:  "ANK",
		11: "Japanese",
		20: "Simplified Chinese",
		30: "Traditional Chinese",
		41: "Korean",
	})
	return fmt.Sprintf("Priority:%s, Font:%s", named(r.Data[6], map[byte]string{0: "1st", 1: "2nd"}), font)
}

var logoLocations = map[byte]string{
	48: "Top Logo",
	49: "Bottom Logo",
	50: "Both Top & Bottom Logo",
}

var logoAlignments = map[byte]string{48: "Left", 49: "Center", 50: "Right"}

func describeTopLogo(r *Record) string {
	return fmt.Sprintf("KeyCode1:%X, KeyCode2:%X, Align:%s, Remove:%d Lines",
		r.Data[7], r.Data[8], named(r.Data[9], logoAlignments), r.Data[10])
}

func describeBottomLogo(r *Record) string {
	return fmt.Sprintf("KeyCode1:%X, KeyCode2:%X, Align:%s",
		r.Data[7], r.Data[8], named(r.Data[9], logoAlignments))
}

var logoTimings = map[byte]string{
	48: "While Paper feeding to Cutting position:",
	64: "At Power-On:",
	65: "When Roll paper cover is Closed:",
	66: "While Clearing Buffer to Recover from Recoverable Error:",
	67: "After Paper feeding with Paper feed button has Finished:",
}

func describeLogoExtendSettings(r *Record) string {
	length := r.paramLen()
	switch {
	case length < 4 || length > 12:
		return "Out of range"
	case length%2 == 1:
		return "Odd length"
	}
	settings := make([]string, 0, length/2-1)
	for i := 7; i+1 < 5+length; i += 2 {
		timing, ok := logoTimings[r.Data[i]]
		if !ok {
			timing = "Undefined:"
		}
		settings = append(settings, timing+named(r.Data[i+1], map[byte]string{48: "Enable", 49: "Disable"}))
	}
	return strings.Join(settings, ", ")
}

func describeLogoEnable(r *Record) string {
	return fmt.Sprintf("Location:%s, Mode:%s",
		named(r.Data[7], map[byte]string{48: "Top Logo", 49: "Bottom Logo"}),
		named(r.Data[8], map[byte]string{48: "Enable", 49: "Disable"}))
}

var layoutReferences = map[byte]string{
	48: "Receipt(no black mark): do not use layout",
	49: "Die cut label paper(no black mark): Print Label top edge, Eject Label bottom edge",
	50: "Die cut label paper(black mark): Print Black mark bottom edge, Eject Black mark top edge",
	51: "Receipt(black mark): Print Black mark top edge, Eject Black mark top edge",
}

func describePaperLayoutSetting(r *Record) string {
	length := r.paramLen()
	if length < 8 || length > 26 {
		return "Length out of range"
	}
	return fmt.Sprintf("Layout Reference:%s, Settings:%s",
		named(r.Data[6], layoutReferences), r.ascii(7, length-2))
}

func describeFeedToPeeling(r *Record) string {
	return named(r.Data[6], map[byte]string{
		48: "if the paper is in standby at the label peeling position, the printer does not feed.",
		49: "if the paper is in standby at the label peeling position, the printer feeds paper to the next label peeling position.",
	})
}

func describeFeedToCutting(r *Record) string {
	return named(r.Data[6], map[byte]string{
		48: "if the paper is in standby at the label cutting position, the printer does not feed.",
		49: "if the paper is in standby at the label cutting position, the printer feeds paper to the next label cutting position.",
	})
}

func describeFeedToPrintStart(r *Record) string {
	return named(r.Data[6], map[byte]string{
		48: "Feeds to next label, if the paper is in standby at the print starting position, the printer does not feed.",
		49: "Feeds to next label, if the paper is in standby at the print starting position, the printer feeds paper to the next print starting position.",
		50: "Feeds to current label, if the paper is in standby at the print starting position, the printer does not feed.",
	})
}

func describeLayoutErrorMargin(r *Record) string {
	length := r.paramLen()
	if length < 2 || length > 3 {
		return "Length out of range"
	}
	return fmt.Sprintf("Layout Error Special Margin:%s x 0.1mm", r.ascii(6, length-1))
}

func describeMICRDataHandling(r *Record) string {
	length := r.paramLen()
	if length < 2 || length%2 == 1 {
		return "Length out of range"
	}
	entries := make([]string, 0, length/2)
	for i := 5; i+1 < 5+length; i += 2 {
		entries = append(entries, micrSetting(r.Data[i], r.Data[i+1]))
	}
	return strings.Join(entries, ", ")
}

func micrSetting(n, m byte) string {
	if n > 3 && (n < '0' || n > '3') {
		return "Function out of range"
	}
	switch n & 0x03 {
	case 0:
		if m == 0 {
			return "processing for unrecognized characters : Reading is stopped when a character that cannot be recognized is detected."
		}
		return fmt.Sprintf("processing for unrecognized characters : The character that cannot be recognized is replaced with the character \"?\" and reading is continued. When the number of characters that are replaced with \"?\" becomes(%d + 1), the reading is stopped.", m)
	case 1:
		return "detailed information for the reading result : " + named(m, map[byte]string{
			0: "Not to add detailed information for an abnormal end.",
			1: "Add detailed information for an abnormal end.",
		})
	case 2:
		return "no addition of the reading result in an abnormal end : " + dual(m,
			"The MICR function ends after transmission the reading result.",
			"The MICR function is continued after transmission the reading result only for the following abnormal ends")
	default:
		return "header for transmission data : " + dual(m,
			"The MICR function ends after transmission the reading result.",
			"The MICR function is continued after transmission the reading result only for the following abnormal ends")
	}
}

func describeImageScanner(r *Record) string {
	return named(r.Data[6], map[byte]string{
		48: "Slip Image Scanner [Active Sheet = Check Paper]",
		49: "Card Image Scanner [Active Sheet = Card]",
	})
}

func describeScannerOperation(r *Record) string {
	return fmt.Sprintf("ColorType:%s, Sharpness:%s, ThresholdLevel:%d",
		named(r.Data[7], map[byte]string{1: "Monochrome", 8: "256 level gray scale"}),
		named(r.Data[8], map[byte]string{49: "No", 50: "Yes"}),
		int8(r.Data[9]))
}

// describeScanArea validates x1 y1 x2 y2 of a scanning or cropping area.
func describeScanArea(b []byte) string {
	x1, y1, x2, y2 := b[0], b[1], b[2], b[3]
	switch {
	case x1 > 98:
		return "x1 value out of range"
	case y1 > 228:
		return "y1 value out of range"
	case x2 == 1 || x2 > 100:
		return "x2 value out of range"
	case y2 == 1 || y2 > 230:
		return "y2 value out of range"
	}
	return fmt.Sprintf("x1:%d, y1:%d, x2:%d, y2:%d", x1, y1, x2, y2)
}

func describeCompression(r *Record) string {
	m, n := r.Data[6], r.Data[7]
	switch m {
	case 48:
		return named(n, map[byte]string{
			48: "RAW data does not compress",
			49: "BMP does not compress",
			50: "TIFF does not compress",
		})
	case 49:
		if n == 48 {
			return "TIFF Compression with CCITT(Grp4)"
		}
		return "TIFF Undefined"
	case 50:
		return "JPEG " + named(n, map[byte]string{
			48: "High compression rate",
			49: "Standard compression rate",
			50: "Low compression rate",
		})
	default:
		return "Undefined"
	}
}

func describeDeleteCropping(r *Record) string {
	if r.Data[6] > 10 {
		return "Area number value out of range"
	}
	return fmt.Sprintf("Area Number:%d", r.Data[6])
}

func describeSetCropping(r *Record) string {
	if r.Data[6] > 10 {
		return "Area number value out of range"
	}
	area := describeScanArea(r.Data[7:11])
	if strings.HasSuffix(area, "out of range") {
		return area
	}
	return fmt.Sprintf("Area Number:%d, %s", r.Data[6], area)
}

func describeTransmissionFormat(r *Record) string {
	return named(r.Data[6], map[byte]string{
		48: "Binary data format: max 65,535 bytes",
		49: "Hexadecimal character string format",
		50: "Binary data format: max 4,294,967,295 bytes",
	})
}
