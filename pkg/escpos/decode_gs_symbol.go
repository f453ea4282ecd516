// pkg/escpos/decode_gs_symbol.go
package escpos

import (
	"fmt"
)

var gsSymbolDescribers = map[CommandType]describeFunc{
	GsSelectPrintPositionHRI: func(r *Record) string {
		return dual(r.Data[2], "Not Printed", "Above Barcode", "Below Barcode", "Both Above and Below Barcode")
	},
	GsSelectFontHRI:               describeHRIFont,
	GsSetBarcodeHeight:            func(r *Record) string { return fmt.Sprintf("%d dots", r.Data[2]) },
	GsSetBarcodeWidth:             describeBarcodeWidth,
	GsPrintBarcodeAsciiz:          describeBarcodeAsciiz,
	GsPrintBarcodeSpecifiedLength: describeBarcodeSpecifiedLength,

	Gs2DCodePrintSymbol:  func(r *Record) string { return named(r.Data[5], symbolNames) },
	Gs2DCodeTransmitSize: func(r *Record) string { return named(r.Data[5], symbolNames) },

	GsPDF417SetNumberOfColumns:      func(r *Record) string { return inRange(int(r.Data[7]), 0, 30) },
	GsPDF417SetNumberOfRows:         describePDF417Rows,
	GsPDF417SetWidthOfModule:        func(r *Record) string { return inRange(int(r.Data[7]), 1, 8) },
	GsPDF417SetRowHeight:            func(r *Record) string { return inRange(int(r.Data[7]), 2, 8) },
	GsPDF417SetErrorCorrectionLevel: describePDF417ErrorCorrection,
	GsPDF417SelectOptions:           func(r *Record) string { return named(r.Data[7], map[byte]string{0: "Standard PDF417", 1: "Truncated PDF417"}) },
	GsPDF417StoreData:               storedLength(4, 0xFFFF),

	GsQRCodeSelectModel:             func(r *Record) string { return named(r.Data[7], map[byte]string{48: "Model 1", 49: "Model 2", 50: "Micro QR Code"}) },
	GsQRCodeSetSizeOfModule:         func(r *Record) string { return inRange(int(r.Data[7]), 1, 16) },
	GsQRCodeSetErrorCorrectionLevel: func(r *Record) string { return named(r.Data[7], map[byte]string{48: "L", 49: "M", 50: "Q", 51: "H"}) },
	GsQRCodeStoreData:               storedLength(4, 7092),

	GsMaxiCodeSelectMode: func(r *Record) string { return named(r.Data[7], map[byte]string{50: "2", 51: "3", 52: "4", 53: "5", 54: "6"}) },
	GsMaxiCodeStoreData:  storedLength(4, 141),

	GsGS1DataBarSetWidthOfModule:         func(r *Record) string { return inRange(int(r.Data[7]), 2, 8) },
	GsGS1DataBarSetExpandStackedMaxWidth: describeExpandStackedWidth,
	GsGS1DataBarStoreData:                describeGS1DataBarStore,

	GsCompositeSetWidthOfModule:         func(r *Record) string { return inRange(int(r.Data[7]), 2, 8) },
	GsCompositeSetExpandStackedMaxWidth: describeExpandStackedWidth,
	GsCompositeSelectHRIFont:            describeCompositeHRIFont,
	GsCompositeStoreData:                describeCompositeStore,

	GsAztecSetModeTypesAndDataLayer: describeAztecMode,
	GsAztecSetSizeOfModule:          func(r *Record) string { return inRange(int(r.Data[7]), 2, 16) },
	GsAztecSetErrorCorrectionLevel:  func(r *Record) string { return inRange(int(r.Data[7]), 5, 95) },
	GsAztecStoreData:                hexStore(3835),

	GsDataMatrixSetSymbolTypeColumnsRows: describeDataMatrixType,
	GsDataMatrixSetSizeOfModule:          func(r *Record) string { return inRange(int(r.Data[7]), 2, 16) },
	GsDataMatrixStoreData:                hexStore(3119),
}

var symbolNames = map[byte]string{
	0x30: "PDF417",
	0x31: "QR Code",
	0x32: "MaxiCode",
	0x33: "GS1 DataBar",
	0x34: "Composite Symbology",
	0x35: "Aztec Code",
	0x36: "DataMatrix",
}

func describeHRIFont(r *Record) string {
	switch r.Data[2] {
	case 97:
		return "Special A"
	case 98:
		return "Special B"
	}
	return dual(r.Data[2], "A", "B", "C", "D", "E")
}

// describeBarcodeWidth reads n as 2-6 module dots or 68-76 for half dot steps.
func describeBarcodeWidth(r *Record) string {
	n := r.Data[2]
	switch {
	case n >= 2 && n <= 6:
		return fmt.Sprint(n)
	case n >= 68 && n <= 76:
		frac := ".0"
		if n&1 == 1 {
			frac = ".5"
		}
		return fmt.Sprintf("%d%s", (n-64)/2, frac)
	}
	return "Out of range"
}

var asciizBarcodes = []string{"UPC-A", "UPC-E", "EAN13", "EAN8", "CODE39", "ITF", "CODABAR"}

var lengthBarcodes = map[byte]string{
	65: "UPC-A",
	66: "UPC-E",
	67: "EAN13",
	68: "EAN8",
	69: "CODE39",
	70: "ITF",
	71: "CODABAR",
	72: "CODE93",
	73: "CODE128",
	74: "GS1-128",
	75: "GS1 DataBar Omnidirectional",
	76: "GS1 DataBar Truncated",
	77: "GS1 DataBar Limited",
	78: "GS1 DataBar Expanded",
	79: "Code128 auto",
}

func describeBarcodeAsciiz(r *Record) string {
	symbol := "Undefined"
	if m := int(r.Data[2]); m < len(asciizBarcodes) {
		symbol = asciizBarcodes[m]
	}
	return fmt.Sprintf("Barcode Type:%s, Data:%s", symbol, r.ascii(3, len(r.Data)-4))
}

func describeBarcodeSpecifiedLength(r *Record) string {
	return fmt.Sprintf("Barcode Type:%s, Data:%s", named(r.Data[2], lengthBarcodes), r.ascii(4, int(r.Data[3])))
}

func describePDF417Rows(r *Record) string {
	n := r.Data[7]
	if n == 0 || (n >= 3 && n <= 90) {
		return fmt.Sprint(n)
	}
	return "Out of range"
}

func describePDF417ErrorCorrection(r *Record) string {
	m, n := r.Data[7], r.Data[8]
	switch m {
	case 48:
		value := "Out of range"
		if n >= '0' && n <= '8' {
			value = "Level " + string(rune(n))
		}
		return fmt.Sprintf("Error correction type:Level, Value:%s", value)
	case 49:
		value := "Out of range"
		if n >= 1 && n <= 40 {
			value = fmt.Sprintf("%d %%", int(n)*10)
		}
		return fmt.Sprintf("Error correction type:Ratio, Value:%s", value)
	}
	return "Error correction type:Undefined, Value:"
}

// storedLength describes a symbol store by the size of its payload.
func storedLength(lo, hi int) describeFunc {
	return func(r *Record) string {
		length := r.paramLen()
		if length < lo || length > hi {
			return "Length out of range"
		}
		return fmt.Sprint(length - 3)
	}
}

// hexStore describes a symbol store whose payload is shown in hex.
func hexStore(hi int) describeFunc {
	return func(r *Record) string {
		length := r.paramLen()
		if length < 4 || length > hi {
			return "Length out of range"
		}
		return fmt.Sprintf("Length:%d, Data:%s", length, r.hexFrom(8))
	}
}

func describeExpandStackedWidth(r *Record) string {
	n := r.u16(7)
	if n == 0 || (n >= 106 && n <= 3952) {
		return fmt.Sprint(n)
	}
	return "Length out of range"
}

func describeGS1DataBarStore(r *Record) string {
	length := r.paramLen()
	if length < 6 || length > 259 {
		return "Length out of range"
	}
	symbol := named(r.Data[8], map[byte]string{
		72: "GS1 DataBar Stacked",
		73: "GS1 DataBar Stacked Omnidirectional",
		76: "GS1 DataBar Expanded Stacked",
	})
	return fmt.Sprintf("Type:%s, Length:%d", symbol, length-4)
}

func describeCompositeHRIFont(r *Record) string {
	switch r.Data[7] {
	case 97:
		return "With Special Font A HRI"
	case 98:
		return "With Special Font B HRI"
	}
	return dual(r.Data[7], "No HRI", "With Font A HRI", "With Font B HRI", "With Font C HRI", "With Font D HRI", "With Font E HRI")
}

type compositeSymbol struct {
	name   string
	lo, hi int
	hex    bool
}

var linearComposites = map[byte]compositeSymbol{
	65: {"EAN8", 7, 7, false},
	66: {"EAN13", 12, 12, false},
	67: {"UPC-A", 11, 11, false},
	68: {"UPC-E 6 digits", 6, 6, false},
	69: {"UPC-E 11 digits", 11, 11, false},
	70: {"GS1 DataBar Omnidirectional", 13, 13, false},
	71: {"GS1 DataBar Truncated", 13, 13, false},
	72: {"GS1 DataBar Stacked", 13, 13, false},
	73: {"GS1 DataBar Stacked Omnidirectional", 13, 13, false},
	74: {"GS1 DataBar Limited", 13, 13, false},
	75: {"GS1 DataBar Expanded", 2, 255, false},
	76: {"GS1 DataBar Expanded Stacked", 2, 255, false},
	77: {"GS1-128", 2, 255, true},
}

var twoDComposites = map[byte]compositeSymbol{
	65: {"Automatic selection according to number of digits", 1, 2361, true},
	66: {"CC-C", 1, 2361, true},
}

// describeCompositeStore decodes GS ( k pL pH 34 50 30 a b d1...dk.
func describeCompositeStore(r *Record) string {
	length := r.paramLen()
	if length < 6 || length > 2366 {
		return "Length out of range"
	}
	var (
		element string
		table   map[byte]compositeSymbol
	)
	switch r.Data[8] {
	case 48:
		element, table = "Linear element", linearComposites
	case 49:
		element, table = "2D Composite element", twoDComposites
	default:
		return fmt.Sprintf("Length:%d, Element:Undefined, Symbol:, Data:", length)
	}

	k := length - 5
	sym, ok := table[r.Data[9]]
	if !ok {
		return fmt.Sprintf("Length:%d, Element:%s, Symbol:Undefined, Data:", length, element)
	}
	data := "Invalid length"
	if k >= sym.lo && k <= sym.hi {
		if sym.hex {
			data = hexString(r.Data[10:min(10+k, len(r.Data))])
		} else {
			data = r.ascii(10, k)
		}
	}
	return fmt.Sprintf("Length:%d, Element:%s, Symbol:%s, Data:%s", length, element, sym.name, data)
}

func describeAztecMode(r *Record) string {
	layers := "Out of range"
	switch n := r.Data[8]; {
	case n == 0:
		layers = "Automatic processing"
	case n <= 32:
		layers = fmt.Sprint(n)
	}
	return fmt.Sprintf("Mode:%s, Data Layers:%s", dual(r.Data[7], "Full-Range", "Compact"), layers)
}

var dataMatrixSquares = map[byte]bool{
	10: true, 12: true, 14: true, 16: true, 18: true, 20: true, 22: true, 24: true, 26: true,
	32: true, 36: true, 40: true, 44: true, 48: true, 52: true, 64: true, 72: true, 80: true,
	88: true, 96: true, 104: true, 120: true, 132: true, 144: true,
}

// rows allowed for each rectangular column count, 0 meaning automatic
var dataMatrixRectangles = map[byte][]byte{
	8:  {0, 18, 32},
	12: {0, 26, 36},
	16: {0, 36, 48},
}

func describeDataMatrixType(r *Record) string {
	m, d1, d2 := r.Data[7], r.Data[8], r.Data[9]
	switch m {
	case 0, '0':
		var size string
		switch {
		case d1 != d2:
			size = "No square Columns, Rows"
		case d1 == 0:
			size = "Automatic processing"
		case dataMatrixSquares[d1]:
			size = fmt.Sprintf("%d, %d", d1, d2)
		default:
			size = "Out of range"
		}
		return "SymbolType:Square, " + size
	case 1, '1':
		size := "Out of range"
		for _, rows := range dataMatrixRectangles[d1] {
			if rows != d2 {
				continue
			}
			if d2 == 0 {
				size = fmt.Sprintf("Columns:%d, Rows:Automatic processing", d1)
			} else {
				size = fmt.Sprintf("Columns:%d, Rows:%d", d1, d2)
			}
		}
		return "SymbolType:Rectangle, " + size
	}
	return "SymbolType:Undefined, "
}
