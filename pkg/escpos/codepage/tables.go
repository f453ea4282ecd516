package codepage

// codeTable is one ESC t entry: the code page id it selects and the name
// used in descriptions.
type codeTable struct {
	id   int
	name string
}

var printerCodeTables = map[byte]codeTable{
	0:   {437, "PC437: USA, Standard Europe"},
	1:   {932, "PC932: Katakana"},
	2:   {850, "PC850: Multilingual"},
	3:   {860, "PC860: Portuguese"},
	4:   {863, "PC863: Canadian-French"},
	5:   {865, "PC865: Nordic"},
	6:   {6, "Page 6: Hiragana"},
	7:   {7, "Page 7: One-pass printing Kanji characters"},
	8:   {8, "Page 8: One-pass printing Kanji characters"},
	11:  {11, "PC851: Greek"},
	12:  {12, "PC853: Turkish"},
	13:  {857, "PC857: Turkish"},
	14:  {737, "PC737: Greek"},
	15:  {28597, "ISO8859-7: Greek"},
	16:  {1252, "WPC1252"},
	17:  {866, "PC866: Cyrillic #2"},
	18:  {852, "PC852: Latin 2"},
	19:  {858, "PC858: Euro"},
	20:  {20, "Page 20 Thai Character Code 42"},
	21:  {21, "Page 21 Thai Character Code 11"},
	22:  {22, "Page 22 Thai Character Code 13"},
	23:  {23, "Page 23 Thai Character Code 14"},
	24:  {24, "Page 24 Thai Character Code 16"},
	25:  {25, "Page 25 Thai Character Code 17"},
	26:  {26, "Page 26 Thai Character Code 18"},
	30:  {30, "Page 30 TCVN-3: Vietnamese"},
	31:  {31, "Page 31 TCVN-3: Vietnamese"},
	32:  {720, "PC720: Arabic"},
	33:  {775, "WPC775: Baltic Rim"},
	34:  {855, "PC855: Cyrillic"},
	35:  {861, "PC861: Icelandic"},
	36:  {862, "PC862: Hebrew"},
	37:  {864, "PC864: Arabic"},
	38:  {869, "PC869: Greek"},
	39:  {28592, "ISO8859-2: Latin 2"},
	40:  {28605, "ISO8859-15: Latin 9"},
	41:  {41, "PC1098: Farsi"},
	42:  {42, "PC1118: Lithuanian"},
	43:  {43, "PC1119: Lithuanian"},
	44:  {44, "PC1125: Ukrainian"},
	45:  {1250, "WPC1250: Latin 2"},
	46:  {1251, "WPC1251: Cyrillic"},
	47:  {1253, "WPC1253: Greek"},
	48:  {1254, "WPC1254: Turkish"},
	49:  {1255, "WPC1255: Hebrew"},
	50:  {1256, "WPC1256: Arabic"},
	51:  {1257, "WPC1257: Baltic Rim"},
	52:  {1258, "WPC1258: Vietnamese"},
	53:  {53, "Page 53 KZ-1048: Kazakhstan"},
	66:  {57002, "Devanagari"},
	67:  {57003, "Bengali"},
	68:  {57004, "Tamil"},
	69:  {57005, "Telugu"},
	70:  {57006, "Assamese"},
	71:  {57007, "Oriya"},
	72:  {57008, "Kannada"},
	73:  {57009, "Malayalam"},
	74:  {57010, "Gujarati"},
	75:  {57011, "Punjabi"},
	82:  {57002, "Marathi"},
	254: {254, "Page 254"},
	255: {255, "Page 255"},
}

// Line displays support the printer set minus the Japanese pages, Thai and
// the Indic scripts.
var displayCodeTables = func() map[byte]codeTable {
	m := make(map[byte]codeTable)
	for n, ct := range printerCodeTables {
		switch {
		case n >= 6 && n <= 8, n >= 20 && n <= 26, n >= 66 && n <= 82:
			continue
		}
		m[n] = ct
	}
	m[53] = codeTable{53, "KZ-1048: Kazakhstan"}
	return m
}()

// PrinterCodeTable maps an ESC t parameter to a code page id.
func PrinterCodeTable(n byte) (int, bool) {
	ct, ok := printerCodeTables[n]
	return ct.id, ok
}

// DisplayCodeTable maps a line display ESC t parameter to a code page id.
func DisplayCodeTable(n byte) (int, bool) {
	ct, ok := displayCodeTables[n]
	return ct.id, ok
}

// PrinterCodeTableName describes an ESC t parameter.
func PrinterCodeTableName(n byte) string {
	if ct, ok := printerCodeTables[n]; ok {
		return ct.name
	}
	return "Undefined"
}

// DisplayCodeTableName describes a line display ESC t parameter.
func DisplayCodeTableName(n byte) string {
	if ct, ok := displayCodeTables[n]; ok {
		return ct.name
	}
	return "Undefined"
}
