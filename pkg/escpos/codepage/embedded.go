package codepage

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Table is an immutable byte to text mapping. An entry may hold more than
// one rune.
type Table struct {
	Name  string
	chars [256]string
}

// Char returns the text for a single byte.
func (t *Table) Char(c byte) string {
	return t.chars[c]
}

// Decode maps every byte through the table.
func (t *Table) Decode(b []byte) []string {
	out := make([]string, len(b))
	for i, c := range b {
		out[i] = t.chars[c]
	}
	return out
}

// newTable builds a table from an ASCII lower half, an optional base charmap
// for the upper half and per-byte overrides. Without a base the upper half is
// rendered as <HH>.
func newTable(name string, base *charmap.Charmap, overrides map[byte]string) *Table {
	t := &Table{Name: name}
	for i := 0; i < 0x100; i++ {
		c := byte(i)
		switch {
		case c < 0x80:
			t.chars[i] = string(rune(c))
		case base != nil:
			t.chars[i] = string(base.DecodeByte(c))
		default:
			t.chars[i] = fmt.Sprintf("<%02X>", c)
		}
	}
	for c, s := range overrides {
		t.chars[c] = s
	}
	return t
}

// runRange assigns consecutive runes of s starting at byte from.
func runRange(from byte, s string) map[byte]string {
	m := make(map[byte]string)
	c := int(from)
	for _, r := range s {
		if c > 0xFF {
			break
		}
		m[byte(c)] = string(r)
		c++
	}
	return m
}

func merge(ms ...map[byte]string) map[byte]string {
	out := make(map[byte]string)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// JIS X 0201 katakana layout, 0xA1-0xDF.
const halfwidthKatakana = "｡｢｣､･ｦｧｨｩｪｫｬｭｮｯｰｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝﾞﾟ"

// Page 6 places hiragana on the katakana positions.
const hiraganaPage = "。「」、・をぁぃぅぇぉゃゅょっーあいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめもやゆよらりるれろわん゛゜"

var asciiTable = newTable("ASCII", nil, nil)

// Pages without an x/text charmap borrow the nearest one for their script:
// PC851, PC853, the Thai pages, TCVN-3, PC1098, PC1118 and PC1119 are
// stand-ins whose upper halves do not match the printer byte for byte.
var embeddedTables = map[int]*Table{
	6:  newTable("Page 6: Hiragana", nil, runRange(0xA1, hiraganaPage)),
	7:  newTable("Page 7: One-pass printing Kanji characters", nil, runRange(0xA1, halfwidthKatakana)),
	8:  newTable("Page 8: One-pass printing Kanji characters", nil, runRange(0xA1, halfwidthKatakana)),
	11: newTable("PC851: Greek", charmap.ISO8859_7, nil),
	12: newTable("PC853: Turkish", charmap.ISO8859_3, nil),
	20: newTable("Page 20 Thai Character Code 42", charmap.Windows874, nil),
	21: newTable("Page 21 Thai Character Code 11", charmap.Windows874, nil),
	22: newTable("Page 22 Thai Character Code 13", charmap.Windows874, nil),
	23: newTable("Page 23 Thai Character Code 14", charmap.Windows874, nil),
	24: newTable("Page 24 Thai Character Code 16", charmap.Windows874, nil),
	25: newTable("Page 25 Thai Character Code 17", charmap.Windows874, nil),
	26: newTable("Page 26 Thai Character Code 18", charmap.Windows874, nil),
	30: newTable("Page 30 TCVN-3: Vietnamese", charmap.Windows1258, nil),
	31: newTable("Page 31 TCVN-3: Vietnamese", charmap.Windows1258, nil),
	41: newTable("PC1098: Farsi", charmap.Windows1256, nil),
	42: newTable("PC1118: Lithuanian", charmap.Windows1257, nil),
	43: newTable("PC1119: Lithuanian", charmap.Windows1257, nil),
	44: newTable("PC1125: Ukrainian", charmap.CodePage866, runRange(0xF2, "ҐґЄєІіЇї")),
	53: newTable("KZ-1048: Kazakhstan", charmap.Windows1251, merge(
		map[byte]string{0x80: "Ә", 0x90: "ә"},
		runRange(0x8C, "ҢҚҺҰ"),
		runRange(0x9C, "ңқһұ"),
	)),
	254: asciiTable,
	255: asciiTable,
}

// Embedded returns the compiled-in table for an id below 0x100.
func Embedded(id int) (*Table, bool) {
	t, ok := embeddedTables[id]
	return t, ok
}
