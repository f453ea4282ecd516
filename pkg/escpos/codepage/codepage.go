// Package codepage maps ESC/POS character code tables and international
// character sets to Unicode text.
package codepage

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Kind tells how a code page id was resolved.
type Kind int

const (
	// KindEmbedded is a table compiled into this package.
	KindEmbedded Kind = iota
	// KindSystem is a standard encoding from golang.org/x/text.
	KindSystem
	// KindDefaultASCII marks an id that could not be resolved.
	KindDefaultASCII
)

func (k Kind) String() string {
	switch k {
	case KindEmbedded:
		return "embedded"
	case KindSystem:
		return "system"
	case KindDefaultASCII:
		return "default-ascii"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Resolution is the outcome of resolving a code page id.
type Resolution struct {
	ID       int
	Kind     Kind
	Table    *Table
	Encoding encoding.Encoding
}

// Fallback reports whether the requested id had to be replaced by ASCII.
func (r Resolution) Fallback() bool {
	return r.Kind == KindDefaultASCII
}

// Decode converts raw bytes into one string per decoded character.
func (r Resolution) Decode(b []byte) []string {
	switch r.Kind {
	case KindSystem:
		out, err := r.Encoding.NewDecoder().Bytes(b)
		if err != nil {
			return asciiTable.Decode(b)
		}
		return splitRunes(out)
	case KindEmbedded:
		return r.Table.Decode(b)
	default:
		return asciiTable.Decode(b)
	}
}

// systemEncodings lists the code page ids golang.org/x/text can serve.
var systemEncodings = map[int]encoding.Encoding{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	20866: charmap.KOI8R,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28593: charmap.ISO8859_3,
	28594: charmap.ISO8859_4,
	28595: charmap.ISO8859_5,
	28596: charmap.ISO8859_6,
	28597: charmap.ISO8859_7,
	28598: charmap.ISO8859_8,
	28599: charmap.ISO8859_9,
	28603: charmap.ISO8859_13,
	28605: charmap.ISO8859_15,
	54936: simplifiedchinese.GB18030,
	65001: unicode.UTF8,
}

// Resolve selects the table or encoding for a code page id. Ids below 0x100
// use the embedded tables; higher ids use golang.org/x/text. Ids that neither
// source knows resolve to KindDefaultASCII.
func Resolve(id int) Resolution {
	if id >= 0 && id < 0x100 {
		if t, ok := embeddedTables[id]; ok {
			return Resolution{ID: id, Kind: KindEmbedded, Table: t}
		}
		return Resolution{ID: id, Kind: KindEmbedded, Table: asciiTable}
	}
	if enc, ok := systemEncodings[id]; ok {
		return Resolution{ID: id, Kind: KindSystem, Encoding: enc}
	}
	return Resolution{ID: id, Kind: KindDefaultASCII, Table: asciiTable}
}

// IsMultiByte reports whether a resolved code page uses double-byte
// sequences, which is when kanji mode starts enabled.
func IsMultiByte(id int) bool {
	switch id {
	case 932, 936, 949, 950, 54936, 65001:
		return true
	}
	return false
}

func splitRunes(b []byte) []string {
	out := make([]string, 0, utf8.RuneCount(b))
	for len(b) > 0 {
		_, size := utf8.DecodeRune(b)
		out = append(out, string(b[:size]))
		b = b[size:]
	}
	return out
}
