package codepage

// icsPositions are the ASCII characters an international character set may
// replace, in the order the substitution strings below list them.
const icsPositions = "#$@[\\]^`{|}~"

type charset struct {
	name  string
	chars string
}

var charsets = map[byte]charset{
	0:  {"U.S.A.", icsPositions},
	1:  {"France", "#$à°ç§^`éùè¨"},
	2:  {"Germany", "#$§ÄÖÜ^`äöüß"},
	3:  {"U.K.", "£$@[\\]^`{|}~"},
	4:  {"Denmark I", "#$@ÆØÅ^`æøå~"},
	5:  {"Sweden", "#¤ÉÄÖÅÜéäöåü"},
	6:  {"Italy", "#$@°\\é^ùàòèì"},
	7:  {"Spain I", "₧$@¡Ñ¿^`¨ñ}~"},
	8:  {"Japan", "#$@[¥]^`{|}~"},
	9:  {"Norway", "#¤ÉÆØÅÜéæøåü"},
	10: {"Denmark II", "#$ÉÆØÅÜéæøåü"},
	11: {"Spain II", "#$á¡Ñ¿é`íñóú"},
	12: {"Latin America", "#$á¡Ñ¿éüíñóú"},
	13: {"Korea", "#$@[₩]^`{|}~"},
	14: {"Slovenia / Croatia", "#$ŽŠĐĆČžšđćč"},
	15: {"China", "#¥@[\\]^`{|}~"},
	16: {"Vietnam", "#₫@[\\]^`{|}~"},
	17: {"Arabia", icsPositions},
	66: {"India (Devanagari)", icsPositions},
	67: {"India (Bengali)", icsPositions},
	68: {"India (Tamil)", icsPositions},
	69: {"India (Telugu)", icsPositions},
	70: {"India (Assamese)", icsPositions},
	71: {"India (Oriya)", icsPositions},
	72: {"India (Kannada)", icsPositions},
	73: {"India (Malayalam)", icsPositions},
	74: {"India (Gujarati)", icsPositions},
	75: {"India (Punjabi)", icsPositions},
	82: {"India (Marathi)", icsPositions},
}

// Substitution replaces single characters of decoded text.
type Substitution map[string]string

// Apply returns s with the substitution applied, or s itself when no entry
// matches.
func (sub Substitution) Apply(s string) string {
	if r, ok := sub[s]; ok {
		return r
	}
	return s
}

var substitutions = func() map[byte]Substitution {
	out := make(map[byte]Substitution, len(charsets))
	base := []rune(icsPositions)
	for id, cs := range charsets {
		sub := Substitution{}
		for i, r := range []rune(cs.chars) {
			if i < len(base) && r != base[i] {
				sub[string(base[i])] = string(r)
			}
		}
		out[id] = sub
	}
	return out
}()

// ICS returns the substitution table for an ESC R parameter. Id 0 yields an
// empty table.
func ICS(id byte) (Substitution, bool) {
	sub, ok := substitutions[id]
	return sub, ok
}

// ICSName describes an ESC R parameter.
func ICSName(id byte) string {
	if cs, ok := charsets[id]; ok {
		return cs.name
	}
	return "Undefined"
}

// DisplayICS reports whether a line display accepts the ESC R parameter.
func DisplayICS(id byte) bool {
	return id <= 17
}
