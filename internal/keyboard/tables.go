package keyboard

import "unicode"

// dubeolsik implements the standard 2-beolsik layout (table id "2") and its
// "Yet" archaic variant (table id "2y"). Both drive the Jamo discipline in
// package hic: every key maps directly to a single choseong, jungseong or
// jongseong jamo, and the discipline itself is responsible for routing an
// incoming jamo to the right buffer slot.
//
// ASCII mapping is the standard KS X 5002 2-beolsik layout: consonants on
// QWERTY's left/home rows, vowels on the right, with Shift producing the
// five tensed consonants (ㄲㄸㅃㅆㅉ) and two diphthong vowels (ㅒㅖ).
type dubeolsik struct {
	yet bool
}

var dubeolsikMap = map[rune]rune{
	'q': 0x1107, 'w': 0x110C, 'e': 0x1103, 'r': 0x1100, 't': 0x1109,
	'y': 0x116D, 'u': 0x1167, 'i': 0x1163, 'o': 0x1162, 'p': 0x1166,
	'a': 0x1106, 's': 0x1102, 'd': 0x110B, 'f': 0x1105, 'g': 0x1112,
	'h': 0x1169, 'j': 0x1165, 'k': 0x1161, 'l': 0x1175,
	'z': 0x110F, 'x': 0x1110, 'c': 0x110E, 'v': 0x1111, 'b': 0x1172,
	'n': 0x116E, 'm': 0x1173,

	'Q': 0x1108, 'W': 0x110D, 'E': 0x1104, 'R': 0x1101, 'T': 0x110A,
	'O': 0x1164, 'P': 0x1168,
}

func (k dubeolsik) MapToChar(tableID int, ascii int) rune {
	if ascii < 0 || ascii > unicode.MaxASCII {
		return 0
	}
	ch, ok := dubeolsikMap[rune(ascii)]
	if !ok {
		// An uppercase letter with no dedicated shifted mapping falls back
		// to its lowercase jamo (real 2-beolsik keyboards shift only the
		// five tensed-consonant and two-diphthong keys).
		if lower := toLowerASCII(rune(ascii)); lower != rune(ascii) {
			ch = dubeolsikMap[lower]
		}
	}
	return ch
}

func (k dubeolsik) Combine(tableID int, first, second rune) rune {
	return combineGeneric(dubeolsikDouble, dubeolsikVowels, first, second)
}

func (k dubeolsik) Type() Type {
	if k.yet {
		return JamoYet
	}
	return Jamo
}

var dubeolsikDouble = map[[2]rune]rune{
	{0x1100, 0x1100}: 0x1101, // ㄱ+ㄱ = ㄲ
	{0x1103, 0x1103}: 0x1104, // ㄷ+ㄷ = ㄸ
	{0x1107, 0x1107}: 0x1108, // ㅂ+ㅂ = ㅃ
	{0x1109, 0x1109}: 0x110A, // ㅅ+ㅅ = ㅆ
	{0x110C, 0x110C}: 0x110D, // ㅈ+ㅈ = ㅉ
}

var dubeolsikVowels = map[[2]rune]rune{
	{0x1169, 0x1161}: 0x116A, // ㅗ+ㅏ = ㅘ
	{0x1169, 0x1162}: 0x116B, // ㅗ+ㅐ = ㅙ
	{0x1169, 0x1175}: 0x116C, // ㅗ+ㅣ = ㅚ
	{0x116E, 0x1165}: 0x116F, // ㅜ+ㅓ = ㅝ
	{0x116E, 0x1166}: 0x1170, // ㅜ+ㅔ = ㅞ
	{0x116E, 0x1175}: 0x1171, // ㅜ+ㅣ = ㅟ
	{0x1173, 0x1175}: 0x1174, // ㅡ+ㅣ = ㅢ
}

// sebeolsikFinal (table id "3f") drives the Jaso discipline: every key
// already commits to a role (choseong, jungseong or jongseong), so there is no
// MS-IME-style choseong-to-jongseong recovery rule to apply — the layout
// itself disambiguates by physical key. This is a simplified subset of a
// real 3-beolsik-final layout, enough to exercise the Jaso discipline's
// distinct-role-per-key contract; it does not attempt to reproduce every
// key of a commercial 390/391 layout.
type sebeolsikFinal struct{}

var sebeolsikChoseong = map[rune]rune{
	'g': 0x1100, 'n': 0x1102, 'd': 0x1103, 'r': 0x1105, 'm': 0x1106,
	'b': 0x1107, 's': 0x1109, 'j': 0x110C, 'h': 0x1112,
}

var sebeolsikJungseong = map[rune]rune{
	'a': 0x1161, 'e': 0x1165, 'i': 0x1175, 'o': 0x1169, 'u': 0x116E,
	'k': 0x1173, 'y': 0x1163, 'w': 0x1167, 'q': 0x116D, 'p': 0x1172,
}

var sebeolsikJongseong = map[rune]rune{
	'G': 0x11A8, 'N': 0x11AB, 'D': 0x11AE, 'R': 0x11AF, 'M': 0x11B7,
	'B': 0x11B8, 'S': 0x11BA, 'J': 0x11BD, 'H': 0x11C2,
}

func (k sebeolsikFinal) MapToChar(tableID int, ascii int) rune {
	if ascii < 0 || ascii > unicode.MaxASCII {
		return 0
	}
	r := rune(ascii)
	if ch, ok := sebeolsikChoseong[r]; ok {
		return ch
	}
	if ch, ok := sebeolsikJungseong[r]; ok {
		return ch
	}
	if ch, ok := sebeolsikJongseong[r]; ok {
		return ch
	}
	return 0
}

func (k sebeolsikFinal) Combine(tableID int, first, second rune) rune {
	// No dedicated tensed-consonant keys in this subset layout: doubling
	// is left to vowel compounding and jongseong compounding only.
	return combineGeneric(nil, dubeolsikVowels, first, second)
}

func (k sebeolsikFinal) Type() Type { return Jaso }

// romaja (table id "ro") drives the Romaja discipline with a simplified
// phonetic single-ASCII-letter mapping. spec.md §1 scopes the real
// libhangul keyboard data file out of the core's responsibility, so this
// table is an original, self-consistent design rather than a transcription
// of a shipped layout: 'x'/'X' are deliberately left mapped to ㅈ here too,
// even though the discipline (spec.md §4.5) additionally forces 'x'/'X' to
// ㅈ regardless of what the table says — the two agree, so the forced rule
// never has user-visible effect through this table, but the discipline
// still applies it to stay faithful to spec.md's stated behavior for a
// table that might map 'x' differently. 'l' and 'z' are deliberately left
// unmapped to exercise the literal-passthrough path for unknown ASCII.
type romaja struct{}

var romajaChoseong = map[rune]rune{
	'g': 0x1100, 'n': 0x1102, 'd': 0x1103, 'r': 0x1105, 'm': 0x1106,
	'b': 0x1107, 's': 0x1109, 'j': 0x110C, 'c': 0x110E, 'k': 0x110F,
	't': 0x1110, 'p': 0x1111, 'h': 0x1112, 'x': 0x110C,
}

var romajaJungseong = map[rune]rune{
	'a': 0x1161, 'v': 0x1165, 'o': 0x1169, 'u': 0x116E, 'w': 0x1173,
	'i': 0x1175, 'y': 0x1163, 'q': 0x1167, 'e': 0x116D, 'f': 0x1172,
}

func (k romaja) MapToChar(tableID int, ascii int) rune {
	if ascii < 0 || ascii > unicode.MaxASCII {
		return 0
	}
	r := toLowerASCII(rune(ascii))
	if ch, ok := romajaChoseong[r]; ok {
		return ch
	}
	if ch, ok := romajaJungseong[r]; ok {
		return ch
	}
	return 0
}

func (k romaja) Combine(tableID int, first, second rune) rune {
	return combineGeneric(romajaDouble, romajaVowels, first, second)
}

func (k romaja) Type() Type { return Romaja }

var romajaDouble = map[[2]rune]rune{
	{0x1100, 0x1100}: 0x1101, // g+g = ㄲ
	{0x1103, 0x1103}: 0x1104, // d+d = ㄸ
	{0x1107, 0x1107}: 0x1108, // b+b = ㅃ
	{0x1109, 0x1109}: 0x110A, // s+s = ㅆ
	{0x110C, 0x110C}: 0x110D, // j+j = ㅉ
}

var romajaVowels = map[[2]rune]rune{
	{0x1169, 0x1161}: 0x116A, // o+a = ㅘ
	{0x1169, 0x1175}: 0x116C, // o+i = ㅚ
	{0x116E, 0x1165}: 0x116F, // u+v = ㅝ
	{0x116E, 0x1175}: 0x1171, // u+i = ㅟ
	{0x1173, 0x1175}: 0x1174, // w+i = ㅢ
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
