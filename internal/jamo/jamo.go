// Package jamo implements the Unicode Hangul predicates and role
// conversions that the composition state machine in package hic treats as
// an external collaborator.
//
// libhangul equivalent: hangulctype.c (not part of the retrieved source,
// reconstructed from the standard Hangul Syllables / Hangul Jamo /
// Hangul Compatibility Jamo Unicode block layout).
package jamo

// Scalar is a single Unicode code point playing one of the Hangul jamo
// roles, or a syllable, or ordinary text.
type Scalar = rune

// Choseong/Jungseong/Jongseong conjoining ranges and syllable-composition
// constants.
//
// Grounded on the L/V/T constants in the teacher's ot/hangul.go
// (lBase/vBase/tBase/sBase/lCount/vCount/tCount), which implement the same
// Unicode Hangul Syllables composition arithmetic for a different consumer
// (glyph shaping rather than keystroke composition).
const (
	choseongBase  Scalar = 0x1100
	jungseongBase Scalar = 0x1161
	jongseongBase Scalar = 0x11A7 // index 0 == "no jongseong"
	syllableBase  Scalar = 0xAC00

	choseongCount  = 19
	jungseongCount = 21
	jongseongCount = 28 // includes index 0 (no jongseong)

	// CHOSEONG_FILLER and JUNGSEONG_FILLER stand in for a missing slot
	// when rendering an incomplete syllable in jamo mode.
	ChoseongFiller  Scalar = 0x115F
	JungseongFiller Scalar = 0x1160

	compatBase Scalar = 0x3131
	compatLast Scalar = 0x3163
)

// IsChoseong reports whether ch is a conjoinable initial consonant
// (U+1100..U+1112).
func IsChoseong(ch Scalar) bool {
	return ch >= choseongBase && ch < choseongBase+choseongCount
}

// IsJungseong reports whether ch is a conjoinable medial vowel
// (U+1161..U+1175).
func IsJungseong(ch Scalar) bool {
	return ch >= jungseongBase && ch < jungseongBase+jungseongCount
}

// IsJongseong reports whether ch is a conjoinable final consonant
// (U+11A8..U+11C2). jongseongBase+0 (U+11A7) is the "no jongseong" slot
// and is deliberately excluded: callers treat 0 as "empty", never
// U+11A7.
func IsJongseong(ch Scalar) bool {
	return ch > jongseongBase && ch < jongseongBase+jongseongCount
}

// IsJamo reports whether ch is any of the three conjoining roles.
func IsJamo(ch Scalar) bool {
	return IsChoseong(ch) || IsJungseong(ch) || IsJongseong(ch)
}

// IsCompat reports whether ch is a standalone compatibility jamo
// (U+3131..U+3163), used to render an isolated consonant or vowel that
// has no Unicode syllable form.
func IsCompat(ch Scalar) bool {
	return ch >= compatBase && ch <= compatLast
}

// ToSyllable composes (cho, jung, jong) into a single precomposed Hangul
// syllable, or returns 0 if cho/jung are not both valid conjoining jamo.
// jong may be 0 (no final).
func ToSyllable(cho, jung, jong Scalar) Scalar {
	if !IsChoseong(cho) || !IsJungseong(jung) {
		return 0
	}
	jongIndex := Scalar(0)
	if jong != 0 {
		if !IsJongseong(jong) {
			return 0
		}
		jongIndex = jong - jongseongBase
	}
	lIndex := cho - choseongBase
	vIndex := jung - jungseongBase
	return syllableBase + (lIndex*jungseongCount+vIndex)*jongseongCount + jongIndex
}

// choseongToCompat, jungseongToCompat and jongseongToCompat map a single
// conjoining jamo to its standalone compatibility-jamo form. Standard
// Unicode Hangul Compatibility Jamo block layout (U+3131..U+3163).
var choseongToCompat = map[Scalar]Scalar{
	0x1100: 0x3131, 0x1101: 0x3132, 0x1102: 0x3134, 0x1103: 0x3137,
	0x1104: 0x3138, 0x1105: 0x3139, 0x1106: 0x3141, 0x1107: 0x3142,
	0x1108: 0x3143, 0x1109: 0x3145, 0x110A: 0x3146, 0x110B: 0x3147,
	0x110C: 0x3148, 0x110D: 0x3149, 0x110E: 0x314A, 0x110F: 0x314B,
	0x1110: 0x314C, 0x1111: 0x314D, 0x1112: 0x314E,
}

var jungseongToCompat = map[Scalar]Scalar{
	0x1161: 0x314F, 0x1162: 0x3150, 0x1163: 0x3151, 0x1164: 0x3152,
	0x1165: 0x3153, 0x1166: 0x3154, 0x1167: 0x3155, 0x1168: 0x3156,
	0x1169: 0x3157, 0x116A: 0x3158, 0x116B: 0x3159, 0x116C: 0x315A,
	0x116D: 0x315B, 0x116E: 0x315C, 0x116F: 0x315D, 0x1170: 0x315E,
	0x1171: 0x315F, 0x1172: 0x3160, 0x1173: 0x3161, 0x1174: 0x3162,
	0x1175: 0x3163,
}

var jongseongToCompat = map[Scalar]Scalar{
	0x11A8: 0x3131, 0x11A9: 0x3132, 0x11AA: 0x3133, 0x11AB: 0x3134,
	0x11AC: 0x3135, 0x11AD: 0x3136, 0x11AE: 0x3137, 0x11AF: 0x3139,
	0x11B0: 0x313A, 0x11B1: 0x313B, 0x11B2: 0x313C, 0x11B3: 0x313D,
	0x11B4: 0x313E, 0x11B5: 0x313F, 0x11B6: 0x3140, 0x11B7: 0x3141,
	0x11B8: 0x3142, 0x11B9: 0x3144, 0x11BA: 0x3145, 0x11BB: 0x3146,
	0x11BC: 0x3147, 0x11BD: 0x3148, 0x11BE: 0x314A, 0x11BF: 0x314B,
	0x11C0: 0x314C, 0x11C1: 0x314D, 0x11C2: 0x314E,
}

// ToCompat maps a single conjoining jamo (any role) to its standalone
// compatibility form, or returns 0 if ch is not a conjoinable jamo (every
// conjoinable jamo, compound finals included, has a compatibility form).
func ToCompat(ch Scalar) Scalar {
	if c, ok := choseongToCompat[ch]; ok {
		return c
	}
	if c, ok := jungseongToCompat[ch]; ok {
		return c
	}
	if c, ok := jongseongToCompat[ch]; ok {
		return c
	}
	return 0
}

// choseongToJongseongTable maps a choseong to the jongseong occupying the
// same consonant slot, for the 16 choseong that have a direct final-slot
// counterpart. The doubled consonants with no final form (ㄸㅃㅉ) are
// omitted, so a lookup for them yields 0.
var choseongToJongseongTable = map[Scalar]Scalar{
	0x1100: 0x11A8, 0x1101: 0x11A9, 0x1102: 0x11AB, 0x1103: 0x11AE,
	0x1105: 0x11AF, 0x1106: 0x11B7, 0x1107: 0x11B8, 0x1109: 0x11BA,
	0x110A: 0x11BB, 0x110B: 0x11BC, 0x110C: 0x11BD, 0x110E: 0x11BE,
	0x110F: 0x11BF, 0x1110: 0x11C0, 0x1111: 0x11C1, 0x1112: 0x11C2,
	// 0x1104 (ㄸ), 0x1108 (ㅃ), 0x110D (ㅉ) have no jongseong counterpart.
}

var jongseongToChoseongTable = map[Scalar]Scalar{}

func init() {
	for cho, jong := range choseongToJongseongTable {
		jongseongToChoseongTable[jong] = cho
	}
}

// ChoseongToJongseongRaw maps cho to its jongseong-role counterpart
// unconditionally (0 if none exists), with no conjoinability check. This
// is the "raw mapping" spec.md's choseong_to_jongseong falls back to for
// JamoYet/JasoYet layouts.
func ChoseongToJongseongRaw(cho Scalar) Scalar {
	return choseongToJongseongTable[cho]
}

// JongseongToChoseong maps a single (non-compound) jongseong back to its
// choseong-role counterpart.
func JongseongToChoseong(jong Scalar) Scalar {
	return jongseongToChoseongTable[jong]
}

// jongseongCompound describes one of the 11 compound final consonants as
// (first, second) jongseong-role parts.
type jongseongCompound struct {
	first, second Scalar
}

var jongseongCompounds = map[Scalar]jongseongCompound{
	0x11AA: {0x11A8, 0x11BA}, // ㄳ = ㄱ+ㅅ
	0x11AC: {0x11AB, 0x11BD}, // ㄵ = ㄴ+ㅈ
	0x11AD: {0x11AB, 0x11C2}, // ㄶ = ㄴ+ㅎ
	0x11B0: {0x11AF, 0x11A8}, // ㄺ = ㄹ+ㄱ
	0x11B1: {0x11AF, 0x11B7}, // ㄻ = ㄹ+ㅁ
	0x11B2: {0x11AF, 0x11B8}, // ㄼ = ㄹ+ㅂ
	0x11B3: {0x11AF, 0x11BA}, // ㄽ = ㄹ+ㅅ
	0x11B4: {0x11AF, 0x11C0}, // ㄾ = ㄹ+ㅌ
	0x11B5: {0x11AF, 0x11C1}, // ㄿ = ㄹ+ㅍ
	0x11B6: {0x11AF, 0x11C2}, // ㅀ = ㄹ+ㅎ
	0x11B9: {0x11B8, 0x11BA}, // ㅄ = ㅂ+ㅅ
}

var jongseongCompoundByParts = map[[2]Scalar]Scalar{}

func init() {
	for compound, parts := range jongseongCompounds {
		jongseongCompoundByParts[[2]Scalar{parts.first, parts.second}] = compound
	}
}

// CombineJongseong looks up the compound final formed by appending second
// to an existing jongseong first, or 0 if the pair has no compound form.
func CombineJongseong(first, second Scalar) Scalar {
	return jongseongCompoundByParts[[2]Scalar{first, second}]
}

// JongseongDecompose splits the jongseong occupying the buffer's final
// slot into the jongseong that remains there and the jamo carried forward
// into the next syllable's choseong slot.
//
// libhangul equivalent: hangul_jongseong_decompose(), generalized here to
// also cover a simple (non-compound) jongseong, which spec.md §4.5
// describes with the same single "decompose" operation even though the
// original C splits that case across two call sites (a stack peek check
// in hangul_ic_process_romaja, and this function) that happen to agree on
// the result. For every compound except U+11AA the carried jamo is
// returned in choseong role, ready to start the next syllable. U+11AA
// (ㄳ) is a documented exception (spec.md §9, §4.5): it decomposes with
// the carried jamo left in *jongseong* role (U+11BA) rather than
// choseong role, matching the 0x11aa special case inlined in
// hangul_ic_process_romaja. Preserved bug-compatibly.
func JongseongDecompose(jong Scalar) (remaining, carry Scalar) {
	if jong == 0 {
		return 0, 0
	}
	if parts, ok := jongseongCompounds[jong]; ok {
		if jong == 0x11AA {
			return parts.first, parts.second
		}
		return parts.first, jongseongToChoseongTable[parts.second]
	}
	return 0, jongseongToChoseongTable[jong]
}

// JongseongGetDiff recovers the "extra" jamo that must have been pressed
// to turn a simpler jongseong (first) into a compound jongseong
// (compound), returned in choseong role so it can start a new syllable.
// Returns 0 if compound does not decompose with first as its first part.
func JongseongGetDiff(first, compound Scalar) Scalar {
	parts, ok := jongseongCompounds[compound]
	if !ok || parts.first != first {
		return 0
	}
	return jongseongToChoseongTable[parts.second]
}
