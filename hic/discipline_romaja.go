package hic

import "github.com/hangulic/hic/internal/jamo"

// Romaja-specific jamo constants referenced by name in spec §4.5.
const (
	jungseongEu     jamo.Scalar = 0x1173 // ㅡ, auto-inserted medial
	choseongIeung   jamo.Scalar = 0x110B // ㅇ, auto-filled/syllable-break choseong
	jongseongIeung  jamo.Scalar = 0x11BC // ㅇ used as syllable-final
	choseongJieut   jamo.Scalar = 0x110C // ㅈ, the forced mapping for 'x'/'X'
)

// processRomaja drives the Romaja layout (spec §4.5): ascii letters map
// to jamo via phonetic rules, with a handful of Romaja-particular
// behaviors layered over a dispatch that otherwise mirrors processJamo.
// The literal ASCII byte is threaded through (not just its jamo mapping)
// because case and the letters 'x'/'X' carry meaning the keyboard mapping
// alone does not.
//
// libhangul equivalent: hangul_ic_process_romaja.
func (ic *Context) processRomaja(ascii int, ch jamo.Scalar) bool {
	if ascii == 'x' || ascii == 'X' {
		ch = choseongJieut
	}
	if ascii >= 'A' && ascii <= 'Z' {
		ic.saveCommitString()
	}

	if ch != 0 && !jamo.IsJamo(ch) {
		if !ic.buffer.isEmpty() {
			ic.saveCommitString()
		}
		ic.appendCommitString(ch)
		ic.savePreeditString()
		return true
	}

	var res bool
	switch {
	case ic.buffer.hasJongseong():
		res = ic.romajaWithJongseong(ch)
	case ic.buffer.hasJungseong():
		res = ic.romajaWithJungseong(ch)
	case ic.buffer.hasChoseong():
		res = ic.romajaWithChoseongOnly(ch)
	default:
		res = ic.romajaEmpty(ch)
	}
	ic.savePreeditString()
	return res
}

// romajaEmpty fills choseong with ㅇ before an incoming vowel when the
// buffer starts empty, so a bare vowel still forms a displayable syllable.
func (ic *Context) romajaEmpty(ch jamo.Scalar) bool {
	if jamo.IsJungseong(ch) {
		ic.icPush(choseongIeung)
		return ic.icPush(ch)
	}
	return ic.icPush(ch)
}

func (ic *Context) romajaWithChoseongOnly(ch jamo.Scalar) bool {
	switch {
	case jamo.IsChoseong(ch):
		combined := ic.combine(ic.buffer.choseong, ch)
		if combined != 0 {
			if jamo.IsJongseong(combined) {
				existing := ic.buffer.pop()
				jongExisting := jamo.ChoseongToJongseongRaw(existing)
				ic.buffer.choseong = 0
				if jongExisting != 0 {
					ic.buffer.push(jongExisting)
				}
			}
			if ic.icPush(combined) {
				return true
			}
			return ic.icPush(ch)
		}
		// Two choseong in a row that cannot combine: the first consonant
		// cannot wait any longer for a vowel, so ㅡ is inserted for it
		// before it commits, and ch starts the next syllable.
		ic.icPush(jungseongEu)
		ic.saveCommitString()
		return ic.icPush(ch)

	case jamo.IsJungseong(ch):
		return ic.icPush(ch)

	default:
		ic.flushInternal()
		return false
	}
}

func (ic *Context) romajaWithJungseong(ch jamo.Scalar) bool {
	switch {
	case jamo.IsChoseong(ch):
		if cand := ic.choseongToJongseong(ch); cand != 0 {
			if ic.icPush(cand) {
				return true
			}
			return ic.icPush(ch)
		}
		ic.saveCommitString()
		return ic.icPush(ch)

	case jamo.IsJungseong(ch):
		if combined := ic.combine(ic.buffer.jungseong, ch); combined != 0 && jamo.IsJungseong(combined) {
			if ic.icPush(combined) {
				return true
			}
			return ic.icPush(ch)
		}
		ic.saveCommitString()
		return ic.icPush(ch)

	default:
		ic.flushInternal()
		return false
	}
}

func (ic *Context) romajaWithJongseong(ch jamo.Scalar) bool {
	switch {
	case jamo.IsChoseong(ch):
		cand := ic.choseongToJongseong(ch)
		var combined jamo.Scalar
		if cand != 0 {
			combined = ic.combine(ic.buffer.jongseong, cand)
		}
		if combined != 0 && jamo.IsJongseong(combined) {
			if ic.icPush(combined) {
				return true
			}
			return ic.icPush(ch)
		}
		ic.saveCommitString()
		return ic.icPush(ch)

	case jamo.IsJungseong(ch):
		current := ic.buffer.jongseong
		if current == jongseongIeung {
			// ㅇ as a syllable-final breaks here: it stays as the final of
			// the syllable just committed, and the vowel starts a fresh
			// syllable whose choseong is also ㅇ.
			ic.saveCommitString()
			ic.icPush(choseongIeung)
			return ic.icPush(ch)
		}
		// jamo.JongseongDecompose uniformly handles both a compound final
		// (split into what remains and what carries forward) and a simple
		// one (nothing remains, the whole consonant carries forward) — see
		// its doc comment for the U+11AA special case this also covers.
		remaining, carry := jamo.JongseongDecompose(current)
		ic.buffer.pop()
		ic.buffer.jongseong = remaining
		ic.saveCommitString()
		ic.icPush(carry)
		return ic.icPush(ch)

	default:
		ic.flushInternal()
		return false
	}
}
