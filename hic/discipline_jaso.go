package hic

import "github.com/hangulic/hic/internal/jamo"

// processJaso drives Jaso/JasoYet layouts (spec §4.4), where the keyboard
// emits role-tagged jamo directly: each key already knows whether it is a
// choseong, jungseong, or jongseong, so this discipline never has to
// recover a role the way processJamo does — it only ever decides whether
// an arriving jamo extends the current syllable or starts the next one.
//
// libhangul equivalent: hangul_ic_process_jaso.
func (ic *Context) processJaso(ch jamo.Scalar) bool {
	var res bool
	switch {
	case jamo.IsChoseong(ch):
		res = ic.jasoChoseong(ch)
	case jamo.IsJungseong(ch):
		res = ic.jasoJungseong(ch)
	case jamo.IsJongseong(ch):
		res = ic.jasoJongseong(ch)
	case ch != 0:
		ic.saveCommitString()
		ic.appendCommitString(ch)
		res = true
	default:
		ic.saveCommitString()
		res = false
	}
	ic.savePreeditString()
	return res
}

func (ic *Context) jasoChoseong(ch jamo.Scalar) bool {
	if !ic.buffer.hasChoseong() {
		if ic.optionAutoReorder || !(ic.buffer.hasJungseong() || ic.buffer.hasJongseong()) {
			return ic.icPush(ch)
		}
		ic.saveCommitString()
		return ic.icPush(ch)
	}
	if jamo.IsChoseong(ic.buffer.peek()) {
		if combined := ic.combine(ic.buffer.choseong, ch); combined != 0 {
			if ic.icPush(combined) {
				return true
			}
			return ic.icPush(ch)
		}
	}
	ic.saveCommitString()
	return ic.icPush(ch)
}

func (ic *Context) jasoJungseong(ch jamo.Scalar) bool {
	if !ic.buffer.hasJungseong() {
		if ic.optionAutoReorder || !ic.buffer.hasJongseong() {
			return ic.icPush(ch)
		}
		ic.saveCommitString()
		return ic.icPush(ch)
	}
	if jamo.IsJungseong(ic.buffer.peek()) {
		if combined := ic.combine(ic.buffer.jungseong, ch); combined != 0 {
			if ic.icPush(combined) {
				return true
			}
			return ic.icPush(ch)
		}
	}
	ic.saveCommitString()
	return ic.icPush(ch)
}

func (ic *Context) jasoJongseong(ch jamo.Scalar) bool {
	if !ic.buffer.hasJongseong() {
		return ic.icPush(ch)
	}
	if jamo.IsJongseong(ic.buffer.peek()) {
		if combined := ic.combine(ic.buffer.jongseong, ch); combined != 0 {
			if ic.icPush(combined) {
				return true
			}
			return ic.icPush(ch)
		}
	}
	ic.saveCommitString()
	return ic.icPush(ch)
}
