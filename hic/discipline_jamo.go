package hic

import "github.com/hangulic/hic/internal/jamo"

// processJamo drives Jamo/JamoYet layouts (spec §4.3), where a single
// keystroke arrives pre-mapped to one conjoining jamo and this discipline
// alone decides which buffer slot it belongs in, promoting an existing
// occupant to the next syllable's choseong when the new arrival cannot
// extend the current one.
//
// libhangul equivalent: hangul_ic_process_jamo.
func (ic *Context) processJamo(ch jamo.Scalar) bool {
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
		res = ic.jamoWithJongseong(ch)
	case ic.buffer.hasJungseong():
		res = ic.jamoWithJungseong(ch)
	case ic.buffer.hasChoseong():
		res = ic.jamoWithChoseongOnly(ch)
	default:
		res = ic.icPush(ch)
	}
	ic.savePreeditString()
	return res
}

// jamoWithJongseong handles a keystroke while the buffer already holds a
// jongseong: usually a complete syllable (choseong + jungseong +
// jongseong), or a jongseong alone after the choseong-pair shortcut in
// jamoWithChoseongOnly.
func (ic *Context) jamoWithJongseong(ch jamo.Scalar) bool {
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
		ic.buffer.pop()
		top := ic.buffer.peek()
		if jamo.IsJongseong(top) {
			carry := jamo.JongseongGetDiff(top, current)
			if carry == 0 {
				// §9 open question: recovery found no match. Preserved
				// bug-compatibly — the pop is effectively dropped and the
				// buffer commits exactly as it stood before this branch.
				ic.saveCommitString()
				return ic.icPush(ch)
			}
			ic.buffer.jongseong = top
			ic.saveCommitString()
			ic.icPush(carry)
			return ic.icPush(ch)
		}
		ic.buffer.jongseong = 0
		ic.saveCommitString()
		ic.icPush(jamo.JongseongToChoseong(current))
		return ic.icPush(ch)

	default:
		ic.flushInternal()
		return false
	}
}

// jamoWithJungseong handles a keystroke while the buffer holds a choseong
// and jungseong but no jongseong yet.
func (ic *Context) jamoWithJungseong(ch jamo.Scalar) bool {
	switch {
	case jamo.IsChoseong(ch):
		if ic.buffer.hasChoseong() {
			if cand := ic.choseongToJongseong(ch); cand != 0 {
				return ic.icPush(cand)
			}
			ic.saveCommitString()
			return ic.icPush(ch)
		}
		if ic.optionAutoReorder {
			return ic.icPush(ch)
		}
		ic.saveCommitString()
		return ic.icPush(ch)

	case jamo.IsJungseong(ch):
		if combined := ic.combine(ic.buffer.jungseong, ch); combined != 0 && jamo.IsJungseong(combined) {
			return ic.icPush(combined)
		}
		ic.saveCommitString()
		return ic.icPush(ch)

	default:
		ic.flushInternal()
		return false
	}
}

// jamoWithChoseongOnly handles a keystroke while the buffer holds only a
// choseong.
func (ic *Context) jamoWithChoseongOnly(ch jamo.Scalar) bool {
	if jamo.IsChoseong(ch) {
		combined := ic.combine(ic.buffer.choseong, ch)
		if combined != 0 && jamo.IsJongseong(combined) {
			// MS-IME-style shortcut: the two choseong compose directly
			// into a compound jongseong, so the existing choseong must
			// first move into the final slot to make room.
			existing := ic.buffer.pop()
			jongExisting := jamo.ChoseongToJongseongRaw(existing)
			ic.buffer.choseong = 0
			if jongExisting != 0 {
				ic.buffer.push(jongExisting)
			}
		}
		// push combined unconditionally, even when it's 0: that is not a
		// jamo, so icPush flushes internally and commits the pending
		// choseong before ch starts fresh in the emptied buffer, matching
		// hangul_ic_process_jamo's unconditional push(combined) call.
		if ic.icPush(combined) {
			return true
		}
		return ic.icPush(ch)
	}
	if ic.icPush(ch) {
		return true
	}
	// The first attempt may have been vetoed by a transition callback,
	// which flushes and empties the buffer; retry once into that fresh
	// state so a veto doesn't simply drop the keystroke.
	return ic.icPush(ch)
}
