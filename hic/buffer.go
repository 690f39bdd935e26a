// Package hic implements the per-context Hangul composition state
// machine: a composition buffer plus an input context that drives one of
// three keyboard-layout-selected processing disciplines over a stream of
// ASCII keystrokes, producing parallel preedit and commit output streams.
//
// libhangul equivalent: hangulinputcontext.c. The Unicode Hangul
// predicates and role conversions it leans on live in the sibling
// package internal/jamo; the keyboard-layout lookup lives in
// internal/keyboard. Neither is specified here — both are treated as
// external collaborators, matching how hangulinputcontext.c consumes
// hangulctype.c and hangulkeyboard.c without owning them.
package hic

import "github.com/hangulic/hic/internal/jamo"

// stackCapacity bounds the buffer's combination history. libhangul's
// HangulBuffer uses the same bound (12): long enough to hold any single
// syllable's combination history, short enough to keep backspace
// O(1) and the struct stack-allocatable.
const stackCapacity = 12

// buffer is the composition buffer: three named jamo slots plus a bounded
// LIFO recording the chronological order jamo were accepted in, so that
// backspace can undo a keyboard combination one physical keystroke at a
// time rather than one buffer slot at a time.
//
// libhangul equivalent: HangulBuffer / hangul_buffer_*.
type buffer struct {
	choseong  jamo.Scalar
	jungseong jamo.Scalar
	jongseong jamo.Scalar

	stack [stackCapacity]jamo.Scalar
	index int // top of stack; -1 when empty
}

func newBuffer() buffer {
	return buffer{index: -1}
}

// push overwrites the slot matching ch's role and records ch on the
// history stack. Returns false if ch is not a jamo, or the stack is full.
func (b *buffer) push(ch jamo.Scalar) bool {
	if b.index >= stackCapacity-1 {
		return false
	}
	switch {
	case jamo.IsChoseong(ch):
		b.choseong = ch
	case jamo.IsJungseong(ch):
		b.jungseong = ch
	case jamo.IsJongseong(ch):
		b.jongseong = ch
	default:
		return false
	}
	b.index++
	b.stack[b.index] = ch
	return true
}

// pop removes and returns the top of the history stack without touching
// the slot fields; callers that need slot consistency restore it
// explicitly (this mirrors the disciplines' own split/recombine logic,
// which pops then assigns slots by hand).
func (b *buffer) pop() jamo.Scalar {
	if b.index < 0 {
		return 0
	}
	ch := b.stack[b.index]
	b.stack[b.index] = 0
	b.index--
	return ch
}

// peek returns the top of the history stack, or 0 if empty.
func (b *buffer) peek() jamo.Scalar {
	if b.index < 0 {
		return 0
	}
	return b.stack[b.index]
}

// clear empties all three slots and the history stack.
func (b *buffer) clear() {
	b.choseong, b.jungseong, b.jongseong = 0, 0, 0
	for i := range b.stack {
		b.stack[i] = 0
	}
	b.index = -1
}

// backspace undoes the most recent push. If the stack becomes empty, all
// slots are zeroed. Otherwise the slot matching the popped jamo's role is
// restored from the new top of stack if that top is of the same role
// (the push that is being undone was a combination of two same-role
// jamo), or cleared otherwise (the popped jamo was a bare push, or a
// combination whose other operand occupied a different slot).
func (b *buffer) backspace() bool {
	if b.index < 0 {
		return false
	}
	popped := b.pop()
	if b.index < 0 {
		b.choseong, b.jungseong, b.jongseong = 0, 0, 0
		return true
	}
	top := b.peek()
	switch {
	case jamo.IsChoseong(popped):
		if jamo.IsChoseong(top) {
			b.choseong = top
		} else {
			b.choseong = 0
		}
	case jamo.IsJungseong(popped):
		if jamo.IsJungseong(top) {
			b.jungseong = top
		} else {
			b.jungseong = 0
		}
	case jamo.IsJongseong(popped):
		if jamo.IsJongseong(top) {
			b.jongseong = top
		} else {
			b.jongseong = 0
		}
	}
	return true
}

func (b *buffer) isEmpty() bool {
	return b.choseong == 0 && b.jungseong == 0 && b.jongseong == 0
}

func (b *buffer) hasChoseong() bool  { return b.choseong != 0 }
func (b *buffer) hasJungseong() bool { return b.jungseong != 0 }
func (b *buffer) hasJongseong() bool { return b.jongseong != 0 }

// getString renders the buffer in syllable mode: a single precomposed
// syllable when the filled slots compose one, otherwise the available
// jamo with fillers standing in for missing required roles.
func (b *buffer) getString() []jamo.Scalar {
	cho, jung, jong := b.choseong, b.jungseong, b.jongseong
	switch {
	case cho != 0 && jung != 0:
		if s := jamo.ToSyllable(cho, jung, jong); s != 0 {
			return []jamo.Scalar{s}
		}
		out := []jamo.Scalar{cho, jung}
		if jong != 0 {
			out = append(out, jong)
		}
		return out
	case cho != 0 && jong != 0: // jung == 0
		return []jamo.Scalar{cho, jamo.JungseongFiller, jong}
	case cho != 0: // jung == 0, jong == 0
		if c := jamo.ToCompat(cho); c != 0 {
			return []jamo.Scalar{c}
		}
		return []jamo.Scalar{cho, jamo.JungseongFiller}
	case jung != 0 && jong != 0: // cho == 0
		return []jamo.Scalar{jamo.ChoseongFiller, jung, jong}
	case jung != 0: // cho == 0, jong == 0
		if c := jamo.ToCompat(jung); c != 0 {
			return []jamo.Scalar{c}
		}
		return []jamo.Scalar{jamo.ChoseongFiller, jung}
	case jong != 0: // cho == 0, jung == 0
		if c := jamo.ToCompat(jong); c != 0 {
			return []jamo.Scalar{c}
		}
		return []jamo.Scalar{jamo.ChoseongFiller, jamo.JungseongFiller, jong}
	default:
		return nil
	}
}

// getJamoString renders the buffer in jamo mode: raw conjoining jamo with
// fillers standing in for an empty choseong/jungseong slot, or nil if the
// buffer is entirely empty.
func (b *buffer) getJamoString() []jamo.Scalar {
	if b.isEmpty() {
		return nil
	}
	cho, jung := b.choseong, b.jungseong
	if cho == 0 {
		cho = jamo.ChoseongFiller
	}
	if jung == 0 {
		jung = jamo.JungseongFiller
	}
	out := []jamo.Scalar{cho, jung}
	if b.jongseong != 0 {
		out = append(out, b.jongseong)
	}
	return out
}

// previewJamoString renders getJamoString as it would read immediately
// after ch is hypothetically pushed, without mutating the buffer. Used by
// the transition callback gate to let a host inspect the pending
// keystroke's effect before it takes hold.
func (b *buffer) previewJamoString(ch jamo.Scalar) []jamo.Scalar {
	cho, jung, jong := b.choseong, b.jungseong, b.jongseong
	switch {
	case jamo.IsChoseong(ch):
		cho = ch
	case jamo.IsJungseong(ch):
		jung = ch
	case jamo.IsJongseong(ch):
		jong = ch
	}
	if cho == 0 && jung == 0 && jong == 0 {
		return nil
	}
	if cho == 0 {
		cho = jamo.ChoseongFiller
	}
	if jung == 0 {
		jung = jamo.JungseongFiller
	}
	out := []jamo.Scalar{cho, jung}
	if jong != 0 {
		out = append(out, jong)
	}
	return out
}
