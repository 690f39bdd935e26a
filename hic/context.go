package hic

import (
	"github.com/hangulic/hic/internal/jamo"
	"github.com/hangulic/hic/internal/keyboard"
)

// outputCapacity bounds preedit/commit/flushed buffers at roughly
// libhangul's static 64-scalar arrays (63 usable plus a zero
// terminator — Go slices need no terminator, so the usable count is the
// whole bound).
const outputCapacity = 63

// OutputMode selects whether queries render a composed syllable or raw
// conjoining jamo.
type OutputMode int

const (
	Syllable OutputMode = iota
	Jamo
)

// Option identifies one of the three toggleable behavior flags. See
// Context.SetOption.
type Option int

const (
	OptionAutoReorder Option = iota
	OptionCombiOnDoubleStroke
	OptionNonChoseongCombi
)

// TranslateFunc lets a host rewrite the jamo the keyboard resolved an
// ASCII keystroke to, before it reaches the composition disciplines. It
// receives the context as a parameter rather than as a closure so it
// cannot accidentally retain a mutable alias across calls.
type TranslateFunc func(ic *Context, ascii int, ch jamo.Scalar, userdata any) jamo.Scalar

// TransitionFunc previews the jamo sequence that would result from
// accepting ch and may veto the transition by returning false. A veto is
// ordinary control flow, not an error: the context flushes internally and
// Process reports the key as not consumed.
type TransitionFunc func(ic *Context, ch jamo.Scalar, preview []jamo.Scalar, userdata any) bool

// Context is a single Hangul input session: one composition buffer, one
// keyboard layout reference, and the option/callback state that
// parameterizes how keystrokes are turned into preedit and commit output.
//
// A Context is single-owner and not safe for concurrent use — see
// spec §5 (CONCURRENCY & RESOURCE MODEL in the design notes this package
// implements): exactly one actor drives a given Context at a time.
// Independent Contexts share no mutable state and may be driven
// concurrently from distinct goroutines.
//
// libhangul equivalent: HangulInputContext / hangul_ic_*.
type Context struct {
	buffer     buffer
	keyboard   keyboard.Table
	keyboardID string

	outputMode      OutputMode
	useJamoModeOnly bool

	optionAutoReorder         bool
	optionCombiOnDoubleStroke bool
	optionNonChoseongCombi    bool

	preedit []jamo.Scalar
	commit  []jamo.Scalar
	flushed []jamo.Scalar

	onTranslate   TranslateFunc
	translateData any
	onTransition  TransitionFunc
	transitionData any
}

// New creates a context bound to the keyboard layout named by id. An
// empty id defaults to "2" (standard 2-beolsik), matching
// select_keyboard(nil)'s behavior in §4.7.
func New(id string) (*Context, error) {
	kbd, err := keyboard.Get(id)
	if err != nil {
		return nil, err
	}
	if id == "" {
		id = "2"
	}
	return &Context{
		buffer:                 newBuffer(),
		keyboard:               kbd,
		keyboardID:             id,
		outputMode:             Syllable,
		optionNonChoseongCombi: true,
	}, nil
}

// icPush is the two-gated buffer-push guard described in §4.2. A
// registered transition callback previews the hypothetical post-push
// jamo string and may veto; with no callback registered, only the
// "is this actually a jamo" gate applies. Either rejection path flushes
// internally before reporting failure.
func (ic *Context) icPush(ch jamo.Scalar) bool {
	if !jamo.IsJamo(ch) {
		ic.flushInternal()
		return false
	}
	if ic.onTransition != nil {
		preview := ic.buffer.previewJamoString(ch)
		if !ic.onTransition(ic, ch, preview, ic.transitionData) {
			ic.flushInternal()
			return false
		}
	}
	return ic.buffer.push(ch)
}

// render returns the buffer's current rendering in the active output
// mode (forced to Jamo when useJamoModeOnly is set).
func (ic *Context) render() []jamo.Scalar {
	if ic.useJamoModeOnly || ic.outputMode == Jamo {
		return ic.buffer.getJamoString()
	}
	return ic.buffer.getString()
}

func (ic *Context) appendToCommit(s []jamo.Scalar) {
	for _, r := range s {
		if len(ic.commit) >= outputCapacity {
			return
		}
		ic.commit = append(ic.commit, r)
	}
}

// appendCommitString appends a single scalar to the commit buffer if
// capacity permits, silently dropping it otherwise (§7's "commit buffer
// ... excess characters are silently dropped" rule).
func (ic *Context) appendCommitString(ch jamo.Scalar) {
	if len(ic.commit) < outputCapacity {
		ic.commit = append(ic.commit, ch)
	}
}

// savePreeditString overwrites preedit with the buffer's current
// rendering.
func (ic *Context) savePreeditString() {
	s := ic.render()
	if len(s) > outputCapacity {
		s = s[:outputCapacity]
	}
	ic.preedit = append(ic.preedit[:0], s...)
}

// saveCommitString appends the buffer's rendering to commit past its
// existing content, then clears the buffer. Used whenever a discipline
// decides the in-progress syllable is finished and a new one is
// starting.
func (ic *Context) saveCommitString() {
	ic.appendToCommit(ic.render())
	ic.buffer.clear()
}

// flushInternal is the silent, no-questions-asked variant invoked by
// icPush on rejection: empties preedit, appends the buffer's rendering to
// commit, and clears the buffer. Distinct from the public Flush in that
// it does not touch the flushed buffer and is never itself the return
// value of a host-facing call.
func (ic *Context) flushInternal() {
	ic.preedit = ic.preedit[:0]
	ic.appendToCommit(ic.render())
	ic.buffer.clear()
}

// combine consults the keyboard's combiner for (table 0, first, second)
// and applies the two option-driven filters from §4.6.
//
// libhangul equivalent: hangul_ic_combine. table id 0 is passed
// unconditionally regardless of the context's active table id — spec §9
// flags this as a latent-looking quirk of the original design that a
// reimplementation should preserve rather than silently fix.
func (ic *Context) combine(first, second jamo.Scalar) jamo.Scalar {
	combined := ic.keyboard.Combine(0, first, second)
	if combined == 0 {
		return 0
	}
	if !ic.optionCombiOnDoubleStroke && ic.keyboard.Type() == keyboard.Jamo {
		if first == second && jamo.IsJamo(first) {
			return 0
		}
	}
	if !ic.optionNonChoseongCombi {
		if jamo.IsChoseong(first) && jamo.IsChoseong(second) && jamo.IsJongseong(combined) {
			return 0
		}
	}
	return combined
}

// choseongToJongseong returns ch's jongseong-role mapping. Yet layouts
// accept the raw mapping unconditionally; non-Yet layouts require ch to
// be conjoinable as a final (ChoseongToJongseongRaw already embeds that
// restriction by simply having no entry for non-conjoinable choseong, so
// both branches read the same table here — the distinction matters for
// JasoYet/JamoYet in principle, and is kept explicit for clarity and so a
// future layout with genuinely different archaic-form handling has an
// obvious seam).
func (ic *Context) choseongToJongseong(ch jamo.Scalar) jamo.Scalar {
	t := ic.keyboard.Type()
	if t == keyboard.JamoYet || t == keyboard.JasoYet {
		return jamo.ChoseongToJongseongRaw(ch)
	}
	return jamo.ChoseongToJongseongRaw(ch)
}
