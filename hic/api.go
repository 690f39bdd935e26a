package hic

import (
	"github.com/hangulic/hic/internal/jamo"
	"github.com/hangulic/hic/internal/keyboard"
)

const backspaceByte = 0x08

// Process feeds one ASCII keystroke through the context. It returns
// whether the key was consumed; the host must forward an unconsumed key
// to its own handler (spec §4.7, §7).
//
// libhangul equivalent: hangul_ic_process.
func (ic *Context) Process(ascii int) bool {
	if ic == nil {
		return false
	}
	ic.preedit = ic.preedit[:0]
	ic.commit = ic.commit[:0]

	if ascii == backspaceByte {
		return ic.Backspace()
	}

	ch := ic.keyboard.MapToChar(0, ascii)
	if ic.onTranslate != nil {
		ch = ic.onTranslate(ic, ascii, ch, ic.translateData)
	}

	if ch == 0 {
		// Unknown ascii: commit whatever syllable was in progress and let
		// the raw byte itself pass through as committed text (spec §7).
		if !ic.buffer.isEmpty() {
			ic.saveCommitString()
		}
		ic.appendCommitString(jamo.Scalar(ascii))
		ic.savePreeditString()
		return false
	}

	switch ic.keyboard.Type() {
	case keyboard.Jamo, keyboard.JamoYet:
		return ic.processJamo(ch)
	case keyboard.Jaso, keyboard.JasoYet:
		return ic.processJaso(ch)
	case keyboard.Romaja:
		return ic.processRomaja(ascii, ch)
	default:
		return false
	}
}

// Backspace undoes the most recent keystroke's effect on the composition
// buffer.
//
// libhangul equivalent: hangul_ic_backspace.
func (ic *Context) Backspace() bool {
	if ic == nil {
		return false
	}
	ic.preedit = ic.preedit[:0]
	ic.commit = ic.commit[:0]
	ok := ic.buffer.backspace()
	if ok {
		ic.savePreeditString()
	}
	return ok
}

// Flush force-finalizes whatever is in progress, clears the buffer, and
// returns the flushed text. Distinct from Reset in that the flushed
// content is handed back to the host rather than discarded.
//
// libhangul equivalent: hangul_ic_flush.
func (ic *Context) Flush() []rune {
	if ic == nil {
		return nil
	}
	ic.preedit = ic.preedit[:0]
	ic.commit = ic.commit[:0]
	ic.flushed = append(ic.flushed[:0], ic.render()...)
	ic.buffer.clear()
	return append([]rune(nil), ic.flushed...)
}

// Reset discards any in-progress composition without surfacing it.
//
// libhangul equivalent: hangul_ic_reset.
func (ic *Context) Reset() {
	if ic == nil {
		return
	}
	ic.preedit = ic.preedit[:0]
	ic.commit = ic.commit[:0]
	ic.flushed = ic.flushed[:0]
	ic.buffer.clear()
}

// GetPreeditString returns the in-progress composition as of the most
// recent Process/Backspace call.
func (ic *Context) GetPreeditString() []rune {
	if ic == nil {
		return nil
	}
	return append([]rune(nil), ic.preedit...)
}

// GetCommitString returns the text finalized by the most recent
// Process/Backspace call. Unlike preedit, this is not cumulative: a host
// must append it to its own output buffer itself.
func (ic *Context) GetCommitString() []rune {
	if ic == nil {
		return nil
	}
	return append([]rune(nil), ic.commit...)
}

func (ic *Context) IsEmpty() bool {
	if ic == nil {
		return true
	}
	return ic.buffer.isEmpty()
}

func (ic *Context) HasChoseong() bool {
	if ic == nil {
		return false
	}
	return ic.buffer.hasChoseong()
}

func (ic *Context) HasJungseong() bool {
	if ic == nil {
		return false
	}
	return ic.buffer.hasJungseong()
}

func (ic *Context) HasJongseong() bool {
	if ic == nil {
		return false
	}
	return ic.buffer.hasJongseong()
}

// GetOption reports a toggleable option's current value. An unrecognized
// id returns false (spec §7, "invalid option id").
func (ic *Context) GetOption(opt Option) bool {
	if ic == nil {
		return false
	}
	switch opt {
	case OptionAutoReorder:
		return ic.optionAutoReorder
	case OptionCombiOnDoubleStroke:
		return ic.optionCombiOnDoubleStroke
	case OptionNonChoseongCombi:
		return ic.optionNonChoseongCombi
	default:
		return false
	}
}

// SetOption toggles a behavior flag. An unrecognized id is a no-op.
func (ic *Context) SetOption(opt Option, value bool) {
	if ic == nil {
		return
	}
	switch opt {
	case OptionAutoReorder:
		ic.optionAutoReorder = value
	case OptionCombiOnDoubleStroke:
		ic.optionCombiOnDoubleStroke = value
	case OptionNonChoseongCombi:
		ic.optionNonChoseongCombi = value
	}
}

// SetOutputMode changes whether queries render composed syllables or raw
// jamo, unless the context was fixed to jamo-only output.
func (ic *Context) SetOutputMode(mode OutputMode) {
	if ic == nil || ic.useJamoModeOnly {
		return
	}
	ic.outputMode = mode
}

// SetJamoModeOnly fixes output to Jamo mode regardless of SetOutputMode,
// for hosts that never want syllable composition (e.g. a raw jamo entry
// field). There is no libhangul-exposed setter for this flag; it exists
// here as the seam §3's use_jamo_mode_only field implies a constructor or
// configuration path would need.
func (ic *Context) SetJamoModeOnly(only bool) {
	if ic == nil {
		return
	}
	ic.useJamoModeOnly = only
}

// ConnectTranslate registers the translate callback.
func (ic *Context) ConnectTranslate(fn TranslateFunc, userdata any) {
	if ic == nil {
		return
	}
	ic.onTranslate = fn
	ic.translateData = userdata
}

// ConnectTransition registers the transition callback.
func (ic *Context) ConnectTransition(fn TransitionFunc, userdata any) {
	if ic == nil {
		return
	}
	ic.onTransition = fn
	ic.transitionData = userdata
}

// ConnectCallback registers a callback by case-insensitive name ("translate"
// or "transition"), for hosts that look callbacks up dynamically (e.g. a
// config-driven plugin registry) rather than wiring them by hand. fn must
// be a TranslateFunc or TransitionFunc matching name; a mismatch is a
// silent no-op, consistent with this package's "never panic on a
// keystroke-adjacent call" posture.
func (ic *Context) ConnectCallback(name string, fn any, userdata any) {
	if ic == nil {
		return
	}
	switch lowerASCII(name) {
	case "translate":
		if f, ok := fn.(TranslateFunc); ok {
			ic.ConnectTranslate(f, userdata)
		}
	case "transition":
		if f, ok := fn.(TransitionFunc); ok {
			ic.ConnectTransition(f, userdata)
		}
	}
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// SelectKeyboard swaps the active keyboard layout by id without touching
// the in-progress composition buffer. An empty id defaults to "2".
//
// libhangul equivalent: hangul_ic_select_keyboard.
func (ic *Context) SelectKeyboard(id string) error {
	if ic == nil {
		return nil
	}
	kbd, err := keyboard.Get(id)
	if err != nil {
		return err
	}
	if id == "" {
		id = "2"
	}
	ic.keyboard = kbd
	ic.keyboardID = id
	return nil
}

// SetKeyboard is an alias for SelectKeyboard kept for symmetry with the
// other set_* accessors in spec §4.7; both ultimately just swap the
// descriptor reference.
func (ic *Context) SetKeyboard(id string) error {
	return ic.SelectKeyboard(id)
}

// SwitchKeyboardTable is identical to SelectKeyboard: this package has no
// notion of a single descriptor exposing multiple table ids independent
// of layout (the registry in internal/keyboard hands back one Table per
// id), so "switch table" and "select keyboard" coincide.
func (ic *Context) SwitchKeyboardTable(id string) error {
	return ic.SelectKeyboard(id)
}

// IsTransliteration reports whether the active layout is Romaja.
func (ic *Context) IsTransliteration() bool {
	if ic == nil {
		return false
	}
	return ic.keyboard.Type() == keyboard.Romaja
}
