// Package keyboard implements the keyboard descriptor store that
// spec.md's input-context core treats as an external collaborator: a
// registry of (table id) -> (ASCII-to-jamo map, jamo-combine table,
// layout type). spec.md §1 explicitly scopes the on-disk keyboard format
// and table enumeration API out of the core, so this is a small static,
// in-memory registry rather than a file-backed parser.
package keyboard

import (
	"github.com/pkg/errors"

	"github.com/hangulic/hic/internal/jamo"
)

// Type is the processing discipline a layout drives in package hic.
type Type int

const (
	Jamo Type = iota
	JamoYet
	Jaso
	JasoYet
	Romaja
)

func (t Type) String() string {
	switch t {
	case Jamo:
		return "jamo"
	case JamoYet:
		return "jamo-yet"
	case Jaso:
		return "jaso"
	case JasoYet:
		return "jaso-yet"
	case Romaja:
		return "romaja"
	default:
		return "unknown"
	}
}

// Table is the keyboard collaborator spec.md §6 describes: it maps ASCII
// keystrokes to jamo and combines two jamo into one, for a given table
// id. Real libhangul keyboards key off of (table_id, ascii); the tables
// this registry serves define a single table and ignore the id, and 0 is
// also the only table
// index package hic's combiner ever actually passes (spec.md §4.6, §9
// "combine always uses table index 0").
type Table interface {
	// MapToChar returns the jamo a keystroke produces at the given table
	// id, or 0 if the layout has no mapping for ascii.
	MapToChar(tableID int, ascii int) rune
	// Combine returns the jamo formed by conjoining first and second, or
	// 0 if they do not combine.
	Combine(tableID int, first, second rune) rune
	// Type reports the processing discipline this layout requires.
	Type() Type
}

// ErrUnknownKeyboard is returned by Get for an id with no registered
// table. It is a boundary-level error (CLI/config), never surfaced from
// the per-keystroke hot path in package hic.
var ErrUnknownKeyboard = errors.New("keyboard: unknown table id")

var registry = map[string]Table{
	"2":  dubeolsik{yet: false},
	"2y": dubeolsik{yet: true},
	"3f": sebeolsikFinal{},
	"ro": romaja{},
}

// Get looks up a registered keyboard table by id. An empty id defaults to
// "2", matching spec.md §4.7's select_keyboard(nil) rule.
func Get(id string) (Table, error) {
	if id == "" {
		id = "2"
	}
	t, ok := registry[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKeyboard, "id %q", id)
	}
	return t, nil
}

// combineGeneric implements the four combination categories spec.md §4.6
// requires of a keyboard's combiner, independent of which specific table
// is asking: same-letter choseong doubling (double), vowel compounding,
// different-letter choseong-pair-to-compound-jongseong (the MS-IME ㄳ
// shortcut), and jongseong-pair-to-compound-jongseong. double and
// vowel are per-table (different keyboards expose different vowel
// inventories); the consonant-compound rules are universal Unicode facts
// and are shared via package jamo.
func combineGeneric(double, vowel map[[2]rune]rune, first, second rune) rune {
	if c, ok := double[[2]rune{first, second}]; ok {
		return c
	}
	if c, ok := vowel[[2]rune{first, second}]; ok {
		return c
	}
	if jamo.IsChoseong(first) && jamo.IsChoseong(second) {
		jf := jamo.ChoseongToJongseongRaw(first)
		js := jamo.ChoseongToJongseongRaw(second)
		if jf == 0 || js == 0 {
			return 0
		}
		return jamo.CombineJongseong(jf, js)
	}
	if jamo.IsJongseong(first) && jamo.IsJongseong(second) {
		return jamo.CombineJongseong(first, second)
	}
	return 0
}
