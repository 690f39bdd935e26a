// Package conformance exercises hic.Context from the outside, against the
// concrete scenarios and the cross-cutting properties a host embedding the
// library depends on — the acceptance-level counterpart to the package's
// own internal _test.go files.
package conformance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hangulic/hic/hic"
)

func newContext(t *testing.T, id string) *hic.Context {
	t.Helper()
	ic, err := hic.New(id)
	require.NoError(t, err)
	return ic
}

// feed drives ic through s one ASCII byte at a time and returns the final
// preedit plus the commit text accumulated across the whole run.
func feed(ic *hic.Context, s string) (preedit, commit string) {
	var acc []rune
	for _, r := range s {
		ic.Process(int(r))
		acc = append(acc, ic.GetCommitString()...)
	}
	return string(ic.GetPreeditString()), string(acc)
}

func TestScenarioGaSyllable(t *testing.T) {
	ic := newContext(t, "2")
	preedit, commit := feed(ic, "rk")
	require.Equal(t, "가", preedit)
	require.Empty(t, commit)
}

func TestScenarioGakAddsJongseong(t *testing.T) {
	ic := newContext(t, "2")
	preedit, commit := feed(ic, "rkr")
	require.Equal(t, "각", preedit)
	require.Empty(t, commit)
}

func TestScenarioHangeulTwoSyllables(t *testing.T) {
	ic := newContext(t, "2")
	preedit, commit := feed(ic, "gksrmf")
	require.Equal(t, "한", commit)
	require.Equal(t, "글", preedit)
}

func TestScenarioRomajaHo(t *testing.T) {
	ic := newContext(t, "ro")
	preedit, _ := feed(ic, "gho")
	require.Equal(t, "호", preedit)
}

func TestScenarioJasoRoleTaggedDirect(t *testing.T) {
	ic := newContext(t, "3f")
	preedit, _ := feed(ic, "gaG")
	require.Equal(t, "각", preedit)
}

// --- universal properties (spec.md §8) ---

func TestIsEmptyImpliesPreeditEmpty(t *testing.T) {
	for _, id := range []string{"2", "2y", "3f", "ro"} {
		ic := newContext(t, id)
		require.True(t, ic.IsEmpty())
		require.Empty(t, ic.GetPreeditString())
		ic.Process('r')
		if ic.IsEmpty() {
			require.Empty(t, ic.GetPreeditString())
		} else {
			require.NotEmpty(t, ic.GetPreeditString())
		}
	}
}

func TestResetIsIdempotent(t *testing.T) {
	ic := newContext(t, "2")
	feed(ic, "rk")
	ic.Reset()
	ic.Reset()
	require.True(t, ic.IsEmpty())
	require.Empty(t, ic.GetPreeditString())
}

func TestFlushIsIdempotentOnSecondCall(t *testing.T) {
	ic := newContext(t, "2")
	feed(ic, "rk")
	first := ic.Flush()
	require.NotEmpty(t, first)
	second := ic.Flush()
	require.Empty(t, second)
}

func TestBackspaceReversesEveryPush(t *testing.T) {
	ic := newContext(t, "2")
	feed(ic, "gksrmf")
	// the in-progress half (글) took three keystrokes: r, m, f
	ic.Backspace()
	require.False(t, ic.IsEmpty())
	ic.Backspace()
	require.False(t, ic.IsEmpty())
	ic.Backspace()
	require.True(t, ic.IsEmpty())
}

func TestCombinationIsReversibleAcrossDisciplines(t *testing.T) {
	for _, id := range []string{"2", "3f", "ro"} {
		ic := newContext(t, id)
		switch id {
		case "2":
			ic.SetOption(hic.OptionCombiOnDoubleStroke, true)
			ic.Process('r')
			ic.Process('r')
			before := string(ic.GetPreeditString())
			ic.Backspace()
			after := string(ic.GetPreeditString())
			require.NotEqual(t, before, after)
		case "3f":
			feed(ic, "ga")
			ic.Process('G')
			ic.Process('S')
			require.True(t, ic.HasJongseong())
			ic.Backspace()
			require.True(t, ic.HasJongseong())
		case "ro":
			ic.Process('g') // ㄱ
			ic.Process('g') // combine -> ㄲ
			require.True(t, ic.HasChoseong())
			ic.Backspace()
			// backspace should restore the pre-combine ㄱ, not clear the slot
			require.True(t, ic.HasChoseong())
			require.False(t, ic.IsEmpty())
		}
	}
}

func TestCommitBufferCapacityTruncates(t *testing.T) {
	ic := newContext(t, "2")
	// feed far more unmapped bytes than the 63-scalar commit capacity; each
	// call resets commit, so this confirms that no single call ever reports
	// more than the documented cap.
	for i := 0; i < 200; i++ {
		ic.Process('!')
		require.LessOrEqual(t, len(ic.GetCommitString()), 63)
	}
}

func TestSelectKeyboardRoundTripsThroughAllLayouts(t *testing.T) {
	ic := newContext(t, "2")
	for _, id := range []string{"2y", "3f", "ro", "2"} {
		require.NoError(t, ic.SelectKeyboard(id))
	}
	require.False(t, ic.IsTransliteration())
}
