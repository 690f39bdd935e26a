package hic

import "testing"

func newRomaja(t *testing.T) *Context {
	t.Helper()
	ic, err := New("ro")
	if err != nil {
		t.Fatalf("New(ro): %v", err)
	}
	return ic
}

func TestRomajaScenarioHo(t *testing.T) {
	ic := newRomaja(t)
	feed(t, ic, "gho")
	if got := string(ic.GetPreeditString()); got != "호" {
		t.Errorf("preedit = %q, want 호", got)
	}
}

func TestRomajaXIsForcedToJieut(t *testing.T) {
	ic := newRomaja(t)
	ic.Process('x')
	if ic.buffer.choseong != 0x110C {
		t.Errorf("choseong = %#x, want 0x110C (ㅈ) regardless of table mapping", ic.buffer.choseong)
	}
}

func TestRomajaUppercaseForcesCommitFirst(t *testing.T) {
	ic := newRomaja(t)
	feed(t, ic, "ga") // 가, still in progress
	ic.Process('N')   // uppercase: commits before processing
	if got := string(ic.GetCommitString()); got != "가" {
		t.Errorf("commit = %q, want 가 committed by the uppercase rule", got)
	}
}

func TestRomajaEmptyBufferVowelFillsIeung(t *testing.T) {
	ic := newRomaja(t)
	ic.Process('a') // bare vowel with nothing pushed yet
	if ic.buffer.choseong != 0x110B {
		t.Errorf("choseong = %#x, want 0x110B (ㅇ auto-filled)", ic.buffer.choseong)
	}
}

func TestRomajaIsTransliteration(t *testing.T) {
	ic := newRomaja(t)
	if !ic.IsTransliteration() {
		t.Error("Romaja layout should report IsTransliteration() == true")
	}
	dub := newDubeolsik(t)
	if dub.IsTransliteration() {
		t.Error("2-beolsik layout should report IsTransliteration() == false")
	}
}

func TestRomajaUnmappedLetterPassesThrough(t *testing.T) {
	ic := newRomaja(t)
	if ic.Process('l') { // 'l'/'z' are deliberately unmapped in the ro table
		t.Error("unmapped ascii should not be consumed")
	}
	if got := string(ic.GetCommitString()); got != "l" {
		t.Errorf("commit = %q, want the literal byte to pass through", got)
	}
}
