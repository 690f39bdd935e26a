package keyboard

import "testing"

func TestGetDefaultsToTwo(t *testing.T) {
	def, err := Get("")
	if err != nil {
		t.Fatalf("Get(\"\") error: %v", err)
	}
	two, _ := Get("2")
	if def.Type() != two.Type() {
		t.Errorf("Get(\"\") type = %v, want same as Get(\"2\") = %v", def.Type(), two.Type())
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("nonexistent"); err == nil {
		t.Fatal("Get(unknown id) should error")
	}
}

func TestDubeolsikMapping(t *testing.T) {
	k, _ := Get("2")
	if k.Type() != Jamo {
		t.Fatalf("Type() = %v, want Jamo", k.Type())
	}
	cases := []struct {
		ascii rune
		want  rune
	}{
		{'r', 0x1100}, // ㄱ
		{'k', 0x1161}, // ㅏ
		{'R', 0x1101}, // ㄲ
		{'s', 0x1102}, // ㄴ
	}
	for _, tt := range cases {
		if got := k.MapToChar(0, int(tt.ascii)); got != tt.want {
			t.Errorf("MapToChar(%q) = %#x, want %#x", tt.ascii, got, tt.want)
		}
	}
}

func TestDubeolsikCombine(t *testing.T) {
	k, _ := Get("2")
	// ㄱ+ㄱ -> ㄲ (double-stroke)
	if got := k.Combine(0, 0x1100, 0x1100); got != 0x1101 {
		t.Errorf("Combine(g,g) = %#x, want 0x1101", got)
	}
	// ㅗ+ㅏ -> ㅘ (vowel compound)
	if got := k.Combine(0, 0x1169, 0x1161); got != 0x116A {
		t.Errorf("Combine(o,a) = %#x, want 0x116A", got)
	}
	// ㄱ+ㅅ (different choseong) -> ㄳ jongseong compound
	if got := k.Combine(0, 0x1100, 0x1109); got != 0x11AA {
		t.Errorf("Combine(g,s) = %#x, want 0x11AA", got)
	}
	// unrelated pair does not combine
	if got := k.Combine(0, 0x1161, 0x1100); got != 0 {
		t.Errorf("Combine(unrelated) = %#x, want 0", got)
	}
}

func TestRomajaMapping(t *testing.T) {
	k, _ := Get("ro")
	if k.Type() != Romaja {
		t.Fatalf("Type() = %v, want Romaja", k.Type())
	}
	if got := k.MapToChar(0, 'g'); got != 0x1100 {
		t.Errorf("MapToChar(g) = %#x, want 0x1100", got)
	}
	if got := k.MapToChar(0, 'G'); got != 0x1100 {
		t.Errorf("MapToChar(G) = %#x, want same jamo as lowercase", got)
	}
	if got := k.MapToChar(0, 'x'); got != 0x110C {
		t.Errorf("MapToChar(x) = %#x, want 0x110C (ㅈ)", got)
	}
	if got := k.MapToChar(0, 'l'); got != 0 {
		t.Errorf("MapToChar(l) = %#x, want 0 (unmapped)", got)
	}
}

func TestSebeolsikRoleSeparation(t *testing.T) {
	k, _ := Get("3f")
	if k.Type() != Jaso {
		t.Fatalf("Type() = %v, want Jaso", k.Type())
	}
	if got := k.MapToChar(0, 'g'); got != 0x1100 {
		t.Errorf("MapToChar(g) = %#x, want choseong 0x1100", got)
	}
	if got := k.MapToChar(0, 'G'); got != 0x11A8 {
		t.Errorf("MapToChar(G) = %#x, want jongseong 0x11A8", got)
	}
}
