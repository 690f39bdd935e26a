package hic

import (
	"testing"

	"github.com/hangulic/hic/internal/jamo"
)

func TestBufferPushAssignsSlot(t *testing.T) {
	b := newBuffer()
	if !b.push(0x1100) { // ㄱ
		t.Fatal("push(cho) failed")
	}
	if b.choseong != 0x1100 {
		t.Errorf("choseong = %#x, want 0x1100", b.choseong)
	}
	if !b.push(0x1161) { // ㅏ
		t.Fatal("push(jung) failed")
	}
	if b.jungseong != 0x1161 {
		t.Errorf("jungseong = %#x, want 0x1161", b.jungseong)
	}
}

func TestBufferPushRejectsNonJamo(t *testing.T) {
	b := newBuffer()
	if b.push('x') {
		t.Fatal("push(non-jamo) should fail")
	}
}

func TestBufferPushOverflow(t *testing.T) {
	b := newBuffer()
	for i := 0; i < stackCapacity; i++ {
		// alternate role so every push is legal in isolation
		if i%2 == 0 {
			if !b.push(0x1100) {
				t.Fatalf("push %d should succeed", i)
			}
		} else {
			if !b.push(0x1161) {
				t.Fatalf("push %d should succeed", i)
			}
		}
	}
	if b.push(0x1100) {
		t.Fatal("push into a full stack should fail")
	}
}

func TestBufferClear(t *testing.T) {
	b := newBuffer()
	b.push(0x1100)
	b.push(0x1161)
	b.clear()
	if !b.isEmpty() {
		t.Fatal("buffer should be empty after clear")
	}
	if b.index != -1 {
		t.Errorf("index = %d, want -1", b.index)
	}
}

func TestBufferBackspaceReversesSimplePush(t *testing.T) {
	b := newBuffer()
	b.push(0x1100) // ㄱ
	b.push(0x1161) // ㅏ
	if !b.backspace() {
		t.Fatal("backspace should succeed")
	}
	if b.jungseong != 0 {
		t.Errorf("jungseong should be cleared, got %#x", b.jungseong)
	}
	if b.choseong != 0x1100 {
		t.Errorf("choseong should survive, got %#x", b.choseong)
	}
	if !b.backspace() {
		t.Fatal("second backspace should succeed")
	}
	if !b.isEmpty() {
		t.Fatal("buffer should be empty after undoing every push")
	}
}

func TestBufferBackspaceOnEmpty(t *testing.T) {
	b := newBuffer()
	if b.backspace() {
		t.Fatal("backspace on empty buffer should fail")
	}
}

func TestBufferBackspaceReversesCombination(t *testing.T) {
	b := newBuffer()
	b.push(0x1100) // ㄱ
	b.push(0x1101) // ㄲ, as if produced by combine(ㄱ, ㄱ)
	if !b.backspace() {
		t.Fatal("backspace should succeed")
	}
	if b.choseong != 0x1100 {
		t.Errorf("choseong should revert to pre-combine value, got %#x", b.choseong)
	}
}

func TestBufferGetStringComposesSyllable(t *testing.T) {
	b := newBuffer()
	b.push(0x1100) // ㄱ
	b.push(0x1161) // ㅏ
	got := b.getString()
	if len(got) != 1 || got[0] != 0xAC00 {
		t.Errorf("getString() = %v, want [0xAC00]", got)
	}
}

func TestBufferGetStringChoseongOnly(t *testing.T) {
	b := newBuffer()
	b.push(0x1100) // ㄱ
	got := b.getString()
	if len(got) != 1 || got[0] != 0x3131 {
		t.Errorf("getString() = %v, want compatibility ㄱ [0x3131]", got)
	}
}

func TestBufferGetJamoString(t *testing.T) {
	b := newBuffer()
	b.push(0x1100)
	got := b.getJamoString()
	if len(got) != 2 || got[0] != 0x1100 || got[1] != jamo.JungseongFiller {
		t.Errorf("getJamoString() = %v, want [cho, JungseongFiller]", got)
	}
}

func TestBufferPeek(t *testing.T) {
	b := newBuffer()
	if b.peek() != 0 {
		t.Fatal("peek on empty buffer should be 0")
	}
	b.push(0x1100)
	if b.peek() != 0x1100 {
		t.Errorf("peek() = %#x, want 0x1100", b.peek())
	}
}
