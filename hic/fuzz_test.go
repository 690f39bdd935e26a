package hic

import "testing"

// FuzzProcess feeds arbitrary byte sequences through each keyboard layout,
// the way the project's upstream mayhem/fuzz.cpp harness hammers
// hangul_jamo_to_cjamo with arbitrary scalars: the goal isn't a particular
// output, it's that no input sequence ever panics and the documented
// invariants (bounded output, is_empty consistency) keep holding.
func FuzzProcess(f *testing.F) {
	seeds := []string{
		"",
		"rk",
		"gksrmf",
		"gho",
		string(rune(backspaceByte)),
		"rk" + string(rune(backspaceByte)) + string(rune(backspaceByte)),
		"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	ids := []string{"2", "2y", "3f", "ro"}
	f.Fuzz(func(t *testing.T, input string) {
		for _, id := range ids {
			ic, err := New(id)
			if err != nil {
				t.Fatalf("New(%q): %v", id, err)
			}
			for _, r := range input {
				ic.Process(int(r))

				if len(ic.GetPreeditString()) > outputCapacity {
					t.Fatalf("keyboard %q: preedit exceeded capacity: %d", id, len(ic.GetPreeditString()))
				}
				if len(ic.GetCommitString()) > outputCapacity {
					t.Fatalf("keyboard %q: commit exceeded capacity: %d", id, len(ic.GetCommitString()))
				}
				if ic.IsEmpty() && len(ic.GetPreeditString()) != 0 {
					t.Fatalf("keyboard %q: IsEmpty() true but preedit non-empty: %q", id, string(ic.GetPreeditString()))
				}
			}
			ic.Flush()
			if !ic.IsEmpty() {
				t.Fatalf("keyboard %q: Flush should leave the buffer empty", id)
			}
		}
	})
}
