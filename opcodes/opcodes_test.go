package opcodes

import "testing"

func TestLookupIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"move", "MOVE", "Move"} {
		op, ok := Lookup(name)
		if !ok || op != MOVE {
			t.Errorf("Lookup(%q) = %v, %v, want MOVE, true", name, op, ok)
		}
	}
}

func TestLookupUnknownOpcode(t *testing.T) {
	if _, ok := Lookup("FROB"); ok {
		t.Error("Lookup(FROB) should fail for an opcode outside the instruction set")
	}
}

func TestArgCountCoversEveryNamedOpcode(t *testing.T) {
	for op := range names {
		if ArgCount(op) < 0 {
			t.Errorf("ArgCount(%s) has no entry", op)
		}
	}
}

func TestArgCountSpotChecks(t *testing.T) {
	cases := map[Opcode]int{
		CREATEFRAME: 0,
		RETURN:      0,
		DEFVAR:      1,
		JUMP:        1,
		MOVE:        2,
		READ:        2,
		ADD:         3,
		JUMPIFEQ:    3,
		SETCHAR:     3,
	}
	for op, want := range cases {
		if got := ArgCount(op); got != want {
			t.Errorf("ArgCount(%s) = %d, want %d", op, got, want)
		}
	}
}
