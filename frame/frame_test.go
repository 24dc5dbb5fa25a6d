package frame

import (
	"errors"
	"testing"

	"ipp18/ippcerr"
	"ipp18/values"
)

func TestStoreGlobalFrameAlwaysDefined(t *testing.T) {
	s := NewStore()
	if _, err := s.DefVar(Global, "x"); err != nil {
		t.Fatalf("DefVar(GF, x): %v", err)
	}
	v, err := s.GetVar(Global, "x")
	if err != nil {
		t.Fatalf("GetVar(GF, x): %v", err)
	}
	if v.Initialized {
		t.Error("freshly declared variable should be uninitialized")
	}
}

func TestStoreTempFrameLifecycle(t *testing.T) {
	s := NewStore()

	if _, err := s.DefVar(Temporary, "v"); !errors.Is(err, ippcerr.ErrFrameUndefined) {
		t.Fatalf("DefVar(TF) before CreateTempFrame: got %v, want ErrFrameUndefined", err)
	}

	s.CreateTempFrame()
	v, err := s.DefVar(Temporary, "v")
	if err != nil {
		t.Fatalf("DefVar(TF, v): %v", err)
	}
	v.Assign(values.NewInt(7))

	if err := s.PushFrame(); err != nil {
		t.Fatalf("PushFrame: %v", err)
	}
	if s.HasTemp() {
		t.Error("TF should be undefined immediately after PUSHFRAME")
	}

	lv, err := s.GetVar(Local, "v")
	if err != nil {
		t.Fatalf("GetVar(LF, v) after push: %v", err)
	}
	got, err := lv.Read()
	if err != nil || got.Int != 7 {
		t.Fatalf("LF@v = %v, %v, want 7, nil", got, err)
	}

	if err := s.PopFrame(); err != nil {
		t.Fatalf("PopFrame: %v", err)
	}
	if !s.HasTemp() {
		t.Error("TF should be defined again after POPFRAME")
	}
	tv, err := s.GetVar(Temporary, "v")
	if err != nil {
		t.Fatalf("GetVar(TF, v) after pop: %v", err)
	}
	got, err = tv.Read()
	if err != nil || got.Int != 7 {
		t.Fatalf("TF@v = %v, %v, want 7, nil", got, err)
	}
}

func TestStorePushPopFrameErrors(t *testing.T) {
	s := NewStore()
	if err := s.PushFrame(); !errors.Is(err, ippcerr.ErrFrameUndefined) {
		t.Fatalf("PushFrame with no TF: got %v, want ErrFrameUndefined", err)
	}
	if err := s.PopFrame(); !errors.Is(err, ippcerr.ErrFrameUndefined) {
		t.Fatalf("PopFrame with empty stack: got %v, want ErrFrameUndefined", err)
	}
}

func TestFrameDeclareDuplicateFails(t *testing.T) {
	s := NewStore()
	if _, err := s.DefVar(Global, "a"); err != nil {
		t.Fatalf("first DefVar: %v", err)
	}
	if _, err := s.DefVar(Global, "a"); !errors.Is(err, ippcerr.ErrVariableExists) {
		t.Fatalf("duplicate DefVar: got %v, want ErrVariableExists", err)
	}
}

func TestFrameLookupMissingFails(t *testing.T) {
	s := NewStore()
	if _, err := s.GetVar(Global, "missing"); !errors.Is(err, ippcerr.ErrVariableNotFound) {
		t.Fatalf("lookup of missing var: got %v, want ErrVariableNotFound", err)
	}
}

func TestVariableReadUninitializedFails(t *testing.T) {
	v := &Variable{Name: "x"}
	if _, err := v.Read(); !errors.Is(err, ippcerr.ErrUninitialized) {
		t.Fatalf("Read() on uninitialized var: got %v, want ErrUninitialized", err)
	}
	if v.TypeName() != "" {
		t.Errorf("TypeName() on uninitialized var = %q, want empty", v.TypeName())
	}
}

func TestParseTag(t *testing.T) {
	for _, tag := range []string{"GF", "LF", "TF"} {
		if _, err := ParseTag(tag); err != nil {
			t.Errorf("ParseTag(%q): %v", tag, err)
		}
	}
	if _, err := ParseTag("XX"); !errors.Is(err, ippcerr.ErrInvalidIdentifier) {
		t.Fatalf("ParseTag(XX): got %v, want ErrInvalidIdentifier", err)
	}
}
