package operand

import (
	"errors"
	"testing"

	"ipp18/frame"
	"ipp18/ippcerr"
)

func TestIntLiteralValidation(t *testing.T) {
	store := frame.NewStore()

	ok := New(KindInt, "-42")
	v, err := ok.Value(store)
	if err != nil || v.Int != -42 {
		t.Fatalf("Value(-42) = %v, %v", v, err)
	}

	bad := New(KindInt, "4.2")
	if _, err := bad.Value(store); !errors.Is(err, ippcerr.ErrInvalidLiteral) {
		t.Fatalf("Value(4.2): got %v, want ErrInvalidLiteral", err)
	}
}

func TestBoolLiteralValidation(t *testing.T) {
	store := frame.NewStore()
	if _, err := New(KindBool, "True").Value(store); !errors.Is(err, ippcerr.ErrInvalidLiteral) {
		t.Fatalf("bool literal \"True\": got %v, want ErrInvalidLiteral", err)
	}
	v, err := New(KindBool, "true").Value(store)
	if err != nil || !v.Bool {
		t.Fatalf("bool literal \"true\" = %v, %v", v, err)
	}
}

func TestStringEscapeDecoding(t *testing.T) {
	store := frame.NewStore()
	v, err := New(KindString, `a\032b`).Value(store)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Str != "a b" {
		t.Fatalf("decoded = %q, want %q", v.Str, "a b")
	}
}

func TestLabelAndIdentifierValidation(t *testing.T) {
	if _, err := New(KindLabel, "1bad").LabelName(); !errors.Is(err, ippcerr.ErrInvalidIdentifier) {
		t.Fatalf("label starting with digit: got %v, want ErrInvalidIdentifier", err)
	}
	name, err := New(KindLabel, "_ok-2").LabelName()
	if err != nil || name != "_ok-2" {
		t.Fatalf("label %v, %v", name, err)
	}
}

func TestVarOperandParsesFrameAndName(t *testing.T) {
	tag, name, err := New(KindVar, "LF@counter").FrameTagAndName()
	if err != nil {
		t.Fatalf("FrameTagAndName: %v", err)
	}
	if tag != frame.Local || name != "counter" {
		t.Fatalf("got (%v, %v), want (LF, counter)", tag, name)
	}

	if _, _, err := New(KindVar, "XX@counter").FrameTagAndName(); !errors.Is(err, ippcerr.ErrInvalidIdentifier) {
		t.Fatalf("bad frame tag: got %v, want ErrInvalidIdentifier", err)
	}
}

func TestVariableResolvesThroughFrame(t *testing.T) {
	store := frame.NewStore()
	if _, err := store.DefVar(frame.Global, "x"); err != nil {
		t.Fatalf("DefVar: %v", err)
	}

	op := New(KindVar, "GF@x")
	v, err := op.Variable(store)
	if err != nil {
		t.Fatalf("Variable: %v", err)
	}
	if v.Initialized {
		t.Error("freshly declared variable should read as uninitialized")
	}

	if _, err := op.Value(store); !errors.Is(err, ippcerr.ErrUninitialized) {
		t.Fatalf("Value on uninitialized var: got %v, want ErrUninitialized", err)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	op := New(KindInt, "7")
	store := frame.NewStore()
	v1, err1 := op.Value(store)
	v2, err2 := op.Value(store)
	if err1 != nil || err2 != nil || v1.Int != v2.Int {
		t.Fatalf("repeated Value calls diverged: (%v,%v) vs (%v,%v)", v1, err1, v2, err2)
	}
}
