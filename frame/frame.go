// Package frame implements the IPPcode18 variable and frame store: the
// three named frames (GF, TF, LF), the frame stack that backs LF, and the
// Variable cells each frame holds.
package frame

import (
	"ipp18/ippcerr"
	"ipp18/values"
)

// Variable is a named cell. It is uninitialized until first assigned, at
// which point it carries both a type and a value; the inverse (a type with
// no value) never occurs.
type Variable struct {
	Name        string
	Initialized bool
	Val         *values.Value
}

// Type returns the variable's PrimitiveType and true, or the zero type and
// false when the variable is uninitialized.
func (v *Variable) Type() (values.PrimitiveType, bool) {
	if !v.Initialized {
		return 0, false
	}
	return v.Val.Type, true
}

// Read returns the variable's value, failing with ippcerr.ErrUninitialized
// if it was never assigned. This is the read path used by every opcode
// except TYPE.
func (v *Variable) Read() (*values.Value, error) {
	if !v.Initialized {
		return nil, ippcerr.New(ippcerr.ErrUninitialized, "variable %q has no value", v.Name)
	}
	return v.Val, nil
}

// Assign sets the variable's value, initializing it if this is the first
// write. The value is cloned so later in-place mutation of one binding
// cannot alias another that copied from it.
func (v *Variable) Assign(val *values.Value) {
	v.Val = val.Clone()
	v.Initialized = true
}

// TypeName returns the textual type tag TYPE reports for this variable: the
// empty string when uninitialized, otherwise the PrimitiveType's name.
func (v *Variable) TypeName() string {
	if !v.Initialized {
		return ""
	}
	return v.Val.Type.String()
}

// Frame is an ordered collection of Variables with unique names. Order is
// insertion order, preserved only so BREAK's diagnostic dump is
// deterministic; it has no semantic effect.
type Frame struct {
	vars  map[string]*Variable
	order []string
}

func newFrame() *Frame {
	return &Frame{vars: make(map[string]*Variable)}
}

// Declare creates an uninitialized variable named name, failing with
// ippcerr.ErrVariableExists if one is already present.
func (f *Frame) Declare(name string) (*Variable, error) {
	if _, exists := f.vars[name]; exists {
		return nil, ippcerr.New(ippcerr.ErrVariableExists, "%q already declared in this frame", name)
	}
	v := &Variable{Name: name}
	f.vars[name] = v
	f.order = append(f.order, name)
	return v, nil
}

// Lookup returns the variable named name, failing with
// ippcerr.ErrVariableNotFound if absent.
func (f *Frame) Lookup(name string) (*Variable, error) {
	v, ok := f.vars[name]
	if !ok {
		return nil, ippcerr.New(ippcerr.ErrVariableNotFound, "%q not declared in this frame", name)
	}
	return v, nil
}

// Names returns the variable names in declaration order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Tag identifies one of the three frame roles by its two-letter mnemonic.
type Tag string

const (
	Global    Tag = "GF"
	Temporary Tag = "TF"
	Local     Tag = "LF"
)

// ParseTag validates a frame tag string, failing with
// ippcerr.ErrInvalidIdentifier for anything outside {GF,LF,TF}.
func ParseTag(s string) (Tag, error) {
	switch Tag(s) {
	case Global, Temporary, Local:
		return Tag(s), nil
	default:
		return "", ippcerr.New(ippcerr.ErrInvalidIdentifier, "invalid frame tag %q", s)
	}
}

// Store owns the global frame, the detached temporary frame, and the frame
// stack whose top is addressed as LF. It is not safe for concurrent use;
// the interpreter is strictly single-threaded (see the concurrency model),
// so Store carries no locks.
type Store struct {
	global *Frame
	temp   *Frame // nil when TF is undefined
	stack  []*Frame
}

// NewStore creates a Store with an empty, permanent global frame and no
// temporary frame or local frames.
func NewStore() *Store {
	return &Store{global: newFrame()}
}

// CreateTempFrame installs a fresh, empty temporary frame, discarding any
// previous one (CREATEFRAME).
func (s *Store) CreateTempFrame() {
	s.temp = newFrame()
}

// PushFrame moves the temporary frame onto the frame stack, becoming the new
// LF, and leaves TF undefined (PUSHFRAME). Fails with
// ippcerr.ErrFrameUndefined if TF was never created.
func (s *Store) PushFrame() error {
	if s.temp == nil {
		return ippcerr.New(ippcerr.ErrFrameUndefined, "PUSHFRAME: temporary frame is undefined")
	}
	s.stack = append(s.stack, s.temp)
	s.temp = nil
	return nil
}

// PopFrame moves the top of the frame stack back into TF (POPFRAME). Fails
// with ippcerr.ErrFrameUndefined if the frame stack is empty.
func (s *Store) PopFrame() error {
	if len(s.stack) == 0 {
		return ippcerr.New(ippcerr.ErrFrameUndefined, "POPFRAME: frame stack is empty")
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.temp = top
	return nil
}

// frameFor resolves a Tag to its backing Frame, failing with
// ippcerr.ErrFrameUndefined for TF/LF when undefined.
func (s *Store) frameFor(tag Tag) (*Frame, error) {
	switch tag {
	case Global:
		return s.global, nil
	case Temporary:
		if s.temp == nil {
			return nil, ippcerr.New(ippcerr.ErrFrameUndefined, "TF is undefined")
		}
		return s.temp, nil
	case Local:
		if len(s.stack) == 0 {
			return nil, ippcerr.New(ippcerr.ErrFrameUndefined, "LF is undefined: frame stack is empty")
		}
		return s.stack[len(s.stack)-1], nil
	default:
		return nil, ippcerr.New(ippcerr.ErrInvalidIdentifier, "invalid frame tag %q", tag)
	}
}

// DefVar declares name as an uninitialized variable in the addressed frame.
func (s *Store) DefVar(tag Tag, name string) (*Variable, error) {
	f, err := s.frameFor(tag)
	if err != nil {
		return nil, err
	}
	return f.Declare(name)
}

// GetVar resolves name within the addressed frame.
func (s *Store) GetVar(tag Tag, name string) (*Variable, error) {
	f, err := s.frameFor(tag)
	if err != nil {
		return nil, err
	}
	return f.Lookup(name)
}

// Depth reports how many frames are on the frame stack (for BREAK's dump).
func (s *Store) Depth() int { return len(s.stack) }

// HasTemp reports whether TF is currently defined (for BREAK's dump).
func (s *Store) HasTemp() bool { return s.temp != nil }

// Global exposes GF directly; used by BREAK to dump variable names.
func (s *Store) Global() *Frame { return s.global }
