// Package operand implements the IPPcode18 Operand: a parsed instruction
// argument that is either a variable reference or a typed literal, with
// lazy, idempotent syntactic validation performed on first use.
package operand

import (
	"regexp"
	"strconv"
	"strings"

	"ipp18/frame"
	"ipp18/ippcerr"
	"ipp18/values"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_$*&%-][A-Za-z0-9_$*&%-]*$`)
var intRe = regexp.MustCompile(`^-?\d+$`)
var varRe = regexp.MustCompile(`^(GF|LF|TF)@(.+)$`)

// Kind is the declared XML arg type, one of the six operand shapes.
type Kind string

const (
	KindInt    Kind = "int"
	KindBool   Kind = "bool"
	KindString Kind = "string"
	KindLabel  Kind = "label"
	KindType   Kind = "type"
	KindVar    Kind = "var"
)

// Operand holds a declared type tag and raw textual payload, as read
// directly off the XML argument element. It validates and parses itself
// exactly once, the first time Value, Variable, LabelName or
// FrameTagAndName is called.
type Operand struct {
	Kind Kind
	Raw  string

	validated bool
	err       error

	// populated by validate() on success
	literal   *values.Value // for int/bool/string/label/type
	frameTag  frame.Tag     // for var
	varName   string        // for var
}

// New constructs an unvalidated Operand; validation happens lazily.
func New(kind Kind, raw string) *Operand {
	return &Operand{Kind: kind, Raw: raw}
}

// validate performs the one-time syntactic check and parse. It is safe to
// call repeatedly; only the first call does any work.
func (o *Operand) validate() error {
	if o.validated {
		return o.err
	}
	o.validated = true

	switch o.Kind {
	case KindInt:
		if !intRe.MatchString(o.Raw) {
			o.err = ippcerr.New(ippcerr.ErrInvalidLiteral, "malformed int literal %q", o.Raw)
			return o.err
		}
		n, err := strconv.ParseInt(o.Raw, 10, 64)
		if err != nil {
			o.err = ippcerr.New(ippcerr.ErrInvalidLiteral, "int literal %q out of range", o.Raw)
			return o.err
		}
		o.literal = values.NewInt(n)

	case KindBool:
		switch o.Raw {
		case "true":
			o.literal = values.NewBool(true)
		case "false":
			o.literal = values.NewBool(false)
		default:
			o.err = ippcerr.New(ippcerr.ErrInvalidLiteral, "malformed bool literal %q", o.Raw)
			return o.err
		}

	case KindString:
		decoded, err := decodeEscapes(o.Raw)
		if err != nil {
			o.err = err
			return o.err
		}
		o.literal = values.NewString(decoded)

	case KindLabel:
		if !identifierRe.MatchString(o.Raw) {
			o.err = ippcerr.New(ippcerr.ErrInvalidIdentifier, "malformed label %q", o.Raw)
			return o.err
		}
		o.literal = values.NewLabel(o.Raw)

	case KindType:
		switch o.Raw {
		case "int", "bool", "string":
			o.literal = values.NewTypeTag(o.Raw)
		default:
			o.err = ippcerr.New(ippcerr.ErrInvalidLiteral, "malformed type literal %q", o.Raw)
			return o.err
		}

	case KindVar:
		m := varRe.FindStringSubmatch(o.Raw)
		if m == nil {
			o.err = ippcerr.New(ippcerr.ErrInvalidIdentifier, "malformed variable reference %q", o.Raw)
			return o.err
		}
		if !identifierRe.MatchString(m[2]) {
			o.err = ippcerr.New(ippcerr.ErrInvalidIdentifier, "malformed variable name %q", m[2])
			return o.err
		}
		o.frameTag = frame.Tag(m[1])
		o.varName = m[2]

	default:
		o.err = ippcerr.New(ippcerr.ErrInvalidLiteral, "unknown operand kind %q", o.Kind)
	}

	return o.err
}

// decodeEscapes turns every \ddd escape (three decimal digits) in s into the
// Unicode code point it names, leaving everything else untouched.
func decodeEscapes(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		if i+3 >= len(s) {
			return "", ippcerr.New(ippcerr.ErrInvalidLiteral, "truncated escape sequence in %q", s)
		}
		digits := s[i+1 : i+4]
		code, err := strconv.Atoi(digits)
		if err != nil {
			return "", ippcerr.New(ippcerr.ErrInvalidLiteral, "bad escape sequence \\%s in %q", digits, s)
		}
		b.WriteRune(rune(code))
		i += 3
	}
	return b.String(), nil
}

// Variable resolves the operand to a Variable: for a `var` operand, the
// named cell in its frame; for a literal, an anonymous read-only Variable
// already carrying the literal's (type, value).
func (o *Operand) Variable(store *frame.Store) (*frame.Variable, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.Kind == KindVar {
		return store.GetVar(o.frameTag, o.varName)
	}
	return &frame.Variable{Name: "<literal>", Initialized: true, Val: o.literal}, nil
}

// Value resolves the operand to its (type, value) pair, failing with
// ippcerr.ErrUninitialized if it names a variable that was never assigned.
func (o *Operand) Value(store *frame.Store) (*values.Value, error) {
	v, err := o.Variable(store)
	if err != nil {
		return nil, err
	}
	return v.Read()
}

// LabelName returns the raw label name for a `label`-kind operand, used by
// control-flow opcodes to resolve a jump target without going through the
// frame store.
func (o *Operand) LabelName() (string, error) {
	if err := o.validate(); err != nil {
		return "", err
	}
	if o.Kind != KindLabel {
		return "", ippcerr.New(ippcerr.ErrTypeMismatch, "operand %q is not a label", o.Raw)
	}
	return o.literal.Str, nil
}

// FrameTagAndName exposes the parsed (frame, name) pair for a `var` operand;
// used by DEFVAR, which declares rather than resolves.
func (o *Operand) FrameTagAndName() (frame.Tag, string, error) {
	if err := o.validate(); err != nil {
		return "", "", err
	}
	if o.Kind != KindVar {
		return "", "", ippcerr.New(ippcerr.ErrInvalidIdentifier, "operand %q is not a variable reference", o.Raw)
	}
	return o.frameTag, o.varName, nil
}
