// Package loader builds the in-memory instruction list the interpreter
// executes. XML parsing itself is plumbing — any conformant tree reader
// would do — so this package leans on encoding/xml and focuses its own
// logic on the structural checks the specification actually cares about:
// a recognized language tag, known opcodes, correct arity, and unique
// instruction ordinals.
package loader

import (
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"

	"ipp18/ippcerr"
	"ipp18/operand"
	"ipp18/opcodes"
)

// Instruction is one opcode plus its parsed operands, at the ordinal the
// source program assigned it.
type Instruction struct {
	Order int
	Op    opcodes.Opcode
	Args  []*operand.Operand
}

// Program is the flat, ordinal-sorted instruction list a loaded source
// produces.
type Program struct {
	Instructions []*Instruction
}

// xmlProgram and friends mirror the wire schema from §6: a root element
// carrying a language attribute, instruction children, and up to three
// arg1/arg2/arg3 children each carrying a type and textual payload.
type xmlProgram struct {
	Language     string          `xml:"language,attr"`
	Instructions []xmlInstruction `xml:"instruction"`
}

type xmlInstruction struct {
	Order  string   `xml:"order,attr"`
	Opcode string   `xml:"opcode,attr"`
	Args   []xmlArg `xml:",any"`
}

type xmlArg struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

// Load parses r as an IPPcode18 XML program and returns its instruction
// list sorted by ascending order. It fails with ippcerr.ExitValidation for
// a missing/wrong language tag, and ippcerr.ExitMalformedProgram for any
// other structural defect: an unrecognized opcode, a non-positive or
// duplicate order, or an argument count that does not match the opcode.
func Load(r io.Reader) (*Program, error) {
	var doc xmlProgram
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, ippcerr.New(ippcerr.ErrMalformedProgram, "invalid XML: %v", err)
	}

	if !strings.EqualFold(doc.Language, "IPPcode18") {
		return nil, ippcerr.New(ippcerr.ErrBadLanguageTag, "language attribute is %q", doc.Language)
	}

	instructions := make([]*Instruction, 0, len(doc.Instructions))
	seenOrders := make(map[int]bool, len(doc.Instructions))

	for _, xi := range doc.Instructions {
		order, err := strconv.Atoi(xi.Order)
		if err != nil || order <= 0 {
			return nil, ippcerr.New(ippcerr.ErrMalformedProgram, "invalid instruction order %q", xi.Order)
		}
		if seenOrders[order] {
			return nil, ippcerr.New(ippcerr.ErrDuplicateOrder, "order %d appears more than once", order)
		}
		seenOrders[order] = true

		op, ok := opcodes.Lookup(xi.Opcode)
		if !ok {
			return nil, ippcerr.New(ippcerr.ErrUnknownOpcode, "%q at order %d", xi.Opcode, order)
		}

		args, err := buildArgs(xi.Args)
		if err != nil {
			return nil, err
		}
		if want := opcodes.ArgCount(op); want >= 0 && len(args) != want {
			return nil, ippcerr.New(ippcerr.ErrMalformedProgram,
				"%s at order %d takes %d operand(s), got %d", op, order, want, len(args))
		}

		instructions = append(instructions, &Instruction{Order: order, Op: op, Args: args})
	}

	sort.Slice(instructions, func(i, j int) bool {
		return instructions[i].Order < instructions[j].Order
	})

	return &Program{Instructions: instructions}, nil
}

// buildArgs orders the arg1/arg2/arg3 children by their element name
// (independent of their order in the XML document, which the schema does
// not constrain) and constructs an Operand for each.
func buildArgs(raw []xmlArg) ([]*operand.Operand, error) {
	byName := make(map[string]xmlArg, len(raw))
	for _, a := range raw {
		byName[a.XMLName.Local] = a
	}

	var args []*operand.Operand
	for i := 1; i <= 3; i++ {
		name := "arg" + strconv.Itoa(i)
		a, ok := byName[name]
		if !ok {
			break
		}
		kind := operand.Kind(a.Type)
		switch kind {
		case operand.KindInt, operand.KindBool, operand.KindString,
			operand.KindLabel, operand.KindType, operand.KindVar:
		default:
			return nil, ippcerr.New(ippcerr.ErrMalformedProgram, "%s has unknown type %q", name, a.Type)
		}
		args = append(args, operand.New(kind, a.Text))
	}
	if len(args) != len(raw) {
		return nil, ippcerr.New(ippcerr.ErrMalformedProgram, "arguments must be named arg1/arg2/arg3 contiguously from 1")
	}
	return args, nil
}
