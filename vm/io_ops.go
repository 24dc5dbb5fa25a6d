package vm

import (
	"fmt"
	"strconv"
	"strings"

	"ipp18/ippcerr"
	"ipp18/loader"
	"ipp18/values"
)

// execWrite implements WRITE src: render src's canonical text to stdout,
// followed by a newline.
func (vm *Interpreter) execWrite(inst *loader.Instruction) (int, error) {
	v, err := vm.val(inst, 0)
	if err != nil {
		return 0, err
	}
	fmt.Fprintln(vm.stdout, v.Render())
	return vm.next(inst), nil
}

// execDprint implements DPRINT src: render src's canonical text to stderr,
// for tracing a program without disturbing its real output.
func (vm *Interpreter) execDprint(inst *loader.Instruction) (int, error) {
	v, err := vm.val(inst, 0)
	if err != nil {
		return 0, err
	}
	fmt.Fprint(vm.stderr, v.Render())
	return vm.next(inst), nil
}

// execRead implements READ R,type: read one line of stdin and parse it as
// type names. A malformed or absent line never aborts the program: int
// defaults to 0, bool to false (only a case-insensitive "true" line counts
// as true), string to "".
func (vm *Interpreter) execRead(inst *loader.Instruction) (int, error) {
	d, err := vm.dest(inst, 0)
	if err != nil {
		return 0, err
	}
	typeTag, err := vm.val(inst, 1)
	if err != nil {
		return 0, err
	}
	if typeTag.Type != values.TypeNil {
		return 0, ippcerr.New(ippcerr.ErrTypeMismatch, "READ's second operand must be a type literal")
	}

	line, readErr := vm.stdin.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	hadLine := readErr == nil || line != ""

	switch typeTag.Str {
	case "int":
		n, err := strconv.ParseInt(line, 10, 64)
		if !hadLine || err != nil {
			n = 0
		}
		d.Assign(values.NewInt(n))
	case "bool":
		d.Assign(values.NewBool(hadLine && strings.EqualFold(line, "true")))
	case "string":
		if !hadLine {
			line = ""
		}
		d.Assign(values.NewString(line))
	default:
		return 0, ippcerr.New(ippcerr.ErrTypeMismatch, "READ: unknown type literal %q", typeTag.Str)
	}
	return vm.next(inst), nil
}
