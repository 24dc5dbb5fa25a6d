package vm

import (
	"ipp18/loader"
	"ipp18/values"
)

// execType implements TYPE R,src: the textual name of src's type, or the
// empty string if src is an uninitialized variable. Unlike every other
// opcode, reading an uninitialized source here is not an error.
func (vm *Interpreter) execType(inst *loader.Instruction) (int, error) {
	d, err := vm.dest(inst, 0)
	if err != nil {
		return 0, err
	}
	v, err := vm.src(inst, 1)
	if err != nil {
		return 0, err
	}
	d.Assign(values.NewString(v.TypeName()))
	return vm.next(inst), nil
}
