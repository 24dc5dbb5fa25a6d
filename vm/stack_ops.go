package vm

import "ipp18/loader"

// execPushs implements PUSHS src: push a copy of src's value onto the value
// stack.
func (vm *Interpreter) execPushs(inst *loader.Instruction) (int, error) {
	v, err := vm.val(inst, 0)
	if err != nil {
		return 0, err
	}
	vm.values.Push(v)
	return vm.next(inst), nil
}

// execPops implements POPS R: pop the top of the value stack and write it
// into R.
func (vm *Interpreter) execPops(inst *loader.Instruction) (int, error) {
	d, err := vm.dest(inst, 0)
	if err != nil {
		return 0, err
	}
	v, err := vm.values.Pop()
	if err != nil {
		return 0, err
	}
	d.Assign(v)
	return vm.next(inst), nil
}
