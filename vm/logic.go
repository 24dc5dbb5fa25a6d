package vm

import (
	"ipp18/ippcerr"
	"ipp18/loader"
	"ipp18/opcodes"
	"ipp18/values"
)

// execLogic implements AND/OR R,op1,op2 and NOT R,op1: all operands must be
// bool.
func (vm *Interpreter) execLogic(inst *loader.Instruction) (int, error) {
	d, err := vm.dest(inst, 0)
	if err != nil {
		return 0, err
	}
	a, err := vm.val(inst, 1)
	if err != nil {
		return 0, err
	}
	if !a.IsBool() {
		return 0, ippcerr.New(ippcerr.ErrTypeMismatch, "%s requires bool operands", inst.Op)
	}

	if inst.Op == opcodes.NOT {
		d.Assign(values.NewBool(!a.Bool))
		return vm.next(inst), nil
	}

	b, err := vm.val(inst, 2)
	if err != nil {
		return 0, err
	}
	if !b.IsBool() {
		return 0, ippcerr.New(ippcerr.ErrTypeMismatch, "%s requires bool operands", inst.Op)
	}

	var result bool
	switch inst.Op {
	case opcodes.AND:
		result = a.Bool && b.Bool
	case opcodes.OR:
		result = a.Bool || b.Bool
	}

	d.Assign(values.NewBool(result))
	return vm.next(inst), nil
}
