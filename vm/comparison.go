package vm

import (
	"ipp18/ippcerr"
	"ipp18/loader"
	"ipp18/opcodes"
	"ipp18/values"
)

// execComparison implements LT/GT/EQ R,op1,op2: both operands must share the
// same comparable primitive type (int/bool/string).
func (vm *Interpreter) execComparison(inst *loader.Instruction) (int, error) {
	d, err := vm.dest(inst, 0)
	if err != nil {
		return 0, err
	}
	a, err := vm.val(inst, 1)
	if err != nil {
		return 0, err
	}
	b, err := vm.val(inst, 2)
	if err != nil {
		return 0, err
	}
	if !a.SameType(b) || a.Type == values.TypeLabel || a.Type == values.TypeNil {
		return 0, ippcerr.New(ippcerr.ErrTypeMismatch, "%s requires two operands of the same comparable type", inst.Op)
	}

	var result bool
	switch inst.Op {
	case opcodes.LT:
		result = a.Less(b)
	case opcodes.GT:
		result = b.Less(a)
	case opcodes.EQ:
		result = a.Equal(b)
	}

	d.Assign(values.NewBool(result))
	return vm.next(inst), nil
}
