package vm

import (
	"ipp18/ippcerr"
	"ipp18/loader"
	"ipp18/opcodes"
	"ipp18/values"
)

// execArithmetic implements ADD/SUB/MUL/IDIV R,op1,op2: both operands must be
// int, and IDIV's divisor must be nonzero.
func (vm *Interpreter) execArithmetic(inst *loader.Instruction) (int, error) {
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
	if !a.IsInt() || !b.IsInt() {
		return 0, ippcerr.New(ippcerr.ErrTypeMismatch, "%s requires two int operands", inst.Op)
	}

	var result int64
	switch inst.Op {
	case opcodes.ADD:
		result = a.Int + b.Int
	case opcodes.SUB:
		result = a.Int - b.Int
	case opcodes.MUL:
		result = a.Int * b.Int
	case opcodes.IDIV:
		if b.Int == 0 {
			return 0, ippcerr.New(ippcerr.ErrDivisionByZero, "IDIV by zero")
		}
		result = a.Int / b.Int
	}

	d.Assign(values.NewInt(result))
	return vm.next(inst), nil
}
