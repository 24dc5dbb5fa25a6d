package vm

import (
	"ipp18/ippcerr"
	"ipp18/loader"
	"ipp18/values"
)

// execJump implements JUMP label: unconditionally resolve label and
// transfer control there.
func (vm *Interpreter) execJump(inst *loader.Instruction) (int, error) {
	name, err := inst.Args[0].LabelName()
	if err != nil {
		return 0, err
	}
	return vm.labels.Resolve(name)
}

// execJumpIfEq implements JUMPIFEQ label,op1,op2: jump when op1 equals op2.
// Both operands must share the same comparable type.
func (vm *Interpreter) execJumpIfEq(inst *loader.Instruction) (int, error) {
	return vm.condJump(inst, true)
}

// execJumpIfNeq implements JUMPIFNEQ label,op1,op2: jump when op1 differs
// from op2.
func (vm *Interpreter) execJumpIfNeq(inst *loader.Instruction) (int, error) {
	return vm.condJump(inst, false)
}

func (vm *Interpreter) condJump(inst *loader.Instruction, wantEqual bool) (int, error) {
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
	if a.Equal(b) != wantEqual {
		return vm.next(inst), nil
	}
	name, err := inst.Args[0].LabelName()
	if err != nil {
		return 0, err
	}
	return vm.labels.Resolve(name)
}

// execCall implements CALL label: push the ordinal following this
// instruction onto the call stack, then transfer control to label.
func (vm *Interpreter) execCall(inst *loader.Instruction) (int, error) {
	name, err := inst.Args[0].LabelName()
	if err != nil {
		return 0, err
	}
	target, err := vm.labels.Resolve(name)
	if err != nil {
		return 0, err
	}
	vm.calls.Push(vm.next(inst))
	return target, nil
}

// execReturn implements RETURN: pop the call stack and resume at the
// recorded ordinal. An unbalanced RETURN fails with ippcerr.ErrEmptyStack.
func (vm *Interpreter) execReturn(inst *loader.Instruction) (int, error) {
	return vm.calls.Pop()
}
