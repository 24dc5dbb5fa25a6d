package vm

import (
	"ipp18/frame"
	"ipp18/loader"
	"ipp18/values"
)

// dest resolves operand i of inst as the destination variable: it must be a
// `var` operand, looked up (not declared) in its frame.
func (vm *Interpreter) dest(inst *loader.Instruction, i int) (*frame.Variable, error) {
	tag, name, err := inst.Args[i].FrameTagAndName()
	if err != nil {
		return nil, err
	}
	return vm.frames.GetVar(tag, name)
}

// val resolves operand i of inst to its (type, value) pair, failing with
// ippcerr.ErrUninitialized if it names a variable that was never assigned.
func (vm *Interpreter) val(inst *loader.Instruction, i int) (*values.Value, error) {
	return inst.Args[i].Value(vm.frames)
}

// src resolves operand i of inst to its backing Variable without requiring
// it be initialized; TYPE is the only opcode that needs this, since reading
// an uninitialized source there yields "" rather than an error.
func (vm *Interpreter) src(inst *loader.Instruction, i int) (*frame.Variable, error) {
	return inst.Args[i].Variable(vm.frames)
}
