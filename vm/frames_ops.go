package vm

import "ipp18/loader"

// execMove implements MOVE R,src: copy src's type and value into R.
func (vm *Interpreter) execMove(inst *loader.Instruction) (int, error) {
	d, err := vm.dest(inst, 0)
	if err != nil {
		return 0, err
	}
	v, err := vm.val(inst, 1)
	if err != nil {
		return 0, err
	}
	d.Assign(v)
	return vm.next(inst), nil
}

// execDefvar implements DEFVAR R: declare R as uninitialized in its frame.
func (vm *Interpreter) execDefvar(inst *loader.Instruction) (int, error) {
	tag, name, err := inst.Args[0].FrameTagAndName()
	if err != nil {
		return 0, err
	}
	if _, err := vm.frames.DefVar(tag, name); err != nil {
		return 0, err
	}
	return vm.next(inst), nil
}

// execCreateFrame implements CREATEFRAME: install a fresh, empty TF.
func (vm *Interpreter) execCreateFrame(inst *loader.Instruction) (int, error) {
	vm.frames.CreateTempFrame()
	return vm.next(inst), nil
}

// execPushFrame implements PUSHFRAME: TF becomes the new LF.
func (vm *Interpreter) execPushFrame(inst *loader.Instruction) (int, error) {
	if err := vm.frames.PushFrame(); err != nil {
		return 0, err
	}
	return vm.next(inst), nil
}

// execPopFrame implements POPFRAME: the current LF becomes TF.
func (vm *Interpreter) execPopFrame(inst *loader.Instruction) (int, error) {
	if err := vm.frames.PopFrame(); err != nil {
		return 0, err
	}
	return vm.next(inst), nil
}
