package vm

import (
	"fmt"

	"ipp18/loader"
)

// execBreak implements BREAK: dump the current program counter, frame
// state and auxiliary stack depths to stderr without altering execution.
func (vm *Interpreter) execBreak(inst *loader.Instruction) (int, error) {
	fmt.Fprintf(vm.stderr, "BREAK at order %d\n", inst.Order)
	fmt.Fprintf(vm.stderr, "  GF: %v\n", vm.frames.Global().Names())
	fmt.Fprintf(vm.stderr, "  TF defined: %v\n", vm.frames.HasTemp())
	fmt.Fprintf(vm.stderr, "  frame stack depth: %d\n", vm.frames.Depth())
	fmt.Fprintf(vm.stderr, "  call stack depth: %d\n", vm.calls.Depth())
	fmt.Fprintf(vm.stderr, "  value stack depth: %d\n", vm.values.Depth())
	return vm.next(inst), nil
}
