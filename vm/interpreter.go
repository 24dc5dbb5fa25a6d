// Package vm is the interpreter driver: it owns the frame store, the two
// auxiliary stacks, the label index and the program counter, and dispatches
// each instruction to its opcode semantics in program order.
package vm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"ipp18/frame"
	"ipp18/ippcerr"
	"ipp18/label"
	"ipp18/loader"
	"ipp18/opcodes"
	"ipp18/stacks"
)

// Interpreter holds all state for one program run. It is not safe for
// concurrent use: IPPcode18 execution is strictly single-threaded (the only
// suspension point is READ's blocking line read), so none of this state is
// guarded by locks.
type Interpreter struct {
	program *loader.Program
	byOrder map[int]int // instruction order -> index into program.Instructions
	minOrd  int
	maxOrd  int

	pc int

	frames *frame.Store
	calls  *stacks.CallStack
	values *stacks.ValueStack
	labels *label.Index

	stdin  *bufio.Reader
	stdout io.Writer
	stderr io.Writer
}

// New constructs an Interpreter for prog, reading READ input from stdin and
// writing WRITE/DPRINT/BREAK output to stdout/stderr respectively.
func New(prog *loader.Program, stdin io.Reader, stdout, stderr io.Writer) *Interpreter {
	byOrder := make(map[int]int, len(prog.Instructions))
	minOrd, maxOrd := 0, 0
	for i, inst := range prog.Instructions {
		byOrder[inst.Order] = i
		if i == 0 {
			minOrd = inst.Order
		}
		if inst.Order > maxOrd {
			maxOrd = inst.Order
		}
	}

	return &Interpreter{
		program: prog,
		byOrder: byOrder,
		minOrd:  minOrd,
		maxOrd:  maxOrd,
		frames:  frame.NewStore(),
		calls:   stacks.NewCallStack(),
		values:  stacks.NewValueStack(),
		labels:  label.NewIndex(),
		stdin:   bufio.NewReader(stdin),
		stdout:  stdout,
		stderr:  stderr,
	}
}

// NewStdio is a convenience constructor wiring the process's real stdio.
func NewStdio(prog *loader.Program) *Interpreter {
	return New(prog, os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the program to completion: it builds the label index in a
// pre-pass (so forward jumps resolve), then dispatches instructions in
// ascending ordinal order until the program counter runs past the highest
// ordinal or an instruction raises an error.
func (vm *Interpreter) Run() error {
	if len(vm.program.Instructions) == 0 {
		return nil
	}

	if err := vm.buildLabelIndex(); err != nil {
		return err
	}

	vm.pc = vm.minOrd
	for vm.pc <= vm.maxOrd {
		idx, ok := vm.byOrder[vm.pc]
		if !ok {
			return ippcerr.New(ippcerr.ErrMissingInstruction, "no instruction at order %d", vm.pc)
		}
		inst := vm.program.Instructions[idx]

		if inst.Op == opcodes.LABEL {
			vm.pc++
			continue
		}

		next, err := vm.execute(inst)
		if err != nil {
			return fmt.Errorf("instruction %s at order %d: %w", inst.Op, inst.Order, err)
		}
		vm.pc = next
	}
	return nil
}

// buildLabelIndex scans the program once, registering every LABEL at its
// ordinal. During the real run LABEL is executed again as a no-op.
func (vm *Interpreter) buildLabelIndex() error {
	for _, inst := range vm.program.Instructions {
		if inst.Op != opcodes.LABEL {
			continue
		}
		name, err := inst.Args[0].LabelName()
		if err != nil {
			return err
		}
		if err := vm.labels.Add(name, inst.Order); err != nil {
			return err
		}
	}
	return nil
}

// execute runs one instruction and returns the ordinal PC should advance to
// next: inst.Order+1 for a straight-line instruction, or the jump target's
// ordinal for a taken jump/CALL/RETURN (the driver does not re-add 1 after a
// jump; the target ordinal itself is what executes next).
func (vm *Interpreter) execute(inst *loader.Instruction) (int, error) {
	switch inst.Op {
	case opcodes.MOVE:
		return vm.execMove(inst)
	case opcodes.DEFVAR:
		return vm.execDefvar(inst)
	case opcodes.CREATEFRAME:
		return vm.execCreateFrame(inst)
	case opcodes.PUSHFRAME:
		return vm.execPushFrame(inst)
	case opcodes.POPFRAME:
		return vm.execPopFrame(inst)

	case opcodes.ADD, opcodes.SUB, opcodes.MUL, opcodes.IDIV:
		return vm.execArithmetic(inst)

	case opcodes.LT, opcodes.GT, opcodes.EQ:
		return vm.execComparison(inst)

	case opcodes.AND, opcodes.OR, opcodes.NOT:
		return vm.execLogic(inst)

	case opcodes.INT2CHAR:
		return vm.execInt2Char(inst)
	case opcodes.STRI2INT:
		return vm.execStri2Int(inst)

	case opcodes.CONCAT:
		return vm.execConcat(inst)
	case opcodes.STRLEN:
		return vm.execStrlen(inst)
	case opcodes.GETCHAR:
		return vm.execGetChar(inst)
	case opcodes.SETCHAR:
		return vm.execSetChar(inst)

	case opcodes.TYPE:
		return vm.execType(inst)

	case opcodes.WRITE:
		return vm.execWrite(inst)
	case opcodes.READ:
		return vm.execRead(inst)
	case opcodes.DPRINT:
		return vm.execDprint(inst)

	case opcodes.PUSHS:
		return vm.execPushs(inst)
	case opcodes.POPS:
		return vm.execPops(inst)

	case opcodes.JUMP:
		return vm.execJump(inst)
	case opcodes.JUMPIFEQ:
		return vm.execJumpIfEq(inst)
	case opcodes.JUMPIFNEQ:
		return vm.execJumpIfNeq(inst)
	case opcodes.CALL:
		return vm.execCall(inst)
	case opcodes.RETURN:
		return vm.execReturn(inst)

	case opcodes.BREAK:
		return vm.execBreak(inst)

	default:
		return 0, ippcerr.New(ippcerr.ErrUnknownOpcode, "%s has no execution semantics", inst.Op)
	}
}

// next is the common case: advance past the current instruction.
func (vm *Interpreter) next(inst *loader.Instruction) int {
	return inst.Order + 1
}
