package vm

import (
	"ipp18/ippcerr"
	"ipp18/loader"
	"ipp18/values"
)

// execConcat implements CONCAT R,op1,op2: both operands must be strings.
func (vm *Interpreter) execConcat(inst *loader.Instruction) (int, error) {
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
	if !a.IsString() || !b.IsString() {
		return 0, ippcerr.New(ippcerr.ErrTypeMismatch, "CONCAT requires two string operands")
	}
	d.Assign(values.NewString(a.Str + b.Str))
	return vm.next(inst), nil
}

// execStrlen implements STRLEN R,src: the rune count of src.
func (vm *Interpreter) execStrlen(inst *loader.Instruction) (int, error) {
	d, err := vm.dest(inst, 0)
	if err != nil {
		return 0, err
	}
	src, err := vm.val(inst, 1)
	if err != nil {
		return 0, err
	}
	if !src.IsString() {
		return 0, ippcerr.New(ippcerr.ErrTypeMismatch, "STRLEN requires a string operand")
	}
	d.Assign(values.NewInt(int64(len([]rune(src.Str)))))
	return vm.next(inst), nil
}

// execGetChar implements GETCHAR R,src,idx: the single rune at idx, as a
// one-rune string.
func (vm *Interpreter) execGetChar(inst *loader.Instruction) (int, error) {
	d, err := vm.dest(inst, 0)
	if err != nil {
		return 0, err
	}
	str, err := vm.val(inst, 1)
	if err != nil {
		return 0, err
	}
	idx, err := vm.val(inst, 2)
	if err != nil {
		return 0, err
	}
	if !str.IsString() || !idx.IsInt() {
		return 0, ippcerr.New(ippcerr.ErrTypeMismatch, "GETCHAR requires (string, int) operands")
	}
	runes := []rune(str.Str)
	if idx.Int < 0 || idx.Int >= int64(len(runes)) {
		return 0, ippcerr.New(ippcerr.ErrOutOfRange, "GETCHAR: index %d out of range for %q", idx.Int, str.Str)
	}
	d.Assign(values.NewString(string(runes[idx.Int])))
	return vm.next(inst), nil
}

// execSetChar implements SETCHAR R,idx,src: R must already hold a string.
// The rune at idx within R's current value is replaced with src's first
// rune, producing a new string that is written back to R — SETCHAR never
// mutates a string value in place, since Go strings are immutable and the
// interpreter's values are shared by clone, not by reference.
func (vm *Interpreter) execSetChar(inst *loader.Instruction) (int, error) {
	d, err := vm.dest(inst, 0)
	if err != nil {
		return 0, err
	}
	current, err := d.Read()
	if err != nil {
		return 0, err
	}
	idx, err := vm.val(inst, 1)
	if err != nil {
		return 0, err
	}
	src, err := vm.val(inst, 2)
	if err != nil {
		return 0, err
	}
	if !current.IsString() || !idx.IsInt() || !src.IsString() {
		return 0, ippcerr.New(ippcerr.ErrTypeMismatch, "SETCHAR requires R to hold a string and (int, string) operands")
	}
	if src.Str == "" {
		return 0, ippcerr.New(ippcerr.ErrOutOfRange, "SETCHAR: replacement string is empty")
	}
	runes := []rune(current.Str)
	if idx.Int < 0 || idx.Int >= int64(len(runes)) {
		return 0, ippcerr.New(ippcerr.ErrOutOfRange, "SETCHAR: index %d out of range for %q", idx.Int, current.Str)
	}
	runes[idx.Int] = []rune(src.Str)[0]
	d.Assign(values.NewString(string(runes)))
	return vm.next(inst), nil
}
