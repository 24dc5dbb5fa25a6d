// Package label implements the IPPcode18 label index: the mapping from
// label name to instruction ordinal that backs JUMP, CALL and their
// conditional variants. The index is built by a pre-pass over the program
// before execution begins, so forward jumps resolve correctly.
package label

import "ipp18/ippcerr"

// Index maps label names to the 1-based ordinal of the instruction that
// declares them.
type Index struct {
	ordinals map[string]int
}

// NewIndex creates an empty label index.
func NewIndex() *Index {
	return &Index{ordinals: make(map[string]int)}
}

// Add registers name at ordinal, failing with ippcerr.ErrDuplicateLabel if
// the name was already registered.
func (idx *Index) Add(name string, ordinal int) error {
	if _, exists := idx.ordinals[name]; exists {
		return ippcerr.New(ippcerr.ErrDuplicateLabel, "label %q declared more than once", name)
	}
	idx.ordinals[name] = ordinal
	return nil
}

// Resolve returns the ordinal registered for name, failing with
// ippcerr.ErrUndefinedLabel if it was never declared.
func (idx *Index) Resolve(name string) (int, error) {
	ordinal, ok := idx.ordinals[name]
	if !ok {
		return 0, ippcerr.New(ippcerr.ErrUndefinedLabel, "jump target %q is not declared", name)
	}
	return ordinal, nil
}
