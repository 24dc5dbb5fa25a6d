// Package stacks implements IPPcode18's two auxiliary LIFOs: the call stack
// of return ordinals used by CALL/RETURN, and the value stack of typed
// Values used by PUSHS/POPS.
package stacks

import (
	"ipp18/ippcerr"
	"ipp18/values"
)

// CallStack is a LIFO of instruction ordinals recording where CALL should
// return to.
type CallStack struct {
	ordinals []int
}

// NewCallStack creates an empty call stack.
func NewCallStack() *CallStack {
	return &CallStack{}
}

// Push records the ordinal CALL should return to.
func (c *CallStack) Push(ordinal int) {
	c.ordinals = append(c.ordinals, ordinal)
}

// Pop removes and returns the most recently pushed ordinal, failing with
// ippcerr.ErrEmptyStack on an unbalanced RETURN.
func (c *CallStack) Pop() (int, error) {
	if len(c.ordinals) == 0 {
		return 0, ippcerr.New(ippcerr.ErrEmptyStack, "RETURN with no matching CALL")
	}
	top := len(c.ordinals) - 1
	ordinal := c.ordinals[top]
	c.ordinals = c.ordinals[:top]
	return ordinal, nil
}

// Depth reports the current call nesting, for BREAK's diagnostic dump.
func (c *CallStack) Depth() int { return len(c.ordinals) }

// ValueStack is a LIFO of typed Values backing PUSHS/POPS.
type ValueStack struct {
	values []*values.Value
}

// NewValueStack creates an empty value stack.
func NewValueStack() *ValueStack {
	return &ValueStack{}
}

// Push stores a copy of v on top of the stack.
func (s *ValueStack) Push(v *values.Value) {
	s.values = append(s.values, v.Clone())
}

// Pop removes and returns the top value, failing with
// ippcerr.ErrEmptyStack if the stack is empty.
func (s *ValueStack) Pop() (*values.Value, error) {
	if len(s.values) == 0 {
		return nil, ippcerr.New(ippcerr.ErrEmptyStack, "POPS on an empty value stack")
	}
	top := len(s.values) - 1
	v := s.values[top]
	s.values = s.values[:top]
	return v, nil
}

// Depth reports the current stack size, for BREAK's diagnostic dump.
func (s *ValueStack) Depth() int { return len(s.values) }
