package bfvm

import "fmt"

// Error is implemented by every failure of loading or running a program.
// Position is an index into the filtered instruction sequence.
type Error interface {
	error
	Position() int
}

type UnmatchedCloseBracket struct {
	Index int
}

var _ Error = new(UnmatchedCloseBracket)

func (u *UnmatchedCloseBracket) Error() string {
	return fmt.Sprintf("unmatched ] at position %d", u.Index)
}

func (u *UnmatchedCloseBracket) Position() int {
	return u.Index
}

// UnmatchedOpenBracket reports the innermost loop start left open.
type UnmatchedOpenBracket struct {
	Index int
}

var _ Error = new(UnmatchedOpenBracket)

func (u *UnmatchedOpenBracket) Error() string {
	return fmt.Sprintf("unmatched [ at position %d", u.Index)
}

func (u *UnmatchedOpenBracket) Position() int {
	return u.Index
}

type PointerUnderflow struct {
	Index int
}

var _ Error = new(PointerUnderflow)

func (p *PointerUnderflow) Error() string {
	return fmt.Sprintf("pointer moved before start of tape at instruction %d", p.Index)
}

func (p *PointerUnderflow) Position() int {
	return p.Index
}

// InputError wraps a read failure other than end of input.
type InputError struct {
	Index int
	Err   error
}

var _ Error = new(InputError)

func (i *InputError) Error() string {
	return fmt.Sprintf("read input at instruction %d: %v", i.Index, i.Err)
}

func (i *InputError) Unwrap() error {
	return i.Err
}

func (i *InputError) Position() int {
	return i.Index
}
