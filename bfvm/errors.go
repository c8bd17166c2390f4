package bfvm

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ErrEmptyProgram       = errors.New("empty program")
	ErrUnbalancedLoop     = errors.New("unbalanced loop")
	ErrUnmatchedBracket   = errors.New("unmatched bracket")
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrInputExhausted     = errors.New("input exhausted")
	ErrStepLimit          = errors.New("step limit exceeded")
	ErrTapeLimit          = errors.New("tape limit exceeded")
)

// Fault is the error of a run that stopped before the end of the program.
type Fault struct {
	Err    error
	Index  int
	Symbol Op
	Pos    lexer.Position
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%v: %q at %v (instruction %d)", f.Err, f.Symbol, f.Pos, f.Index)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
