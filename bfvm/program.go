package bfvm

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/samber/lo"
)

var sourceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Instruction", Pattern: `[<>+\-.,\[\]]`},
	{Name: "Other", Pattern: `[^<>+\-.,\[\]]`},
})

var otherToken = sourceLexer.Symbols()["Other"]

// Program is a loaded instruction sequence. It is never modified after Load
// returns, so one Program may be executed by any number of runs.
type Program struct {
	ops []Op
	pos []lexer.Position

	// forward[i] is the matching ']' of the '[' at i, or -1.
	// nil when the jump table is disabled.
	forward []int
}

type loadOptions struct {
	filename   string
	permissive bool
	jumpTable  bool
}

type LoadOption func(*loadOptions)

// Permissive drops every non-instruction rune as a comment.
func Permissive() LoadOption {
	return func(o *loadOptions) {
		o.permissive = true
	}
}

// WithJumpTable precomputes forward jump targets.
func WithJumpTable() LoadOption {
	return func(o *loadOptions) {
		o.jumpTable = true
	}
}

// Filename sets the file name reported in fault positions.
func Filename(name string) LoadOption {
	return func(o *loadOptions) {
		o.filename = name
	}
}

func Load(source string, options ...LoadOption) (*Program, error) {
	var opts loadOptions
	for _, option := range options {
		option(&opts)
	}

	lex, err := sourceLexer.Lex(opts.filename, strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	program := new(Program)
	for _, token := range tokens {
		if token.EOF() {
			break
		}
		if opts.permissive && token.Type == otherToken {
			continue
		}
		r, _ := utf8.DecodeRuneInString(token.Value)
		program.ops = append(program.ops, Op(r))
		program.pos = append(program.pos, token.Pos)
	}

	if len(program.ops) == 0 {
		return nil, ErrEmptyProgram
	}

	// counts only; nesting errors surface when the offending jump executes
	opens := lo.Count(program.ops, OpOpen)
	closes := lo.Count(program.ops, OpClose)
	if opens != closes {
		return nil, fmt.Errorf("%w: %d '[' and %d ']'", ErrUnbalancedLoop, opens, closes)
	}

	if opts.jumpTable {
		program.forward = buildJumpTable(program.ops)
	}

	return program, nil
}

func (p *Program) Len() int {
	return len(p.ops)
}

func (p *Program) At(i int) Op {
	return p.ops[i]
}

func (p *Program) String() string {
	var b strings.Builder
	for _, op := range p.ops {
		b.WriteRune(rune(op))
	}
	return b.String()
}
