package bfvm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/reusee/taibf/logs"
)

// cancelCheckInterval is the number of steps between context checks.
const cancelCheckInterval = 4096

type Config struct {
	Permissive bool
	JumpTable  bool
	// 0 means unlimited
	MaxSteps int
	MaxCells int
}

// Engine holds configuration only. Every Exec builds its own machine, so an
// Engine may serve concurrent runs.
type Engine struct {
	config Config
	logger logs.Logger
}

func New(config Config, logger logs.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		config: config,
		logger: logger,
	}
}

func (e *Engine) Config() Config {
	return e.config
}

// Load loads source with the engine's loader settings.
func (e *Engine) Load(source string, options ...LoadOption) (*Program, error) {
	if e.config.Permissive {
		options = append(options, Permissive())
	}
	if e.config.JumpTable {
		options = append(options, WithJumpTable())
	}
	return Load(source, options...)
}

// Run loads and executes source, returning the whole output. Output of a
// failed run is discarded.
func (e *Engine) Run(ctx context.Context, source string, input ByteSource) (string, error) {
	program, err := e.Load(source)
	if err != nil {
		return "", err
	}
	result, err := e.Exec(ctx, program, input, nil)
	if err != nil {
		return "", err
	}
	return string(result.Output), nil
}

type Result struct {
	Output  []byte
	Steps   int
	Pointer int
	// Cells holds the allocated tape cells, Cells[0] being cell Origin.
	Origin int
	Cells  []byte
}

// Cell returns the value of tape cell i after the run.
func (r *Result) Cell(i int) byte {
	j := i - r.Origin
	if j < 0 || j >= len(r.Cells) {
		return 0
	}
	return r.Cells[j]
}

type machine struct {
	program *Program
	input   ByteSource
	sink    ByteSink

	tape   *Tape
	ip     int
	dp     int
	stack  []int
	output []byte
	steps  int
}

// Exec runs program until the instruction pointer passes its end. sink may
// be nil; when set, it receives every output byte as it is produced.
func (e *Engine) Exec(ctx context.Context, program *Program, input ByteSource, sink ByteSink) (*Result, error) {
	m := &machine{
		program: program,
		input:   input,
		sink:    sink,
		tape:    NewTape(e.config.MaxCells),
	}

	if err := e.exec(ctx, m); err != nil {
		e.logger.WarnContext(ctx, "run faulted",
			"error", err,
			"steps", m.steps,
		)
		return nil, err
	}

	result := &Result{
		Output:  m.output,
		Steps:   m.steps,
		Pointer: m.dp,
	}
	result.Origin, result.Cells = m.tape.Snapshot()
	e.logger.DebugContext(ctx, "run halted",
		"instructions", program.Len(),
		"steps", m.steps,
		"output", len(m.output),
	)
	return result, nil
}

func (e *Engine) exec(ctx context.Context, m *machine) error {
	ops := m.program.ops
	for m.ip < len(ops) {
		if e.config.MaxSteps > 0 && m.steps >= e.config.MaxSteps {
			return m.fault(ErrStepLimit)
		}
		if m.steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return m.fault(err)
			}
		}
		m.steps++

		switch ops[m.ip] {

		case OpRight:
			m.dp++

		case OpLeft:
			m.dp--

		case OpInc:
			cell, err := m.tape.Cell(m.dp)
			if err != nil {
				return m.fault(err)
			}
			*cell++

		case OpDec:
			cell, err := m.tape.Cell(m.dp)
			if err != nil {
				return m.fault(err)
			}
			*cell--

		case OpOut:
			b := m.tape.Get(m.dp)
			m.output = append(m.output, b)
			if m.sink != nil {
				if err := m.sink.EmitByte(b); err != nil {
					return m.fault(fmt.Errorf("emit: %w", err))
				}
			}

		case OpIn:
			if err := ctx.Err(); err != nil {
				return m.fault(err)
			}
			b, err := m.read()
			if err != nil {
				return m.fault(err)
			}
			cell, err := m.tape.Cell(m.dp)
			if err != nil {
				return m.fault(err)
			}
			*cell = b

		case OpOpen:
			if m.tape.Get(m.dp) != 0 {
				m.stack = append(m.stack, m.ip)
				break
			}
			target, err := m.forward()
			if err != nil {
				return m.fault(err)
			}
			m.ip = target

		case OpClose:
			if m.tape.Get(m.dp) == 0 {
				if len(m.stack) > 0 {
					m.stack = m.stack[:len(m.stack)-1]
				}
				break
			}
			target, err := matchBackward(m.stack)
			if err != nil {
				return m.fault(err)
			}
			m.ip = target

		default:
			return m.fault(ErrInvalidInstruction)
		}

		m.ip++
	}
	return nil
}

func (m *machine) forward() (int, error) {
	if m.program.forward == nil {
		return matchForward(m.program.ops, m.ip, len(m.stack))
	}
	if target := m.program.forward[m.ip]; target >= 0 {
		return target, nil
	}
	return 0, ErrUnmatchedBracket
}

func (m *machine) read() (byte, error) {
	if m.input == nil {
		return 0, ErrInputExhausted
	}
	b, err := m.input.NextByte()
	if errors.Is(err, io.EOF) {
		return 0, ErrInputExhausted
	} else if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInputExhausted, err)
	}
	return b, nil
}

func (m *machine) fault(err error) error {
	return &Fault{
		Err:    err,
		Index:  m.ip,
		Symbol: m.program.ops[m.ip],
		Pos:    m.program.pos[m.ip],
	}
}
