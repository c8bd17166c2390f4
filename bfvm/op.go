package bfvm

// Op is one program symbol. Symbols outside the instruction set are kept as
// is in strict programs and fault when executed.
type Op rune

const (
	OpRight Op = '>'
	OpLeft  Op = '<'
	OpInc   Op = '+'
	OpDec   Op = '-'
	OpOut   Op = '.'
	OpIn    Op = ','
	OpOpen  Op = '['
	OpClose Op = ']'
)

func (o Op) Valid() bool {
	switch o {
	case OpRight, OpLeft, OpInc, OpDec, OpOut, OpIn, OpOpen, OpClose:
		return true
	}
	return false
}

func (o Op) String() string {
	return string(o)
}
