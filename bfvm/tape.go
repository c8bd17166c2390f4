package bfvm

import "slices"

// Tape is a byte tape unbounded in both directions. Cell i >= 0 lives in
// right[i], cell i < 0 lives in left[-i-1]. Unwritten cells read as zero.
type Tape struct {
	right    []byte
	left     []byte
	maxCells int
}

func NewTape(maxCells int) *Tape {
	return &Tape{
		maxCells: maxCells,
	}
}

func (t *Tape) Get(i int) byte {
	if i >= 0 {
		if i < len(t.right) {
			return t.right[i]
		}
		return 0
	}
	if j := -i - 1; j < len(t.left) {
		return t.left[j]
	}
	return 0
}

// Cell returns the storage of cell i, growing the tape if needed.
func (t *Tape) Cell(i int) (*byte, error) {
	half, j := &t.right, i
	if i < 0 {
		half, j = &t.left, -i-1
	}
	if j >= len(*half) {
		grow := j + 1 - len(*half)
		if t.maxCells > 0 && t.Len()+grow > t.maxCells {
			return nil, ErrTapeLimit
		}
		*half = append(*half, make([]byte, grow)...)
	}
	return &(*half)[j], nil
}

// Len returns the number of allocated cells.
func (t *Tape) Len() int {
	return len(t.right) + len(t.left)
}

// Snapshot copies the allocated cells in index order and returns them with
// the index of the first one.
func (t *Tape) Snapshot() (origin int, cells []byte) {
	cells = make([]byte, 0, t.Len())
	for j := len(t.left) - 1; j >= 0; j-- {
		cells = append(cells, t.left[j])
	}
	cells = append(cells, t.right...)
	return -len(t.left), slices.Clip(cells)
}
