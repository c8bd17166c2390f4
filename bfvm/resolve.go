package bfvm

// matchForward returns the index of the ']' closing the '[' at from.
// depth is the loop stack depth when the '[' is reached.
func matchForward(ops []Op, from int, depth int) (int, error) {
	level := depth
	for i := from; i < len(ops); i++ {
		switch ops[i] {
		case OpOpen:
			level++
		case OpClose:
			level--
		}
		if level == depth {
			return i, nil
		}
	}
	return 0, ErrUnmatchedBracket
}

// matchBackward returns the '[' of the innermost entered loop.
func matchBackward(stack []int) (int, error) {
	if len(stack) == 0 {
		return 0, ErrUnmatchedBracket
	}
	return stack[len(stack)-1], nil
}

// buildJumpTable pairs brackets the same way matchForward does. A stray ']'
// with no open loop is skipped, it never closes a later '['.
func buildJumpTable(ops []Op) []int {
	forward := make([]int, len(ops))
	var opens []int
	for i, op := range ops {
		forward[i] = -1
		switch op {
		case OpOpen:
			opens = append(opens, i)
		case OpClose:
			if len(opens) > 0 {
				forward[opens[len(opens)-1]] = i
				opens = opens[:len(opens)-1]
			}
		}
	}
	return forward
}
