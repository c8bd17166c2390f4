package bfvm

import (
	"errors"
	"fmt"
	"testing"
)

func ops(source string) []Op {
	ret := make([]Op, 0, len(source))
	for _, r := range source {
		ret = append(ret, Op(r))
	}
	return ret
}

func TestMatchForward(t *testing.T) {
	cases := []struct {
		source string
		from   int
		depth  int
		target int
	}{
		{"[]", 0, 0, 1},
		{"[[]]", 0, 0, 3},
		{"[[]]", 1, 0, 2},
		// depth is relative
		{"[[]]", 1, 5, 2},
		{"+[->[-]<]", 1, 0, 8},
		{"+[->[-]<]", 4, 1, 6},
	}
	for _, c := range cases {
		target, err := matchForward(ops(c.source), c.from, c.depth)
		if err != nil {
			t.Fatal(err)
		}
		if target != c.target {
			t.Fatalf("%s %d: got %v", c.source, c.from, target)
		}
	}

	if _, err := matchForward(ops("[[]"), 0, 0); !errors.Is(err, ErrUnmatchedBracket) {
		t.Fatalf("got %v", err)
	}
}

func TestMatchBackward(t *testing.T) {
	if _, err := matchBackward(nil); !errors.Is(err, ErrUnmatchedBracket) {
		t.Fatalf("got %v", err)
	}
	target, err := matchBackward([]int{0, 4})
	if err != nil {
		t.Fatal(err)
	}
	if target != 4 {
		t.Fatalf("got %v", target)
	}
	// index 0 is a valid target
	target, err = matchBackward([]int{0})
	if err != nil {
		t.Fatal(err)
	}
	if target != 0 {
		t.Fatalf("got %v", target)
	}
}

func TestJumpTable(t *testing.T) {
	cases := map[string]string{
		"[]":        "[1 -1]",
		"+[->[-]<]": "[-1 8 -1 -1 6 -1 -1 -1 -1]",
		"][":        "[-1 -1]",
		"[]][":      "[1 -1 -1 -1]",
	}
	for source, expected := range cases {
		table := buildJumpTable(ops(source))
		if str := fmt.Sprintf("%v", table); str != expected {
			t.Fatalf("%s: got %s", source, str)
		}
		// agrees with the scan
		for i, target := range table {
			if target < 0 {
				continue
			}
			scanned, err := matchForward(ops(source), i, 0)
			if err != nil {
				t.Fatal(err)
			}
			if scanned != target {
				t.Fatalf("%s: %d: got %v", source, i, scanned)
			}
		}
	}
}
