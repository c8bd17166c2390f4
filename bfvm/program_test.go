package bfvm

import (
	"errors"
	"testing"
)

func TestLoad(t *testing.T) {
	program, err := Load("+[-]>.")
	if err != nil {
		t.Fatal(err)
	}
	if program.Len() != 6 {
		t.Fatalf("got %v", program.Len())
	}
	if program.At(1) != OpOpen {
		t.Fatalf("got %v", program.At(1))
	}
	if program.String() != "+[-]>." {
		t.Fatalf("got %v", program.String())
	}
	if program.forward != nil {
		t.Fatal()
	}
}

func TestLoadStrictKeepsEverything(t *testing.T) {
	program, err := Load("a+ é\n")
	if err != nil {
		t.Fatal(err)
	}
	// one symbol per rune
	if program.Len() != 5 {
		t.Fatalf("got %v", program.Len())
	}
	if program.At(3) != 'é' {
		t.Fatalf("got %v", program.At(3))
	}
	if program.At(0).Valid() || !program.At(1).Valid() {
		t.Fatal()
	}
}

func TestLoadPermissive(t *testing.T) {
	program, err := Load("add two: ++\nprint it: .", Permissive())
	if err != nil {
		t.Fatal(err)
	}
	if program.String() != "++." {
		t.Fatalf("got %v", program.String())
	}
	if pos := program.pos[2]; pos.Line != 2 || pos.Column != 11 {
		t.Fatalf("got %v", pos)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); !errors.Is(err, ErrEmptyProgram) {
		t.Fatalf("got %v", err)
	}
	if _, err := Load("[[", Permissive()); !errors.Is(err, ErrUnbalancedLoop) {
		t.Fatalf("got %v", err)
	}
	// counts balance, nesting does not
	if _, err := Load("]["); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFilename(t *testing.T) {
	_, err := New(Config{}, nil).Run(t.Context(), "+?", nil)
	if err == nil {
		t.Fatal("should error")
	}

	engine := New(Config{}, nil)
	program, err := engine.Load("+?", Filename("hello.b"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = engine.Exec(t.Context(), program, nil, nil)
	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatalf("got %v", err)
	}
	if fault.Pos.Filename != "hello.b" {
		t.Fatalf("got %v", fault.Pos)
	}
	if fault.Error() != `invalid instruction: "?" at hello.b:1:2 (instruction 1)` {
		t.Fatalf("got %v", fault.Error())
	}
}
