package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfscript"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/modes"
)

func TestModule(t *testing.T) {
	output := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() bfscript.Output {
			return output
		},
	).Call(func(
		engine *bfvm.Engine,
		script bfscript.Script,
	) {
		out, err := engine.Run(t.Context(), "++++++++[>++++++++<-]>+.", nil)
		if err != nil {
			t.Fatal(err)
		}
		if out != "A" {
			t.Fatalf("got %q", out)
		}

		if _, err := script(t.Context(), "main.star", `print(taibf.run("++++++++[>++++++++<-]>++."))`); err != nil {
			t.Fatal(err)
		}
		if output.String() != "B\n" {
			t.Fatalf("got %q", output.String())
		}
	})
}

func TestFlushWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	w := bufio.NewWriter(buf)
	w.WriteString("out")
	if _, err := (flushWriter{w}).Write([]byte("? ")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "out? " {
		t.Fatalf("got %q", buf.String())
	}
}

func TestLoadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.b")
	if err := os.WriteFile(path, []byte("+++.\r\n\n"), 0644); err != nil {
		t.Fatal(err)
	}

	source, filename, err := loadSource(path, "ignored")
	if err != nil {
		t.Fatal(err)
	}
	if source != "+++." {
		t.Fatalf("got %q", source)
	}
	if filename != path {
		t.Fatalf("got %q", filename)
	}

	source, filename, err = loadSource("", "-.")
	if err != nil {
		t.Fatal(err)
	}
	if source != "-." || filename != "" {
		t.Fatalf("got %q %q", source, filename)
	}

	if _, _, err := loadSource(filepath.Join(t.TempDir(), "missing.b"), ""); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

func TestInputSource(t *testing.T) {
	piped := filepath.Join(t.TempDir(), "stdin")
	if err := os.WriteFile(piped, []byte("xy"), 0644); err != nil {
		t.Fatal(err)
	}

	scripted := "A"
	for _, c := range []struct {
		name   string
		input  *string
		stdin  string
		first  byte
		err    error
		prompt string
	}{
		{"scripted", &scripted, piped, 'A', nil, ""},
		{"empty scripted", new(string), piped, 0, io.EOF, ""},
		{"piped", nil, piped, 'x', nil, ""},
		// a character device reads as a terminal
		{"terminal", nil, os.DevNull, 0, io.EOF, "byte? "},
	} {
		t.Run(c.name, func(t *testing.T) {
			stdin, err := os.Open(c.stdin)
			if err != nil {
				t.Fatal(err)
			}
			defer stdin.Close()

			out := new(bytes.Buffer)
			source := inputSource(c.input, stdin, "byte? ", out)
			b, err := source.NextByte()
			if !errors.Is(err, c.err) {
				t.Fatalf("got %v", err)
			}
			if b != c.first {
				t.Fatalf("got %q", b)
			}
			if out.String() != c.prompt {
				t.Fatalf("got %q", out.String())
			}
		})
	}
}

func TestRun(t *testing.T) {
	engine := bfvm.New(bfvm.Config{}, nil)

	out := new(bytes.Buffer)
	if err := run(t.Context(), engine, ",[.,]", "", bfvm.NewBytesSource([]byte("ok\x00")), out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "ok" {
		t.Fatalf("got %q", out.String())
	}

	// bytes written before a fault still reach stdout
	out.Reset()
	err := run(t.Context(), engine, "++++++++[>++++++++<-]>+.][", "", nil, out)
	if !errors.Is(err, bfvm.ErrUnmatchedBracket) {
		t.Fatalf("got %v", err)
	}
	if out.String() != "A" {
		t.Fatalf("got %q", out.String())
	}

	err = run(t.Context(), engine, "+x", "prog.b", nil, out)
	var fault *bfvm.Fault
	if !errors.As(err, &fault) {
		t.Fatalf("got %v", err)
	}
	if fault.Pos.Filename != "prog.b" {
		t.Fatalf("got %v", fault.Pos)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	err = run(ctx, engine, "+[]", "", nil, out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "interrupted: ") {
		t.Fatalf("got %v", err)
	}
}
