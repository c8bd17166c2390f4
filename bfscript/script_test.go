package bfscript

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/modes"
	"go.starlark.net/starlark"
)

func testScope(t *testing.T, output *bytes.Buffer) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Output {
			return output
		},
	)
}

func TestScriptRun(t *testing.T) {
	output := new(bytes.Buffer)
	testScope(t, output).Call(func(
		script Script,
	) {
		globals, err := script(t.Context(), "test.star", `
out = taibf.run("+++.")
echo = taibf.run(",[.,]", input = "hi\x00")
res = taibf.exec("++>+<")
print(echo)
`)
		if err != nil {
			t.Fatal(err)
		}

		if out := globals["out"]; out != starlark.String("\x03") {
			t.Fatalf("got %v", out)
		}
		if echo := globals["echo"]; echo != starlark.String("hi") {
			t.Fatalf("got %v", echo)
		}
		if output.String() != "hi\n" {
			t.Fatalf("got %q", output.String())
		}

		res, ok := globals["res"].(*starlark.Dict)
		if !ok {
			t.Fatalf("got %T", globals["res"])
		}
		steps, _, err := res.Get(starlark.String("Steps"))
		if err != nil {
			t.Fatal(err)
		}
		if steps.String() != "5" {
			t.Fatalf("got %v", steps)
		}
		cells, _, err := res.Get(starlark.String("Cells"))
		if err != nil {
			t.Fatal(err)
		}
		if cells != starlark.Bytes("\x02\x01") {
			t.Fatalf("got %v", cells)
		}
	})
}

func TestScriptFault(t *testing.T) {
	testScope(t, new(bytes.Buffer)).Call(func(
		script Script,
	) {
		_, err := script(t.Context(), "fault.star", `taibf.run("+][")`)
		if err == nil {
			t.Fatal("should error")
		}
		if !strings.Contains(err.Error(), "unmatched bracket") {
			t.Fatalf("got %v", err)
		}

		_, err = script(t.Context(), "input.star", `taibf.run(",")`)
		if err == nil || !strings.Contains(err.Error(), "input exhausted") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestScriptCancel(t *testing.T) {
	testScope(t, new(bytes.Buffer)).Call(func(
		script Script,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := script(ctx, "loop.star", `
while True:
	pass
`)
		if err == nil {
			t.Fatal("should error")
		}
	})
}

func TestValid(t *testing.T) {
	testScope(t, new(bytes.Buffer)).Call(func(
		script Script,
	) {
		globals, err := script(t.Context(), "valid.star", `
ok = taibf.valid("+[-]")
unbalanced = taibf.valid("[[")
empty = taibf.valid("")
`)
		if err != nil {
			t.Fatal(err)
		}
		if v := globals["ok"]; v != starlark.True {
			t.Fatalf("got %v", v)
		}
		if v := globals["unbalanced"]; v != starlark.False {
			t.Fatalf("got %v", v)
		}
		if v := globals["empty"]; v != starlark.False {
			t.Fatalf("got %v", v)
		}
	})
}
