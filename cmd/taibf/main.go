package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/bfscript"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
	"github.com/samber/lo"
)

var (
	fileFlag   = cmds.Var[string]("-file", "run the program in this file")
	codeFlag   = cmds.Var[string]("-code", "run this program text")
	inputFlag  = cmds.Var[*string]("-input", "use this text as program input instead of stdin")
	scriptFlag = cmds.Var[string]("-script", "execute a Starlark script")
)

func main() {
	cmds.Execute(os.Args[1:])

	if *fileFlag == "" && *codeFlag == "" && *scriptFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: one of -file, -code or -script is required")
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		newSpan logs.NewSpan,
		engine *bfvm.Engine,
		script bfscript.Script,
		prompt bfconfigs.Prompt,
	) {
		ctx, _ = newSpan(ctx, "")
		if *scriptFlag != "" {
			_, err = script(ctx, *scriptFlag, nil)
			return
		}
		var source, filename string
		source, filename, err = loadSource(*fileFlag, *codeFlag)
		if err == nil {
			stdout := bufio.NewWriter(os.Stdout)
			input := inputSource(*inputFlag, os.Stdin, string(prompt), flushWriter{stdout})
			err = run(ctx, engine, source, filename, input, stdout)
		}
	})
	err = logs.WrapSpan(ctx, err)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Execution halted: %v\n", err)
		os.Exit(1)
	}
}

// loadSource returns the program text from path, or code when path is empty.
func loadSource(path, code string) (source, filename string, err error) {
	if path == "" {
		return code, "", nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	// editors end files with a newline, which strict programs reject
	return strings.TrimRight(string(content), "\r\n"), path, nil
}

// inputSource picks scripted input when given, an interactive prompt when
// stdin is a terminal, and plain stdin otherwise.
func inputSource(input *string, stdin *os.File, prompt string, promptOut io.Writer) bfvm.ByteSource {
	if input != nil {
		return bfvm.NewBytesSource([]byte(lo.FromPtr(input)))
	}
	if isTerminal(stdin) {
		return bfvm.PromptSource(prompt, promptOut, stdin)
	}
	return bfvm.ReaderSource(stdin)
}

// run streams the program's output to stdout as it executes.
func run(ctx context.Context, engine *bfvm.Engine, source, filename string, input bfvm.ByteSource, stdout io.Writer) error {
	program, err := engine.Load(source, bfvm.Filename(filename))
	if err != nil {
		return err
	}

	w, ok := stdout.(*bufio.Writer)
	if !ok {
		w = bufio.NewWriter(stdout)
	}
	defer w.Flush()

	_, err = engine.Exec(ctx, program, input, bfvm.WriterSink(w))
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("interrupted: %w", err)
	}
	return err
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// flushWriter flushes pending output before the prompt, so the user sees
// everything printed so far.
type flushWriter struct {
	w *bufio.Writer
}

func (f flushWriter) Write(p []byte) (int, error) {
	n, err := f.w.Write(p)
	if err != nil {
		return n, err
	}
	return n, f.w.Flush()
}

