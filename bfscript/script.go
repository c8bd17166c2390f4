package bfscript

import (
	"context"
	"fmt"

	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

// Script executes a Starlark file with the taibf module predeclared. src is
// anything starlark.ExecFileOptions accepts, nil meaning read filename.
type Script func(ctx context.Context, filename string, src any) (starlark.StringDict, error)

func (Module) Script(
	engine *bfvm.Engine,
	logger logs.Logger,
	output Output,
) Script {
	return func(ctx context.Context, filename string, src any) (starlark.StringDict, error) {
		thread := &starlark.Thread{
			Name: filename,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(output, msg)
			},
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		logger.DebugContext(ctx, "script", "file", filename)
		globals, err := starlark.ExecFileOptions(
			&syntax.FileOptions{
				Set:             true,
				While:           true,
				TopLevelControl: true,
			},
			thread,
			filename,
			src,
			starlark.StringDict{
				"taibf": newModule(ctx, engine),
			},
		)
		if err != nil {
			return nil, fmt.Errorf("script %s: %w", filename, err)
		}
		return globals, nil
	}
}

func newModule(ctx context.Context, engine *bfvm.Engine) *starlarkstruct.Module {
	return &starlarkstruct.Module{
		Name: "taibf",
		Members: starlark.StringDict{

			"run": starlark.NewBuiltin("taibf.run", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				var program, input string
				if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "program", &program, "input?", &input); err != nil {
					return nil, err
				}
				out, err := engine.Run(ctx, program, bfvm.NewBytesSource([]byte(input)))
				if err != nil {
					return nil, err
				}
				return starlark.String(out), nil
			}),

			"exec": starlark.NewBuiltin("taibf.exec", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				var program, input string
				if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "program", &program, "input?", &input); err != nil {
					return nil, err
				}
				loaded, err := engine.Load(program)
				if err != nil {
					return nil, err
				}
				result, err := engine.Exec(ctx, loaded, bfvm.NewBytesSource([]byte(input)), nil)
				if err != nil {
					return nil, err
				}
				return toStarlarkValue(result), nil
			}),

			"valid": toStarlarkValue(func(program string) bool {
				_, err := engine.Load(program)
				return err == nil
			}),
		},
	}
}
