package bfscript

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	VM   bfvm.Module
	Logs logs.Module
}

// Output receives the print() lines of scripts.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}
