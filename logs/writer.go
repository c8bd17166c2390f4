package logs

import (
	"io"
	"os"
)

// Writer is where terminal log lines go. Program output owns stdout.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
