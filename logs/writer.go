package logs

import (
	"io"
	"os"
)

// Writer receives text log records. Stdout is reserved for program output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
