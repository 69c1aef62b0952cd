package logs

import (
	"io"
	"os"
)

// Writer receives the terminal handler's output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
