package logs

import (
	"io"
	"os"
)

// Writer is the log destination. Machine output goes to stdout, so
// logs stay on stderr to keep program output clean.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
