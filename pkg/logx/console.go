package logx

import (
	"fmt"
	"io"
	"sync"
)

const consoleErrorPrefix = "[ERROR] "

// Console prints example output line by line. Info lines go to out, error
// lines go to errOut with an "[ERROR] " prefix. A nil writer drops its lines,
// so the zero Console discards everything.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

func NewConsole(out, errOut io.Writer) *Console {
	return &Console{
		out:    out,
		errOut: errOut,
	}
}

func (c *Console) Info(message string) {
	c.write(c.out, message)
}

func (c *Console) Error(message string) {
	c.write(c.errOut, consoleErrorPrefix+message)
}

func (c *Console) write(w io.Writer, line string) {
	if w == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(w, line) //nolint:errcheck
}
