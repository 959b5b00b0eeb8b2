// Package waitexit implements the optional wait-for-keypress behavior used
// when the binary is launched from a console that would close immediately,
// such as a double-click on Windows.
package waitexit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/term"
)

// Policy captures the wait-related CLI flags.
type Policy struct {
	Wait   bool
	NoWait bool
}

// ShouldWait decides whether to block for a keypress before exit. Explicit
// flags win; otherwise wait only on Windows when stdout is a terminal and
// the binary was started without arguments (the double-click case).
func ShouldWait(p Policy, argc int, stdoutIsTerminal bool) bool {
	if p.NoWait {
		return false
	}
	if p.Wait {
		return true
	}
	return runtime.GOOS == "windows" && stdoutIsTerminal && argc <= 1
}

// Wait prompts on out and blocks until a keypress arrives on in. The prompt
// is always plain text and written outside stdout, so it cannot corrupt a
// JSON stream. EOF and interrupts return silently.
func Wait(in *os.File, out io.Writer) {
	fmt.Fprint(out, "\nPress any key to exit...")
	defer fmt.Fprintln(out)

	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err == nil {
			defer term.Restore(fd, state)
			buf := make([]byte, 1)
			in.Read(buf)
			return
		}
	}

	// Not a terminal: settle for a line read.
	reader := bufio.NewReader(in)
	reader.ReadString('\n')
}
