package terminator

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// stderr is swapped out in tests.
var stderr io.Writer = color.Error

// Main runs run and exits the process: 0 on success, 1 on failure after
// reporting the error to stderr. It is meant to be the only statement in
// func main.
func Main(run func() error) {
	os.Exit(Run(run))
}

// Run invokes run and returns the exit code main should use. A failure is
// reported as a red "Error:" line on stderr. The error is rendered with %+v,
// so errors that format their own verbose output keep it unless they have
// been passed through Wrap.
func Run(run func() error) int {
	err := run()
	if err == nil {
		return 0
	}
	color.New(color.FgRed).Fprintf(stderr, "Error: %+v\n", err)
	return 1
}
