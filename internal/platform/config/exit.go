package config

import (
	"fmt"
	"io"
	"os"
)

var (
	stderr   io.Writer = os.Stderr
	exitFunc           = os.Exit
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exitFunc(1)
}

// ExitOnError exits through Exitf when err is non-nil.
func ExitOnError(action string, err error) {
	if err == nil {
		return
	}
	Exitf("%s: %v", action, err)
}
