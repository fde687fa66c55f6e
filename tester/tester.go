// Package tester runs programs and checks how they exit. It is meant for
// smoke-testing built binaries from scripts, so diagnostics go straight to
// stdout with a [tester] prefix instead of through a testing.T.
package tester

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ExpectReturnCode runs the program at path with args and reports whether
// it exited with the wanted code. The program inherits stdout and stderr
// so its own output stays visible between the [tester] lines.
func ExpectReturnCode(path string, args []string, code int) bool {
	cmd := exec.Command(path, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Printf("[tester] Failed to run program %s\n", path)
			fmt.Printf("[tester] %v\n", err)
			return false
		}
	}

	got := cmd.ProcessState.ExitCode()
	if got == code {
		return true
	}
	fmt.Printf("[tester] Expected %d, got %d\n", code, got)
	return false
}
