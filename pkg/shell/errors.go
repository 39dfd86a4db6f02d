package shell

import (
	"errors"
	"fmt"
	"strings"
)

// ExecError is returned when a command exits with non-zero status.
type ExecError struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *ExecError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s: exit status %d", e.Command, e.ExitCode)
	}

	return fmt.Sprintf("%s: exit status %d: %s", e.Command, e.ExitCode, msg)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// ExitCode returns exit code of the first failed command found in the error chain.
func ExitCode(err error) (code int, ok bool) {
	var execErr *ExecError
	if errors.As(err, &execErr) {
		return execErr.ExitCode, true
	}

	return 0, false
}
