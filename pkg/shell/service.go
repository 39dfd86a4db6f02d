package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

type Service struct{}

func NewService() *Service {
	return new(Service)
}

// Exec runs command and waits for it to finish.
func (s *Service) Exec(ctx context.Context, command ICommand) (err error) {
	if _, err = s.run(ctx, command); err != nil {
		return fmt.Errorf("Exec: %w", err)
	}

	return nil
}

// ExecOutput runs command and returns its stdout.
func (s *Service) ExecOutput(ctx context.Context, command ICommand) (output []byte, err error) {
	if output, err = s.run(ctx, command); err != nil {
		return output, fmt.Errorf("ExecOutput: %w", err)
	}

	return output, nil
}

func (s *Service) run(ctx context.Context, command ICommand) (output []byte, err error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, command.Name(), command.Args()...) //nolint:gosec // commands are built by typed constructors
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if env := command.Env(); len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	log.Debug().
		Str("cmd", command.String()).
		Msg("run: executing command")

	if err = cmd.Run(); err != nil {
		execErr := &ExecError{
			Command:  command.String(),
			ExitCode: -1,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			Err:      err,
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			execErr.ExitCode = exitErr.ExitCode()
		}

		return stdout.Bytes(), execErr
	}

	return stdout.Bytes(), nil
}
