package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/htmlpg/pvfll-portal/internal/errs"
	"github.com/htmlpg/pvfll-portal/pkg/shell"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode propagates the exit status of the failed command, if any.
func exitCode(err error) int {
	if code, ok := shell.ExitCode(err); ok && code > 0 {
		return code
	}

	if !errors.Is(err, errs.ErrChecksFailed) {
		log.Error().Err(err).Msg("main: install failed")
	}

	return 1
}
