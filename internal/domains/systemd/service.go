package systemd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/htmlpg/pvfll-portal/pkg/shell"
	"github.com/htmlpg/pvfll-portal/pkg/shell/commands"
)

type (
	IShellService interface {
		Exec(ctx context.Context, command shell.ICommand) error
		ExecOutput(ctx context.Context, command shell.ICommand) ([]byte, error)
	}
)

type Service struct {
	shellService IShellService
}

func NewService(shellService IShellService) *Service {
	return &Service{
		shellService: shellService,
	}
}

func (s *Service) DaemonReload(ctx context.Context) (err error) {
	if err = s.shellService.Exec(ctx, commands.NewDaemonReloadCmd()); err != nil {
		return fmt.Errorf("DaemonReload: %w", err)
	}

	return nil
}

func (s *Service) Enable(ctx context.Context, unit string) (err error) {
	if err = s.shellService.Exec(ctx, commands.NewSystemctlCmd("enable", unit)); err != nil {
		return fmt.Errorf("Enable: %w", err)
	}

	return nil
}

func (s *Service) Start(ctx context.Context, unit string) (err error) {
	if err = s.shellService.Exec(ctx, commands.NewSystemctlCmd("start", unit)); err != nil {
		return fmt.Errorf("Start: %w", err)
	}

	log.Info().
		Str("unit", unit).
		Msg("Start: unit started")
	return nil
}

func (s *Service) Restart(ctx context.Context, unit string) (err error) {
	if err = s.shellService.Exec(ctx, commands.NewSystemctlCmd("restart", unit)); err != nil {
		return fmt.Errorf("Restart: %w", err)
	}

	log.Info().
		Str("unit", unit).
		Msg("Restart: unit restarted")
	return nil
}

// IsEnabled reports whether unit is enabled. Non-zero exit means not enabled.
func (s *Service) IsEnabled(ctx context.Context, unit string) (enabled bool, state string) {
	return s.query(ctx, "is-enabled", unit, "enabled")
}

// IsActive reports whether unit is active. Non-zero exit means not active.
func (s *Service) IsActive(ctx context.Context, unit string) (active bool, state string) {
	return s.query(ctx, "is-active", unit, "active")
}

func (s *Service) query(ctx context.Context, action, unit, expected string) (ok bool, state string) {
	output, err := s.shellService.ExecOutput(ctx, commands.NewSystemctlCmd(action, unit))
	state = strings.TrimSpace(string(output))
	if err != nil {
		log.Debug().
			Err(err).
			Str("unit", unit).
			Str("action", action).
			Msg("query")
		return false, state
	}

	return state == expected, state
}
