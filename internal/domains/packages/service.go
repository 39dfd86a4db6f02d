package packages

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/errs"
	"github.com/htmlpg/pvfll-portal/pkg/shell"
	"github.com/htmlpg/pvfll-portal/pkg/shell/commands"
)

type (
	IShellService interface {
		Exec(ctx context.Context, command shell.ICommand) error
	}
)

var (
	commonPackages  = []string{"network-manager", "dnsmasq-base"}
	dnsmasqPackages = []string{"dnsmasq"}
)

// ForVariant returns OS packages required by dns variant.
func ForVariant(variant string) (packages []string, err error) {
	switch variant {
	case constants.VariantNMShared:
		return append([]string{}, commonPackages...), nil
	case constants.VariantDnsmasq:
		return append(append([]string{}, commonPackages...), dnsmasqPackages...), nil
	default:
		return nil, fmt.Errorf("ForVariant: %w: %q", errs.ErrUnknownVariant, variant)
	}
}

type Service struct {
	shellService IShellService
}

func NewService(shellService IShellService) *Service {
	return &Service{
		shellService: shellService,
	}
}

// Install refreshes package index and installs packages non-interactively.
func (s *Service) Install(ctx context.Context, packages []string) (err error) {
	log.Info().
		Strs("packages", packages).
		Msg("Install: installing packages")

	if err = s.shellService.Exec(ctx, commands.NewAptUpdateCmd()); err != nil {
		return fmt.Errorf("Install: %w", err)
	}

	if err = s.shellService.Exec(ctx, commands.NewAptInstallCmd(packages...)); err != nil {
		return fmt.Errorf("Install: %w", err)
	}

	return nil
}
