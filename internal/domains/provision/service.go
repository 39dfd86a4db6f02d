package provision

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/domains/packages"
	"github.com/htmlpg/pvfll-portal/internal/domains/units"
	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/internal/errs"
)

type (
	IPackageService interface {
		Install(ctx context.Context, packages []string) error
	}

	INetworkService interface {
		RecreateAPProfile(ctx context.Context, profile entities.APProfile) error
		GetAPProfile(ctx context.Context, name string) (entities.APProfile, error)
	}

	IHijackService interface {
		Write(variant string) (bool, string, error)
		Path(variant string) (string, error)
		Render(variant string) ([]byte, error)
	}

	IUnitService interface {
		Install(units []string) ([]string, error)
	}

	ISystemdService interface {
		DaemonReload(ctx context.Context) error
		Enable(ctx context.Context, unit string) error
		Start(ctx context.Context, unit string) error
		Restart(ctx context.Context, unit string) error
		IsEnabled(ctx context.Context, unit string) (bool, string)
		IsActive(ctx context.Context, unit string) (bool, string)
	}

	IReadinessService interface {
		WaitReady(ctx context.Context, timeout time.Duration, interval time.Duration) error
	}

	IReportStore interface {
		SaveInstallReport(report entities.InstallReport) error
	}
)

// Service provisions the device as a captive portal access point.
type Service struct {
	packageService   IPackageService
	networkService   INetworkService
	hijackService    IHijackService
	unitService      IUnitService
	systemdService   ISystemdService
	readinessService IReadinessService
	reportStore      IReportStore
	iface            string
}

func NewService(packageService IPackageService, networkService INetworkService, hijackService IHijackService,
	unitService IUnitService, systemdService ISystemdService, readinessService IReadinessService,
	reportStore IReportStore, iface string) *Service {
	return &Service{
		packageService:   packageService,
		networkService:   networkService,
		hijackService:    hijackService,
		unitService:      unitService,
		systemdService:   systemdService,
		readinessService: readinessService,
		reportStore:      reportStore,
		iface:            iface,
	}
}

// Install runs provisioning steps in order and stops at the first failure.
func (s *Service) Install(ctx context.Context, options Options) (report entities.InstallReport, err error) {
	options = options.withDefaults()
	report = entities.NewInstallReport(options.Variant, time.Now().UTC())
	defer func() {
		report.FinishedAt = time.Now().UTC()
		if saveErr := s.reportStore.SaveInstallReport(report); saveErr != nil {
			log.Warn().
				Err(saveErr).
				Msg("Install: report not saved")
		}
	}()

	pkgs, err := packages.ForVariant(options.Variant)
	if err != nil {
		report.Error = err.Error()
		return report, fmt.Errorf("Install: %w", err)
	}

	for _, step := range s.steps(options, pkgs) {
		started := time.Now()
		log.Info().
			Str("step", step.name.String()).
			Msg("Install: step started")

		if err = step.run(ctx); err != nil {
			report.ErrorStep = step.name.String()
			report.Error = err.Error()
			log.Error().
				Err(err).
				Str("step", step.name.String()).
				Msg("Install: step failed")
			return report, fmt.Errorf("Install: %s: %w", step.name, err)
		}

		report.CompletedSteps = append(report.CompletedSteps, step.name.String())
		report.StepDurations[step.name.String()] = entities.Duration(time.Since(started))
	}

	report.ExecFinished = true
	log.Info().
		Str("variant", options.Variant).
		Str("url", constants.PortalURL).
		Msg("Install: portal provisioned")
	return report, nil
}

func (s *Service) steps(options Options, pkgs []string) []step {
	var (
		variant      = options.Variant
		unitFiles    = units.ForVariant(variant)
		changedUnits []string
		hijackDirty  bool
	)

	steps := make([]step, 0, 8)
	if !options.SkipPackages {
		steps = append(steps, step{
			name: entities.StepPackages,
			run: func(ctx context.Context) error {
				return s.packageService.Install(ctx, pkgs)
			},
		})
	}

	steps = append(steps,
		step{
			name: entities.StepAPProfile,
			run: func(ctx context.Context) error {
				return s.networkService.RecreateAPProfile(ctx, APProfileFor(variant, s.iface))
			},
		},
		step{
			name: entities.StepDNSHijack,
			run: func(_ context.Context) (err error) {
				hijackDirty, _, err = s.hijackService.Write(variant)
				return err
			},
		},
		step{
			name: entities.StepUnits,
			run: func(ctx context.Context) (err error) {
				if changedUnits, err = s.unitService.Install(unitFiles); err != nil {
					return err
				}

				return s.systemdService.DaemonReload(ctx)
			},
		},
		step{
			name: entities.StepStartInterface,
			run: func(ctx context.Context) error {
				// profile was recreated, interface must activate it again
				return s.enableAndStart(ctx, constants.UnitInterface, true)
			},
		},
		step{
			name: entities.StepReadiness,
			run: func(ctx context.Context) error {
				return s.readinessService.WaitReady(ctx, options.ReadinessTimeout, options.ReadinessInterval)
			},
		},
	)

	if variant == constants.VariantDnsmasq {
		steps = append(steps, step{
			name: entities.StepStartDnsmasq,
			run: func(ctx context.Context) error {
				restart := hijackDirty || slices.Contains(changedUnits, constants.UnitDnsmasq)
				return s.enableAndStart(ctx, constants.UnitDnsmasq, restart)
			},
		})
	}

	return append(steps, step{
		name: entities.StepStartWeb,
		run: func(ctx context.Context) error {
			return s.enableAndStart(ctx, constants.UnitWeb, slices.Contains(changedUnits, constants.UnitWeb))
		},
	})
}

func (s *Service) enableAndStart(ctx context.Context, unit string, restart bool) (err error) {
	if err = s.systemdService.Enable(ctx, unit); err != nil {
		return fmt.Errorf("enableAndStart: %w", err)
	}

	if restart {
		if err = s.systemdService.Restart(ctx, unit); err != nil {
			return fmt.Errorf("enableAndStart: %w", err)
		}

		return nil
	}

	if err = s.systemdService.Start(ctx, unit); err != nil {
		return fmt.Errorf("enableAndStart: %w", err)
	}

	return nil
}

// ValidateVariant returns errs.ErrUnknownVariant for unsupported variants.
func ValidateVariant(variant string) error {
	if variant == constants.VariantNMShared || variant == constants.VariantDnsmasq {
		return nil
	}

	return fmt.Errorf("ValidateVariant: %w: %q", errs.ErrUnknownVariant, variant)
}
