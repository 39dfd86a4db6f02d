package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/htmlpg/pvfll-portal/infrastructure"
	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/domains/provision"
	"github.com/htmlpg/pvfll-portal/internal/domains/report"
	"github.com/htmlpg/pvfll-portal/internal/environment"
	"github.com/htmlpg/pvfll-portal/internal/errs"
	"github.com/htmlpg/pvfll-portal/internal/logging"
)

const (
	binaryName = "pvfll-install"
)

type rootFlags struct {
	variant          string
	skipPackages     bool
	readinessTimeout time.Duration
	dbPath           string
	logLevel         string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           binaryName,
		Short:         "Provision the device as a captive portal access point",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logging.SetupConsole(os.Stderr, flags.logLevel)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.variant, "variant", constants.VariantNMShared, "dns variant: nm-shared or dnsmasq")
	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", constants.DefaultInstallDBPath, "install report store path")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", constants.LogLevelInfo, "console log level")
	cmd.Flags().BoolVar(&flags.skipPackages, "skip-packages", false, "skip package installation")
	cmd.Flags().DurationVar(&flags.readinessTimeout, "readiness-timeout", constants.DefaultReadinessTimeout, "access point readiness timeout")

	cmd.AddCommand(
		newVerifyCmd(flags),
		newNetworksCmd(flags),
		newLastReportCmd(flags),
		newLeasesCmd(),
		newStatusCmd(flags),
	)

	return cmd
}

func runInstall(cmd *cobra.Command, flags *rootFlags) (err error) {
	if os.Geteuid() != 0 {
		return fmt.Errorf("runInstall: %w", errs.ErrNotPrivileged)
	}

	if err = provision.ValidateVariant(flags.variant); err != nil {
		return fmt.Errorf("runInstall: %w", err)
	}

	kernel, err := newKernel(flags, true)
	if err != nil {
		return fmt.Errorf("runInstall: %w", err)
	}
	defer kernel.Store.Close()

	installReport, err := kernel.InjectProvisionService().Install(cmd.Context(), provision.Options{
		Variant:          flags.variant,
		SkipPackages:     flags.skipPackages,
		ReadinessTimeout: flags.readinessTimeout,
	})
	fmt.Fprintln(cmd.OutOrStdout(), report.FormatInstallReport(installReport))
	if err != nil {
		return fmt.Errorf("runInstall: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Portal URL: %s\n", constants.PortalURL)
	return nil
}

// newKernel builds the kernel with the install store in place of the daemon cache.
func newKernel(flags *rootFlags, withStore bool) (kernel *infrastructure.Kernel, err error) {
	env, err := environment.New(constants.DefaultInterfaceLogPath, flags.dbPath)
	if err != nil {
		return nil, fmt.Errorf("newKernel: %w", err)
	}
	env.Agent.DBPath = flags.dbPath

	if kernel, err = infrastructure.Inject(env, binaryName); err != nil {
		return nil, fmt.Errorf("newKernel: %w", err)
	}

	if withStore {
		if err = kernel.OpenStore(); err != nil {
			return nil, fmt.Errorf("newKernel: %w", err)
		}
	}

	return kernel, nil
}
