package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/domains/mq"
	"github.com/htmlpg/pvfll-portal/internal/domains/report"
	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/internal/errs"
)

func newVerifyCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check access point profile, dns hijack and services",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kernel, err := newKernel(flags, false)
			if err != nil {
				return fmt.Errorf("verify: %w", err)
			}

			checks, err := kernel.InjectProvisionService().Verify(cmd.Context(), flags.variant)
			if err != nil {
				return fmt.Errorf("verify: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.FormatChecks(checks))
			if !checks.AllPassed() {
				return errs.ErrChecksFailed
			}

			return nil
		},
	}
}

func newNetworksCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "Scan visible WiFi networks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kernel, err := newKernel(flags, false)
			if err != nil {
				return fmt.Errorf("networks: %w", err)
			}

			networks, err := kernel.InjectNetworkService().ScanNetworks(cmd.Context())
			if err != nil {
				return fmt.Errorf("networks: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.FormatNetworks(networks))
			return nil
		},
	}
}

func newLastReportCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "last-report",
		Short: "Print the report of the last install run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kernel, err := newKernel(flags, true)
			if err != nil {
				return fmt.Errorf("last-report: %w", err)
			}
			defer kernel.Store.Close()

			installReport, found, err := kernel.Store.LoadInstallReport()
			if err != nil {
				return fmt.Errorf("last-report: %w", err)
			}

			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), "no install report found")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.FormatInstallReport(installReport))
			return nil
		},
	}
}

func newLeasesCmd() *cobra.Command {
	var (
		leasesPath string
		cidr       string
	)

	cmd := &cobra.Command{
		Use:   "leases",
		Short: "Print DHCP leases handed out by the access point",
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, err := os.ReadFile(leasesPath)
			if err != nil {
				return fmt.Errorf("leases: %w", err)
			}

			var filter *string
			if cidr != "" {
				filter = &cidr
			}

			output, err := report.FormatLeases(string(content), filter)
			if err != nil {
				return fmt.Errorf("leases: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&leasesPath, "file", constants.DnsmasqLeases, "dnsmasq lease file")
	cmd.Flags().StringVar(&cidr, "cidr", "", "show only leases inside the network")

	return cmd
}

type interfaceStateReply struct {
	mq.Response

	Data entities.InterfaceState `json:"data"`
}

func newStatusCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Query the running interface daemon over the message bus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kernel, err := newKernel(flags, false)
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}

			mqService := kernel.InjectMQService()
			if err = mqService.Connect(); err != nil {
				return fmt.Errorf("status: %w", err)
			}
			defer func() {
				if closeErr := mqService.Close(); closeErr != nil {
					log.Warn().Err(closeErr).Msg("status: close MQ error")
				}
			}()

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.MQRequestTimeout)
			defer cancel()

			var reply interfaceStateReply
			if err = mqService.Request(ctx, constants.MQInterfaceState, nil, &reply); err != nil {
				if errors.Is(err, mq.ErrDisabled) {
					fmt.Fprintln(cmd.OutOrStdout(), "message bus is not configured, set NATS_URL")
				}
				return fmt.Errorf("status: %w", err)
			}

			if !reply.IsOk() {
				return fmt.Errorf("status: %s: %s", reply.Status, reply.Message)
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.FormatInterfaceState(reply.Data))
			return nil
		},
	}
}
