package provision_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/htmlpg/pvfll-portal/internal/domains/dnshijack"
	"github.com/htmlpg/pvfll-portal/internal/domains/provision"
	"github.com/htmlpg/pvfll-portal/internal/domains/provision/provision_mocks"
	"github.com/htmlpg/pvfll-portal/internal/domains/units"
	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/internal/errs"
	"github.com/htmlpg/pvfll-portal/pkg/shell"
)

type serviceFields struct {
	packageService   *provision_mocks.MockIPackageService
	networkService   *provision_mocks.MockINetworkService
	systemdService   *provision_mocks.MockISystemdService
	readinessService *provision_mocks.MockIReadinessService
	reportStore      *provision_mocks.MockIReportStore
	hijackService    *dnshijack.Service
	unitService      *units.Service

	root  string
	calls []string
	mx    sync.Mutex
}

func newServiceFields(t *testing.T) *serviceFields {
	root := t.TempDir()
	return &serviceFields{
		packageService:   provision_mocks.NewMockIPackageService(t),
		networkService:   provision_mocks.NewMockINetworkService(t),
		systemdService:   provision_mocks.NewMockISystemdService(t),
		readinessService: provision_mocks.NewMockIReadinessService(t),
		reportStore:      provision_mocks.NewMockIReportStore(t),
		hijackService: dnshijack.NewService(
			filepath.Join(root, "NetworkManager", "dnsmasq-shared.d", "portal.conf"),
			filepath.Join(root, "dnsmasq.d", "portal.conf"),
			"wlan0",
		),
		unitService: units.NewService(filepath.Join(root, "systemd")),
		root:        root,
	}
}

func (f *serviceFields) record(call string) {
	f.mx.Lock()
	defer f.mx.Unlock()

	f.calls = append(f.calls, call)
}

func (f *serviceFields) newService() *provision.Service {
	return provision.NewService(f.packageService, f.networkService, f.hijackService, f.unitService,
		f.systemdService, f.readinessService, f.reportStore, "wlan0")
}

func (f *serviceFields) expectSystemctl(action, unit string, err error) {
	record := func(_ context.Context, unit string) error {
		f.record(action + " " + unit)
		return err
	}

	switch action {
	case "enable":
		f.systemdService.EXPECT().Enable(mock.Anything, unit).RunAndReturn(record).Once()
	case "start":
		f.systemdService.EXPECT().Start(mock.Anything, unit).RunAndReturn(record).Once()
	case "restart":
		f.systemdService.EXPECT().Restart(mock.Anything, unit).RunAndReturn(record).Once()
	}
}

func (f *serviceFields) expectProfile(profile entities.APProfile, err error) {
	f.networkService.EXPECT().
		RecreateAPProfile(mock.Anything, profile).
		RunAndReturn(func(_ context.Context, _ entities.APProfile) error {
			f.record("nmcli profile")
			return err
		}).
		Once()
}

func (f *serviceFields) expectDaemonReload() {
	f.systemdService.EXPECT().
		DaemonReload(mock.Anything).
		RunAndReturn(func(_ context.Context) error {
			f.record("daemon-reload")
			return nil
		}).
		Once()
}

func (f *serviceFields) expectReadiness(err error) {
	f.readinessService.EXPECT().
		WaitReady(mock.Anything, 30*time.Second, 500*time.Millisecond).
		RunAndReturn(func(_ context.Context, _ time.Duration, _ time.Duration) error {
			f.record("readiness")
			return err
		}).
		Once()
}

func (f *serviceFields) expectReportSaved() {
	f.reportStore.EXPECT().
		SaveInstallReport(mock.Anything).
		Return(nil).
		Once()
}

func sharedProfile() entities.APProfile {
	return provision.APProfileFor("nm-shared", "wlan0")
}

func TestService_Install(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name              string
		options           provision.Options
		prepare           func(f *serviceFields)
		expectedCalls     []string
		expectedCompleted []string
		expectedErrStep   string
		expectedExitCode  int
		expectedErr       error
		expectedFiles     []string
		missingFiles      []string
	}{
		{
			name:    "nm-shared",
			options: provision.Options{Variant: "nm-shared"},
			prepare: func(f *serviceFields) {
				f.packageService.EXPECT().
					Install(mock.Anything, []string{"network-manager", "dnsmasq-base"}).
					RunAndReturn(func(_ context.Context, _ []string) error {
						f.record("apt")
						return nil
					}).
					Once()
				f.expectProfile(sharedProfile(), nil)
				f.expectDaemonReload()
				f.expectSystemctl("enable", "portal-interface.service", nil)
				f.expectSystemctl("restart", "portal-interface.service", nil)
				f.expectReadiness(nil)
				f.expectSystemctl("enable", "portal-web.service", nil)
				f.expectSystemctl("restart", "portal-web.service", nil)
				f.expectReportSaved()
			},
			expectedCalls: []string{
				"apt",
				"nmcli profile",
				"daemon-reload",
				"enable portal-interface.service",
				"restart portal-interface.service",
				"readiness",
				"enable portal-web.service",
				"restart portal-web.service",
			},
			expectedCompleted: []string{"packages", "ap_profile", "dns_hijack", "units", "start_interface", "readiness", "start_web"},
			expectedFiles: []string{
				"NetworkManager/dnsmasq-shared.d/portal.conf",
				"systemd/portal-interface.service",
				"systemd/portal-web.service",
			},
			missingFiles: []string{"dnsmasq.d/portal.conf", "systemd/portal-dnsmasq.service"},
		},
		{
			name:    "dnsmasq without packages",
			options: provision.Options{Variant: "dnsmasq", SkipPackages: true},
			prepare: func(f *serviceFields) {
				f.expectProfile(provision.APProfileFor("dnsmasq", "wlan0"), nil)
				f.expectDaemonReload()
				f.expectSystemctl("enable", "portal-interface.service", nil)
				f.expectSystemctl("restart", "portal-interface.service", nil)
				f.expectReadiness(nil)
				f.expectSystemctl("enable", "portal-dnsmasq.service", nil)
				f.expectSystemctl("restart", "portal-dnsmasq.service", nil)
				f.expectSystemctl("enable", "portal-web.service", nil)
				f.expectSystemctl("restart", "portal-web.service", nil)
				f.expectReportSaved()
			},
			expectedCalls: []string{
				"nmcli profile",
				"daemon-reload",
				"enable portal-interface.service",
				"restart portal-interface.service",
				"readiness",
				"enable portal-dnsmasq.service",
				"restart portal-dnsmasq.service",
				"enable portal-web.service",
				"restart portal-web.service",
			},
			expectedCompleted: []string{"ap_profile", "dns_hijack", "units", "start_interface", "readiness", "start_dnsmasq", "start_web"},
			expectedFiles: []string{
				"dnsmasq.d/portal.conf",
				"systemd/portal-interface.service",
				"systemd/portal-web.service",
				"systemd/portal-dnsmasq.service",
			},
			missingFiles: []string{"NetworkManager/dnsmasq-shared.d/portal.conf"},
		},
		{
			name:    "apt failure stops before nmcli",
			options: provision.Options{},
			prepare: func(f *serviceFields) {
				f.packageService.EXPECT().
					Install(mock.Anything, []string{"network-manager", "dnsmasq-base"}).
					Return(fmt.Errorf("Install: %w", &shell.ExecError{Command: "apt-get update", ExitCode: 100})).
					Once()
				f.expectReportSaved()
			},
			expectedCompleted: []string{},
			expectedErrStep:   "packages",
			expectedExitCode:  100,
			missingFiles: []string{
				"NetworkManager/dnsmasq-shared.d/portal.conf",
				"systemd/portal-interface.service",
			},
		},
		{
			name:    "profile failure keeps exit code",
			options: provision.Options{SkipPackages: true},
			prepare: func(f *serviceFields) {
				f.expectProfile(sharedProfile(), &shell.ExecError{ExitCode: 4})
				f.expectReportSaved()
			},
			expectedCalls:     []string{"nmcli profile"},
			expectedCompleted: []string{},
			expectedErrStep:   "ap_profile",
			expectedExitCode:  4,
		},
		{
			name:    "interface never ready",
			options: provision.Options{SkipPackages: true},
			prepare: func(f *serviceFields) {
				f.expectProfile(sharedProfile(), nil)
				f.expectDaemonReload()
				f.expectSystemctl("enable", "portal-interface.service", nil)
				f.expectSystemctl("restart", "portal-interface.service", nil)
				f.expectReadiness(fmt.Errorf("WaitReady: %w", errs.ErrInterfaceNotReady))
				f.expectReportSaved()
			},
			expectedCalls: []string{
				"nmcli profile",
				"daemon-reload",
				"enable portal-interface.service",
				"restart portal-interface.service",
				"readiness",
			},
			expectedCompleted: []string{"ap_profile", "dns_hijack", "units", "start_interface"},
			expectedErrStep:   "readiness",
			expectedErr:       errs.ErrInterfaceNotReady,
		},
		{
			name:    "unknown variant",
			options: provision.Options{Variant: "bind9"},
			prepare: func(f *serviceFields) {
				f.expectReportSaved()
			},
			expectedCompleted: []string{},
			expectedErr:       errs.ErrUnknownVariant,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			report, err := f.newService().Install(context.Background(), testCase.options)
			assert.Equal(t, testCase.expectedCalls, f.calls)
			assert.Equal(t, testCase.expectedCompleted, report.CompletedSteps)
			assert.Equal(t, testCase.expectedErrStep, report.ErrorStep)

			for _, file := range testCase.expectedFiles {
				assert.FileExists(t, filepath.Join(f.root, file))
			}
			for _, file := range testCase.missingFiles {
				assert.NoFileExists(t, filepath.Join(f.root, file))
			}

			switch {
			case testCase.expectedExitCode != 0:
				code, ok := shell.ExitCode(err)
				require.True(t, ok)
				assert.Equal(t, testCase.expectedExitCode, code)
				assert.False(t, report.Succeeded())
			case testCase.expectedErr != nil:
				require.ErrorIs(t, err, testCase.expectedErr)
				_, ok := shell.ExitCode(err)
				assert.False(t, ok)
				assert.False(t, report.Succeeded())
			default:
				require.NoError(t, err)
				assert.True(t, report.Succeeded())
				assert.False(t, report.FinishedAt.Before(report.StartedAt))
			}
		})
	}
}

func TestService_InstallTwice(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.expectProfile(sharedProfile(), nil)
	f.expectProfile(sharedProfile(), nil)
	f.expectDaemonReload()
	f.expectDaemonReload()
	f.expectSystemctl("enable", "portal-interface.service", nil)
	f.expectSystemctl("enable", "portal-interface.service", nil)
	f.expectSystemctl("restart", "portal-interface.service", nil)
	f.expectSystemctl("restart", "portal-interface.service", nil)
	f.expectReadiness(nil)
	f.expectReadiness(nil)
	f.expectSystemctl("enable", "portal-web.service", nil)
	f.expectSystemctl("enable", "portal-web.service", nil)
	// unit file unchanged on second run, plain start is enough
	f.expectSystemctl("restart", "portal-web.service", nil)
	f.expectSystemctl("start", "portal-web.service", nil)
	f.reportStore.EXPECT().
		SaveInstallReport(mock.Anything).
		Return(nil).
		Times(2)

	service := f.newService()
	options := provision.Options{SkipPackages: true}

	_, err := service.Install(context.Background(), options)
	require.NoError(t, err)

	hijackPath := filepath.Join(f.root, "NetworkManager", "dnsmasq-shared.d", "portal.conf")
	firstContent, err := os.ReadFile(hijackPath)
	require.NoError(t, err)

	report, err := service.Install(context.Background(), options)
	require.NoError(t, err)
	assert.True(t, report.Succeeded())

	secondContent, err := os.ReadFile(hijackPath)
	require.NoError(t, err)
	assert.Equal(t, firstContent, secondContent)
	assert.Equal(t, "restart portal-web.service", f.calls[6])
	assert.Equal(t, "start portal-web.service", f.calls[13])
}

func TestService_InstallReportSaveFailureIgnored(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.expectProfile(sharedProfile(), errors.New("nmcli missing"))
	f.reportStore.EXPECT().
		SaveInstallReport(mock.MatchedBy(func(report entities.InstallReport) bool {
			return report.ErrorStep == "ap_profile" && !report.FinishedAt.IsZero()
		})).
		Return(errors.New("database locked")).
		Once()

	_, err := f.newService().Install(context.Background(), provision.Options{SkipPackages: true})
	require.EqualError(t, err, "Install: ap_profile: nmcli missing")
}
