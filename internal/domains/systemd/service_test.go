package systemd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/htmlpg/pvfll-portal/internal/domains/systemd"
	"github.com/htmlpg/pvfll-portal/internal/domains/systemd/systemd_mocks"
	"github.com/htmlpg/pvfll-portal/pkg/shell"
	"github.com/htmlpg/pvfll-portal/pkg/shell/commands"
)

type serviceFields struct {
	shellService *systemd_mocks.MockIShellService
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		shellService: systemd_mocks.NewMockIShellService(t),
	}
}

func Test_Lifecycle(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewCmd("systemctl", "daemon-reload")).
		Return(nil).
		Times(1)
	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewCmd("systemctl", "enable", "portal-web.service")).
		Return(nil).
		Times(1)
	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewCmd("systemctl", "start", "portal-web.service")).
		Return(nil).
		Times(1)
	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewCmd("systemctl", "restart", "portal-web.service")).
		Return(&shell.ExecError{ExitCode: 5}).
		Times(1)

	ctx := context.Background()
	service := systemd.NewService(f.shellService)
	require.NoError(t, service.DaemonReload(ctx))
	require.NoError(t, service.Enable(ctx, "portal-web.service"))
	require.NoError(t, service.Start(ctx, "portal-web.service"))

	err := service.Restart(ctx, "portal-web.service")
	code, ok := shell.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 5, code)
}

func Test_IsActive(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name           string
		prepare        func(f *serviceFields)
		expectedActive bool
		expectedState  string
	}{
		{
			name: "active",
			prepare: func(f *serviceFields) {
				f.shellService.EXPECT().
					ExecOutput(mock.Anything, commands.NewSystemctlCmd("is-active", "portal-web.service")).
					Return([]byte("active\n"), nil).
					Times(1)
			},
			expectedActive: true,
			expectedState:  "active",
		},
		{
			name: "failed unit exits non-zero",
			prepare: func(f *serviceFields) {
				f.shellService.EXPECT().
					ExecOutput(mock.Anything, commands.NewSystemctlCmd("is-active", "portal-web.service")).
					Return([]byte("failed\n"), &shell.ExecError{ExitCode: 3}).
					Times(1)
			},
			expectedState: "failed",
		},
		{
			name: "activating is not active",
			prepare: func(f *serviceFields) {
				f.shellService.EXPECT().
					ExecOutput(mock.Anything, commands.NewSystemctlCmd("is-active", "portal-web.service")).
					Return([]byte("activating\n"), nil).
					Times(1)
			},
			expectedState: "activating",
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			active, state := systemd.NewService(f.shellService).IsActive(context.Background(), "portal-web.service")
			assert.Equal(t, testCase.expectedActive, active)
			assert.Equal(t, testCase.expectedState, state)
		})
	}
}

func Test_IsEnabled(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.shellService.EXPECT().
		ExecOutput(mock.Anything, commands.NewSystemctlCmd("is-enabled", "portal-interface.service")).
		Return([]byte("disabled\n"), &shell.ExecError{ExitCode: 1}).
		Times(1)

	enabled, state := systemd.NewService(f.shellService).IsEnabled(context.Background(), "portal-interface.service")
	assert.False(t, enabled)
	assert.Equal(t, "disabled", state)
}
