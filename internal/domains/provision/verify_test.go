package provision_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/internal/errs"
)

func TestService_Verify(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name           string
		prepare        func(t *testing.T, f *serviceFields)
		expectedFailed []string
	}{
		{
			name: "all checks pass",
			prepare: func(t *testing.T, f *serviceFields) {
				_, _, err := f.hijackService.Write("nm-shared")
				require.NoError(t, err)

				f.networkService.EXPECT().
					GetAPProfile(mock.Anything, "portal-ap").
					Return(sharedProfile(), nil).
					Once()
				for _, unit := range []string{"portal-interface.service", "portal-web.service"} {
					f.systemdService.EXPECT().IsEnabled(mock.Anything, unit).Return(true, "enabled").Once()
					f.systemdService.EXPECT().IsActive(mock.Anything, unit).Return(true, "active").Once()
				}
			},
			expectedFailed: []string{},
		},
		{
			name: "profile missing, hijack modified, web inactive",
			prepare: func(t *testing.T, f *serviceFields) {
				path := filepath.Join(f.root, "NetworkManager", "dnsmasq-shared.d", "portal.conf")
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
				require.NoError(t, os.WriteFile(path, []byte("address=/#/10.0.0.1\n"), 0644))

				f.networkService.EXPECT().
					GetAPProfile(mock.Anything, "portal-ap").
					Return(entities.APProfile{}, errs.ErrProfileNotFound).
					Once()
				f.systemdService.EXPECT().IsEnabled(mock.Anything, "portal-interface.service").Return(true, "enabled").Once()
				f.systemdService.EXPECT().IsActive(mock.Anything, "portal-interface.service").Return(true, "active").Once()
				f.systemdService.EXPECT().IsEnabled(mock.Anything, "portal-web.service").Return(true, "enabled").Once()
				f.systemdService.EXPECT().IsActive(mock.Anything, "portal-web.service").Return(false, "failed").Once()
			},
			expectedFailed: []string{"ap profile", "dns hijack", "portal-web.service active"},
		},
		{
			name: "wrong ssid and missing hijack file",
			prepare: func(t *testing.T, f *serviceFields) {
				profile := sharedProfile()
				profile.SSID = "other"

				f.networkService.EXPECT().
					GetAPProfile(mock.Anything, "portal-ap").
					Return(profile, nil).
					Once()
				for _, unit := range []string{"portal-interface.service", "portal-web.service"} {
					f.systemdService.EXPECT().IsEnabled(mock.Anything, unit).Return(true, "enabled").Once()
					f.systemdService.EXPECT().IsActive(mock.Anything, unit).Return(true, "active").Once()
				}
			},
			expectedFailed: []string{"ap ssid", "dns hijack"},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(t, f)
			}

			checks, err := f.newService().Verify(context.Background(), "nm-shared")
			require.NoError(t, err)

			failed := make([]string, 0)
			for _, check := range checks {
				if !check.Passed {
					name := check.Name
					if strings.HasPrefix(name, "dns hijack") {
						name = "dns hijack"
					}
					failed = append(failed, name)
				}
			}
			assert.Equal(t, testCase.expectedFailed, failed)
			assert.Equal(t, len(testCase.expectedFailed) == 0, checks.AllPassed())
		})
	}
}

func TestService_VerifyUnknownVariant(t *testing.T) {
	t.Parallel()

	_, err := newServiceFields(t).newService().Verify(context.Background(), "bind9")
	require.ErrorIs(t, err, errs.ErrUnknownVariant)
}
