package readiness_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/htmlpg/pvfll-portal/internal/domains/readiness"
	"github.com/htmlpg/pvfll-portal/internal/domains/readiness/readiness_mocks"
	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/internal/errs"
)

type serviceFields struct {
	networkService *readiness_mocks.MockINetworkService
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		networkService: readiness_mocks.NewMockINetworkService(t),
	}
}

var (
	stateDisconnected = entities.DeviceState{Code: 30, Text: "disconnected"}
	stateConnecting   = entities.DeviceState{Code: 70, Text: "connecting (getting IP configuration)"}
	stateConnected    = entities.DeviceState{Code: 100, Text: "connected"}
)

func TestService_WaitReady(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name        string
		timeout     time.Duration
		cancelled   bool
		prepare     func(f *serviceFields)
		expectedErr error
	}{
		{
			name:    "ready immediately",
			timeout: time.Second,
			prepare: func(f *serviceFields) {
				f.networkService.EXPECT().
					DeviceState(mock.Anything).
					Return(stateConnected, nil).
					Times(1)
			},
		},
		{
			name:    "ready after a few polls",
			timeout: 5 * time.Second,
			prepare: func(f *serviceFields) {
				f.networkService.EXPECT().
					DeviceState(mock.Anything).
					Return(stateDisconnected, nil).
					Once()
				f.networkService.EXPECT().
					DeviceState(mock.Anything).
					Return(entities.DeviceState{}, errors.New("device busy")).
					Once()
				f.networkService.EXPECT().
					DeviceState(mock.Anything).
					Return(stateConnecting, nil).
					Once()
				f.networkService.EXPECT().
					DeviceState(mock.Anything).
					Return(stateConnected, nil).
					Once()
			},
		},
		{
			name:    "timeout",
			timeout: 50 * time.Millisecond,
			prepare: func(f *serviceFields) {
				f.networkService.EXPECT().
					DeviceState(mock.Anything).
					Return(stateDisconnected, nil)
			},
			expectedErr: errs.ErrInterfaceNotReady,
		},
		{
			name:      "cancelled",
			timeout:   5 * time.Second,
			cancelled: true,
			prepare: func(f *serviceFields) {
				f.networkService.EXPECT().
					DeviceState(mock.Anything).
					Return(stateDisconnected, nil)
			},
			expectedErr: context.Canceled,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if testCase.cancelled {
				cancel()
			}

			err := readiness.NewService(f.networkService).WaitReady(ctx, testCase.timeout, 10*time.Millisecond)
			if testCase.expectedErr != nil {
				require.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
		})
	}
}
