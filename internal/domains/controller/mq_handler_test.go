package controller_test

import (
	"encoding/json"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlpg/pvfll-portal/internal/domains/controller"
	"github.com/htmlpg/pvfll-portal/internal/domains/controller/controller_mocks"
	"github.com/htmlpg/pvfll-portal/internal/domains/mq"
	"github.com/htmlpg/pvfll-portal/internal/entities"
)

func TestMQHandler_GetState(t *testing.T) {
	stateService := controller_mocks.NewMockIStateService(t)
	stateService.EXPECT().State().Return(entities.InterfaceState{
		State:           entities.AppStateActive,
		PusherConnected: true,
		QRURL:           "https://garden/v/pvfll-002/t1",
		Boxes:           entities.Boxes{1: entities.NewEmptyBox(1)},
	}).Once()

	resp := controller.NewMQHandler(stateService).GetState(&nats.Msg{})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "ok",
		"data": {
			"state": "active",
			"pusherConnected": true,
			"qrUrl": "https://garden/v/pvfll-002/t1",
			"boxes": {"1": {"number": 1, "empty": true}}
		}
	}`, string(data))
}

func TestMQHandler_WifiConnected(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		prepare func(stateService *controller_mocks.MockIStateService)
		want    string
	}{
		{
			name: "notifies controller",
			data: `{"ssid":"HomeNet"}`,
			prepare: func(stateService *controller_mocks.MockIStateService) {
				stateService.EXPECT().NotifyWifiConnected().Return().Once()
			},
			want: mq.StatusOk,
		},
		{
			name:    "bad payload",
			data:    `{"ssid":`,
			prepare: func(_ *controller_mocks.MockIStateService) {},
			want:    mq.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateService := controller_mocks.NewMockIStateService(t)
			tt.prepare(stateService)

			resp := controller.NewMQHandler(stateService).WifiConnected(&nats.Msg{Data: []byte(tt.data)})

			response, ok := resp.(mq.Response)
			require.True(t, ok)
			assert.Equal(t, tt.want, response.Status)
		})
	}
}
