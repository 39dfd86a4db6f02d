package controller

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/htmlpg/pvfll-portal/internal/domains/mq"
	"github.com/htmlpg/pvfll-portal/internal/entities"
)

type (
	IStateService interface {
		State() entities.InterfaceState
		NotifyWifiConnected()
	}
)

type MQHandler struct {
	stateService IStateService
}

func NewMQHandler(stateService IStateService) *MQHandler {
	return &MQHandler{
		stateService: stateService,
	}
}

type stateResponse struct {
	mq.Response

	Data entities.InterfaceState `json:"data"`
}

// GetState returns the interface controller state.
func (h *MQHandler) GetState(_ *nats.Msg) (resp any) {
	return stateResponse{
		Response: mq.NewOkResponse(),
		Data:     h.stateService.State(),
	}
}

// WifiConnected wakes up the controller waiting for WiFi.
func (h *MQHandler) WifiConnected(m *nats.Msg) (resp any) {
	var event entities.WifiConnectedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		log.Warn().Err(err).Msg("WifiConnected: bad event")
		return mq.NewBadRequestResponse(err.Error())
	}

	log.Info().
		Str("ssid", event.SSID).
		Msg("WifiConnected: portal connected to network")
	h.stateService.NotifyWifiConnected()

	return mq.NewOkResponse()
}
