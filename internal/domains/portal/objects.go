package portal

import (
	"github.com/htmlpg/pvfll-portal/internal/entities"
)

const (
	// 802.11 limits, in bytes
	maxSSIDBytes       = 32
	maxPassphraseBytes = 64
)

type connectForm struct {
	SSID     string `form:"ssid" validate:"required,ssid"`
	Password string `form:"password" validate:"passphrase"`
}

type connectResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newConnectResponse(success bool, message string) connectResponse {
	return connectResponse{
		Success: success,
		Message: message,
	}
}

// statusResponse renders missing values as null.
type statusResponse struct {
	Connected *string `json:"connected"`
	IP        *string `json:"ip"`
}

type indexData struct {
	Networks entities.WifiNetworks
	Current  string
	IP       string
}
