package controller

import (
	"time"

	"github.com/htmlpg/pvfll-portal/internal/constants"
)

// Options tunes the controller timings and the AP shown on the portal screen.
type Options struct {
	WifiRetryInterval       time.Duration
	ConnectionCheckInterval time.Duration
	SyncPollInterval        time.Duration
	HealthReportInterval    time.Duration
	MessageHold             time.Duration

	APConnectionName string
	APSSID           string
	APPSK            string
	APAddress        string
}

func DefaultOptions() Options {
	return Options{
		WifiRetryInterval:       constants.WifiRetryInterval,
		ConnectionCheckInterval: constants.ConnectionCheckInterval,
		SyncPollInterval:        constants.SyncPollInterval,
		HealthReportInterval:    constants.HealthReportInterval,
		MessageHold:             time.Second,

		APConnectionName: constants.APConnectionName,
		APSSID:           constants.APSSID,
		APPSK:            constants.APPSK,
		APAddress:        constants.APAddress,
	}
}

// boot screen messages and their font sizes.
const (
	msgBooting         = "Booting..."
	msgCheckingWifi    = "Checking Wi-Fi..."
	msgWifiConnected   = "Wi-Fi connected!"
	msgConnectingWS    = "Connecting to WebSocket..."
	msgWebsocketFailed = "WebSocket failed"
	msgFetchingData    = "Fetching data..."
	msgBootComplete    = "Boot complete!"

	sizeBooting = 28
	sizeStatus  = 24
	sizeConnect = 20
)
