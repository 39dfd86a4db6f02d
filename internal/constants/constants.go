package constants

import (
	"time"
)

const (
	DefaultDeviceID   = "pvfll-002"
	DefaultWifiIface  = "wlan0"
	WifiConnType      = "802-11-wireless"
	DefaultQRBaseURL  = "https://htmlpg.andrew-boylan.com"
	DefaultQRInterval = 30 * time.Second
)

const (
	FilePerm    = 0755
	LogFilePerm = 0644
	ConfPerm    = 0644
)

const (
	BoxCount = 4
)

const (
	HTTPTimeout        = 8 * time.Second
	BoxFetchRetryCount = 0
	BoxFetchRetryWait  = 3 * time.Second
)

const (
	WifiRetryInterval       = 10 * time.Second
	ConnectionCheckInterval = 60 * time.Second
	SyncPollInterval        = 5 * time.Minute
	HealthReportInterval    = 60 * time.Second
)

const (
	DefaultReadinessTimeout  = 30 * time.Second
	DefaultReadinessInterval = 500 * time.Millisecond
	WifiConnectTimeout       = 30 * time.Second
	NmcliTimeout             = 10 * time.Second
)

const (
	LogLevelInfo  = "info"
	LogLevelDebug = "debug"
)
