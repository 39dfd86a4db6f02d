package entities

import (
	"fmt"
)

type WifiNetwork struct {
	SSID     string `json:"ssid"`
	Signal   int    `json:"signal"`
	Security string `json:"security"`
}

type WifiNetworks []WifiNetwork

// APProfile is the access point connection owned by NetworkManager.
type APProfile struct {
	Name     string
	Iface    string
	SSID     string
	PSK      string
	Address  string
	Prefix   int
	Mode     string
	Band     string
	IPMethod string
}

func (p APProfile) CIDR() string {
	return fmt.Sprintf("%s/%d", p.Address, p.Prefix)
}

// DeviceState is the NetworkManager general state of a device, e.g. "100 (connected)".
type DeviceState struct {
	Code int
	Text string
}

func (s DeviceState) IsConnected() bool {
	return s.Code >= DeviceStateConnected
}

func (s DeviceState) String() string {
	return fmt.Sprintf("%d (%s)", s.Code, s.Text)
}

const (
	DeviceStateUnavailable  = 20
	DeviceStateDisconnected = 30
	DeviceStateConnected    = 100
)

const (
	WifiModeAP     = "ap"
	IPMethodShared = "shared"
	IPMethodManual = "manual"
)
