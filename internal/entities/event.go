package entities

type EmptyData struct{}

func NewEmptyData() EmptyData {
	return EmptyData{}
}

// WifiConnectedEvent is published by the portal after a successful connect.
type WifiConnectedEvent struct {
	SSID string `json:"ssid"`
}

func NewWifiConnectedEvent(ssid string) WifiConnectedEvent {
	return WifiConnectedEvent{
		SSID: ssid,
	}
}

// HealthReport is the device heartbeat payload.
type HealthReport struct {
	DeviceID  string `json:"deviceId"`
	Connected bool   `json:"connected"`
	Timestamp string `json:"timestamp"`
}
