package entities

type AppState string

const (
	AppStateBoot         AppState = "boot"
	AppStateWaitingWifi  AppState = "waiting_wifi"
	AppStateConnecting   AppState = "connecting"
	AppStateFetchingData AppState = "fetching_data"
	AppStateActive       AppState = "active"
	AppStateHalted       AppState = "halted"
	AppStateStopped      AppState = "stopped"
)

func (s AppState) String() string {
	return string(s)
}

// InterfaceState is a point-in-time view of the interface controller.
type InterfaceState struct {
	State           AppState `json:"state"`
	PusherConnected bool     `json:"pusherConnected"`
	QRURL           string   `json:"qrUrl"`
	Boxes           Boxes    `json:"boxes"`
}
