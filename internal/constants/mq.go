package constants

import (
	"time"
)

const (
	// in requests (portal-interface).
	MQWifiConnected  = "portal.wifi.connected"
	MQInterfaceState = "portal.interface.state"
	MQDebugDumpHeap  = "portal.debug.dump_heap"
	MQDebugStats     = "portal.debug.stats"
)

const (
	MQRequestTimeout = 5 * time.Second
)
