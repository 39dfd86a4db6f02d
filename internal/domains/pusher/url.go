package pusher

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/htmlpg/pvfll-portal/internal/constants"
)

// BuildURL returns Pusher websocket endpoint. Host overrides the cluster host,
// it may carry a scheme (ws:// for local servers).
func BuildURL(appKey, cluster, host string) string {
	base := fmt.Sprintf("wss://ws-%s.pusher.com", cluster)
	if lo.IsNotEmpty(host) {
		base = strings.TrimRight(host, "/")
		if !strings.Contains(base, "://") {
			base = "wss://" + base
		}
	}

	return fmt.Sprintf("%s/app/%s?protocol=%d&client=%s&version=%s",
		base, appKey, constants.PusherProtocol, constants.PusherClientName, constants.PusherClientVersion)
}
