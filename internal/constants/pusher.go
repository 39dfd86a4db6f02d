package constants

import (
	"time"
)

const (
	DefaultPusherCluster = "us2"
	DefaultPusherChannel = "garden"
	PusherProtocol       = 7
	PusherClientName     = "pvfll-go"
	PusherClientVersion  = "1.0"
)

const (
	// in events.
	PusherEventConnectionEstablished = "pusher:connection_established"
	PusherEventError                 = "pusher:error"
	PusherEventPing                  = "pusher:ping"
	PusherEventPong                  = "pusher:pong"
	PusherEventSubscriptionSucceeded = "pusher_internal:subscription_succeeded"
	PusherEventFileUploaded          = "file-uploaded"
	PusherEventFileDeleted           = "file-deleted"

	// out events.
	PusherEventSubscribe = "pusher:subscribe"
)

const (
	PusherConnectTimeout  = 10 * time.Second
	PusherActivityTimeout = 120 * time.Second
	PusherPongWait        = 30 * time.Second
	PusherWriteWait       = 5 * time.Second
)
