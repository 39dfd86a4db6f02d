package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotPrivileged     = errors.New("must be run as root")
	ErrUnknownVariant    = errors.New("unknown dns variant")
	ErrInterfaceNotReady = errors.New("interface not ready")
	ErrChecksFailed      = errors.New("verification checks failed")
)

var (
	ErrProfileNotFound = errors.New("connection profile not found")
	ErrInvalidProfile  = errors.New("invalid connection profile")
)

var (
	ErrPusherNotConfigured = errors.New("pusher app key is not set")
	ErrPusherConnect       = errors.New("pusher connection failed")
)

var (
	ErrAPIError = fmt.Errorf("api error")
)

var (
	ErrAPINotConfigured = errors.New("api base url is not set")
)
