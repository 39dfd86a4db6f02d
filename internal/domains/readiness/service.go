package readiness

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/internal/errs"
)

type (
	INetworkService interface {
		DeviceState(ctx context.Context) (entities.DeviceState, error)
	}
)

// Service waits until the access point interface is operational.
type Service struct {
	networkService INetworkService
}

func NewService(networkService INetworkService) *Service {
	return &Service{
		networkService: networkService,
	}
}

// WaitReady polls interface state every interval until it is connected.
// Returns errs.ErrInterfaceNotReady when timeout expires.
func (s *Service) WaitReady(ctx context.Context, timeout, interval time.Duration) (err error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastState string
	for {
		state, stateErr := s.networkService.DeviceState(ctx)
		switch {
		case stateErr != nil:
			lastState = stateErr.Error()
			log.Debug().
				Err(stateErr).
				Msg("WaitReady: state unavailable")
		case state.IsConnected():
			log.Info().
				Str("state", state.String()).
				Msg("WaitReady: interface ready")
			return nil
		default:
			lastState = state.String()
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("WaitReady: %w", ctx.Err())
		case <-deadline.C:
			return fmt.Errorf("WaitReady: %w after %s (last state: %s)", errs.ErrInterfaceNotReady, timeout, lastState)
		case <-ticker.C:
		}
	}
}
