package health

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/internal/errs"
)

const (
	healthPath      = "/devices/health"
	timestampLayout = "2006-01-02T15:04:05Z"
)

// Service reports device heartbeat to the API.
type Service struct {
	client   *resty.Client
	apiBase  string
	deviceID string
	now      func() time.Time
}

func NewService(apiBase, deviceID string, timeout time.Duration) *Service {
	client := resty.New().
		SetBaseURL(apiBase).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Service{
		client:   client,
		apiBase:  apiBase,
		deviceID: deviceID,
		now:      time.Now,
	}
}

// Report posts device status.
func (s *Service) Report(ctx context.Context, connected bool) (err error) {
	if lo.IsEmpty(s.apiBase) {
		return fmt.Errorf("Report: %w", errs.ErrAPINotConfigured)
	}

	body := entities.HealthReport{
		DeviceID:  s.deviceID,
		Connected: connected,
		Timestamp: s.now().UTC().Format(timestampLayout),
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(healthPath)
	if err != nil {
		return fmt.Errorf("Report: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("Report: %d %s: %w", resp.StatusCode(), resp.Status(), errs.ErrAPIError)
	}

	log.Debug().
		Bool("connected", connected).
		Msg("Report: health reported")
	return nil
}
