package httpclient

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/internal/errs"
)

const (
	boxFilesPath = "/boxes/{number}/files"
)

type Service struct {
	client  *resty.Client
	apiBase string
}

func NewService(apiBase string, timeout time.Duration) *Service {
	client := resty.New().
		SetBaseURL(apiBase).
		SetTimeout(timeout).
		SetRetryCount(constants.BoxFetchRetryCount).
		SetRetryWaitTime(constants.BoxFetchRetryWait).
		SetHeader("Accept", "application/json")

	return &Service{
		client:  client,
		apiBase: apiBase,
	}
}

// FetchBox fetches file status of a single box.
func (s *Service) FetchBox(ctx context.Context, number int) (box entities.Box, err error) {
	if lo.IsEmpty(s.apiBase) {
		return box, fmt.Errorf("FetchBox: %w", errs.ErrAPINotConfigured)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("number", strconv.Itoa(number)).
		SetResult(&box).
		ForceContentType("application/json").
		Get(boxFilesPath)
	if err != nil {
		return box, fmt.Errorf("FetchBox: %w", err)
	}

	if resp.IsError() {
		return box, fmt.Errorf("FetchBox: %d %s: %w", resp.StatusCode(), resp.Status(), errs.ErrAPIError)
	}

	box.Number = number
	return box, nil
}
