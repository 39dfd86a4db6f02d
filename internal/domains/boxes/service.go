package boxes

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"

	"github.com/htmlpg/pvfll-portal/internal/entities"
)

type (
	IHTTPClientService interface {
		FetchBox(ctx context.Context, number int) (entities.Box, error)
	}
)

type Service struct {
	httpClientService IHTTPClientService
	boxCount          int
}

func NewService(httpClientService IHTTPClientService, boxCount int) *Service {
	return &Service{
		httpClientService: httpClientService,
		boxCount:          boxCount,
	}
}

// FetchBoxStatus returns status of a box. Fetch errors are stored in the box.
func (s *Service) FetchBoxStatus(ctx context.Context, number int) entities.Box {
	box, err := s.httpClientService.FetchBox(ctx, number)
	if err != nil {
		log.Warn().
			Err(err).
			Int("box", number).
			Msg("FetchBoxStatus")
		return entities.NewErrorBox(number, err)
	}

	box.Number = number
	if !box.Empty && lo.IsNotEmpty(box.Name) {
		box.Type = FileType(box.Name)
	}

	return box
}

// FetchAll fetches all boxes in parallel.
func (s *Service) FetchAll(ctx context.Context) entities.Boxes {
	p := pool.NewWithResults[entities.Box]().WithMaxGoroutines(s.boxCount)
	for number := 1; number <= s.boxCount; number++ {
		p.Go(func() entities.Box {
			return s.FetchBoxStatus(ctx, number)
		})
	}

	boxes := make(entities.Boxes, s.boxCount)
	for _, box := range p.Wait() {
		boxes[box.Number] = box
	}

	log.Debug().
		Str("boxes", fmt.Sprintf("%+v", boxes)).
		Msg("FetchAll")
	return boxes
}
