package schedule

import (
	"context"
	"time"

	"dbsa/models"
)

// ScheduleService fetches one window of class times from the booking
// provider and normalizes it into the public payload.
type ScheduleService interface {
	GetSchedule(ctx context.Context, params models.ScheduleQueryParams) (*models.SchedulePayload, error)
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Upstream   UpstreamClient
	Normalizer *Normalizer
}

func (s *DefaultScheduleService) GetSchedule(ctx context.Context, params models.ScheduleQueryParams) (*models.SchedulePayload, error) {
	response, err := s.Upstream.FetchClassTimes(ctx, params)
	if err != nil {
		return nil, err
	}

	payload := s.Normalizer.BuildPayload(ctx, response, params, time.Now())
	return &payload, nil
}
