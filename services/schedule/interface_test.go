package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbsa/models"
)

type stubUpstream struct {
	response *models.MindbodyListResponse
	err      error
}

func (s *stubUpstream) FetchClassTimes(context.Context, models.ScheduleQueryParams) (*models.MindbodyListResponse, error) {
	return s.response, s.err
}

func TestDefaultScheduleService_GetSchedule(t *testing.T) {
	service := &DefaultScheduleService{
		Upstream:   &stubUpstream{response: loadFixture(t)},
		Normalizer: NewNormalizer(NewMemoryEntityStore()),
	}

	payload, err := service.GetSchedule(context.Background(), testParams)
	require.NoError(t, err)

	assert.False(t, payload.Fallback)
	require.Len(t, payload.Sessions, 1)
	session := payload.Sessions[0]
	assert.Contains(t, payload.Classes, session.ClassID)
	assert.Contains(t, payload.Coaches, session.CoachID)
	assert.Contains(t, payload.Locations, session.LocationID)
	assert.Equal(t, testParams, payload.Params)
	assert.NotEmpty(t, payload.GeneratedAt)
}

func TestDefaultScheduleService_PropagatesUpstreamError(t *testing.T) {
	wantErr := NewUpstreamUnavailableError(502)
	service := &DefaultScheduleService{
		Upstream:   &stubUpstream{err: wantErr},
		Normalizer: NewNormalizer(NewMemoryEntityStore()),
	}

	_, err := service.GetSchedule(context.Background(), testParams)
	require.Error(t, err)
	assert.Equal(t, wantErr, err)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 502, upstreamErr.Status)
}
