package schedule

import (
	"context"
	"time"

	"dbsa/models"
)

// BuildPayload assembles the public success envelope from a normalized
// upstream response.
func (n *Normalizer) BuildPayload(ctx context.Context, response *models.MindbodyListResponse, params models.ScheduleQueryParams, now time.Time) models.SchedulePayload {
	classes, coaches, locations := n.NormalizeIncluded(ctx, response.Included)

	return models.SchedulePayload{
		GeneratedAt: now.UTC().Format(isoInstant),
		Params:      params,
		Sessions:    BuildSessions(response.Data),
		Classes:     classes,
		Coaches:     coaches,
		Locations:   locations,
		Fallback:    false,
	}
}

// NewFallbackPayload builds the degraded envelope. Sessions and lookup maps
// are deliberately absent so callers never assume their presence when
// fallback is set.
func NewFallbackPayload(reason string) models.FallbackPayload {
	return models.FallbackPayload{Fallback: true, Error: reason}
}
