package schedule

import (
	"fmt"
	"net/url"
	"time"

	"dbsa/config"
	"dbsa/models"
)

// isoInstant is the canonical wire format for instants, matching the
// millisecond-precision ISO-8601 strings the front end expects.
const isoInstant = "2006-01-02T15:04:05.000Z"

// DefaultMaxWindowDays caps the requested window when no override is configured.
const DefaultMaxWindowDays = 14

// SanitizeParams validates the inbound query window and optional filters.
// Absent `from` defaults to the start of the current UTC day, absent `to` to
// from+24h. Output instants are round-tripped to canonical form rather than
// echoing the raw input. The window cap comes from the configured
// MAX_SCHEDULE_DAYS, defaulting to DefaultMaxWindowDays when unset.
func SanitizeParams(query url.Values, now time.Time) (models.ScheduleQueryParams, error) {
	utcNow := now.UTC()
	dayStart := time.Date(utcNow.Year(), utcNow.Month(), utcNow.Day(), 0, 0, 0, 0, time.UTC)

	from := dayStart
	if raw := query.Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.ScheduleQueryParams{}, NewInvalidRangeError("Invalid date range supplied.")
		}
		from = parsed
	}

	to := from.Add(24 * time.Hour)
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.ScheduleQueryParams{}, NewInvalidRangeError("Invalid date range supplied.")
		}
		to = parsed
	}

	if !to.After(from) {
		return models.ScheduleQueryParams{}, NewInvalidRangeError("`to` must be later than `from`.")
	}

	maxDays := config.AppConfig.MaxScheduleDays
	if maxDays <= 0 {
		maxDays = DefaultMaxWindowDays
	}
	if to.Sub(from) > time.Duration(maxDays)*24*time.Hour {
		return models.ScheduleQueryParams{}, NewRangeTooLargeError(fmt.Sprintf("Date range cannot exceed %d days.", maxDays))
	}

	return models.ScheduleQueryParams{
		From:      from.UTC().Format(isoInstant),
		To:        to.UTC().Format(isoInstant),
		ProgramID: query.Get("programId"),
		CoachID:   query.Get("coachId"),
	}, nil
}
