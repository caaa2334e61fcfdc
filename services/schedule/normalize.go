package schedule

import (
	"context"
	"math"
	"strconv"
	"strings"

	"dbsa/models"
)

// Sentinel ids substituted when a required relation is missing upstream.
const (
	UnknownClassID    = "unknown-class"
	UnknownLocationID = "unknown-location"
)

// Normalizer turns the heterogeneous upstream records into the canonical
// lookup tables and session list, consulting the entity store before
// constructing anything it has seen before.
type Normalizer struct {
	Store EntityStore
}

func NewNormalizer(store EntityStore) *Normalizer {
	return &Normalizer{Store: store}
}

// SanitizeNumber parses an optional numeric string. Non-numeric, non-finite
// or absent values yield nil rather than NaN or an error.
func SanitizeNumber(value *string) *float64 {
	if value == nil || *value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(*value), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil
	}
	return &parsed
}

// ParseLatLon splits a single "lat,lon" string into independent optional
// coordinates. Each component that fails to parse is nil; a malformed value
// never fails the whole record.
func ParseLatLon(latLon *string) (latitude, longitude *float64) {
	if latLon == nil || *latLon == "" {
		return nil, nil
	}
	parts := strings.Split(*latLon, ",")
	latitude = SanitizeNumber(&parts[0])
	if len(parts) > 1 {
		longitude = SanitizeNumber(&parts[1])
	}
	return latitude, longitude
}

func buildPricingOptions(options []models.MindbodyPurchaseOption) []models.PricingOption {
	pricing := make([]models.PricingOption, 0, len(options))
	for _, option := range options {
		var retail, online *float64
		if option.Pricing != nil {
			retail = SanitizeNumber(option.Pricing.Retail)
			online = SanitizeNumber(option.Pricing.Online)
		}
		pricing = append(pricing, models.PricingOption{
			ID:              option.ID,
			Name:            option.Name,
			Retail:          retail,
			Online:          online,
			IsPackage:       option.IsPackage,
			IsIntroOffer:    option.IsIntroOffer,
			IsSingleSession: option.IsSingleSession,
		})
	}
	return pricing
}

func splitDisplayName(displayName string) (firstName, lastName string) {
	if !strings.Contains(displayName, " ") {
		return "", ""
	}
	parts := strings.SplitN(displayName, " ", 2)
	return parts[0], parts[1]
}

// NormalizeIncluded builds the three lookup tables from the upstream
// included-entities array, branching on each record's declared kind.
// Unrecognized kinds are skipped.
func (n *Normalizer) NormalizeIncluded(ctx context.Context, included []models.MindbodyIncluded) (
	classes map[string]models.ScheduleClass,
	coaches map[string]models.ScheduleCoach,
	locations map[string]models.ScheduleLocation,
) {
	classes = make(map[string]models.ScheduleClass)
	coaches = make(map[string]models.ScheduleCoach)
	locations = make(map[string]models.ScheduleLocation)

	for _, item := range included {
		attrs := item.Attributes
		switch item.Type {
		case "course":
			class, ok := n.Store.GetClass(ctx, item.ID)
			if !ok {
				class = models.ScheduleClass{
					ID:          item.ID,
					Name:        attrs.Name,
					Slug:        deref(attrs.Slug),
					Category:    deref(attrs.Category),
					Subcategory: deref(attrs.Subcategory),
					Description: deref(attrs.Description),
				}
				n.Store.PutClass(ctx, class)
			}
			classes[item.ID] = class

		case "staff":
			coach, ok := n.Store.GetCoach(ctx, item.ID)
			if !ok {
				displayName := attrs.Name
				if displayName == "" {
					displayName = "Coach"
				}
				firstName, lastName := splitDisplayName(displayName)
				coach = models.ScheduleCoach{
					ID:          item.ID,
					DisplayName: displayName,
					FirstName:   firstName,
					LastName:    lastName,
				}
				n.Store.PutCoach(ctx, coach)
			}
			coaches[item.ID] = coach

		case "location":
			location, ok := n.Store.GetLocation(ctx, item.ID)
			if !ok {
				name := attrs.Name
				if name == "" {
					name = "Location"
				}
				latitude, longitude := ParseLatLon(attrs.LatLon)
				location = models.ScheduleLocation{
					ID:           item.ID,
					Name:         name,
					AddressLine1: deref(attrs.Address),
					AddressLine2: deref(attrs.Address2),
					City:         deref(attrs.City),
					State:        deref(attrs.State),
					PostalCode:   deref(attrs.PostalCode),
					Latitude:     latitude,
					Longitude:    longitude,
					Phone:        deref(attrs.Phone),
				}
				n.Store.PutLocation(ctx, location)
			}
			locations[item.ID] = location
		}
	}

	return classes, coaches, locations
}

// BuildSessions flattens the raw time-slot records. Missing course/location
// relations fall back to sentinel ids; a missing staff relation leaves the
// coach id empty rather than inventing a sentinel.
func BuildSessions(data []models.MindbodyClassTime) []models.ScheduleSession {
	sessions := make([]models.ScheduleSession, 0, len(data))
	for _, item := range data {
		attrs := item.Attributes

		openings := attrs.Openings
		if attrs.WebOpenings != nil {
			openings = *attrs.WebOpenings
		}

		sessions = append(sessions, models.ScheduleSession{
			ID:                item.ID,
			ClassID:           relationID(item.Relationships.Course, UnknownClassID),
			CoachID:           relationID(item.Relationships.Staff, ""),
			LocationID:        relationID(item.Relationships.Location, UnknownLocationID),
			Start:             attrs.StartTime,
			End:               attrs.EndTime,
			DurationMinutes:   attrs.Duration,
			Capacity:          attrs.Capacity,
			Openings:          openings,
			WaitlistAvailable: attrs.Waitlistable != 0,
			PricingOptions:    buildPricingOptions(attrs.PurchaseOptions),
		})
	}
	return sessions
}

func relationID(relation *models.MindbodyRelation, fallback string) string {
	if relation == nil || relation.Data == nil || relation.Data.ID == "" {
		return fallback
	}
	return relation.Data.ID
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
