package models

// ScheduleQueryParams are the sanitized query parameters accepted by the
// schedule proxy. From/To are canonical ISO-8601 UTC instants.
type ScheduleQueryParams struct {
	From      string `json:"from"`
	To        string `json:"to"`
	ProgramID string `json:"programId,omitempty"`
	CoachID   string `json:"coachId,omitempty"`
}

// SchedulePayload is the wire contract returned by the proxy. When Fallback
// is true the normalized fields are absent and the front end renders the
// provider's own widget instead.
type SchedulePayload struct {
	GeneratedAt string                      `json:"generatedAt"`
	Params      ScheduleQueryParams         `json:"params"`
	Sessions    []ScheduleSession           `json:"sessions"`
	Classes     map[string]ScheduleClass    `json:"classes"`
	Coaches     map[string]ScheduleCoach    `json:"coaches"`
	Locations   map[string]ScheduleLocation `json:"locations"`
	Fallback    bool                        `json:"fallback"`
}

// FallbackPayload is the degraded envelope served with a 503 when the
// upstream provider is unavailable.
type FallbackPayload struct {
	Fallback bool   `json:"fallback"`
	Error    string `json:"error"`
}

// ScheduleSession is a single bookable time slot. CoachID is empty when no
// staff is assigned; ClassID/LocationID fall back to sentinel ids when the
// upstream record omits the relation.
type ScheduleSession struct {
	ID                string          `json:"id"`
	ClassID           string          `json:"classId"`
	CoachID           string          `json:"coachId,omitempty"`
	LocationID        string          `json:"locationId"`
	Start             string          `json:"start"`
	End               string          `json:"end"`
	DurationMinutes   int             `json:"durationMinutes"`
	Capacity          int             `json:"capacity"`
	Openings          int             `json:"openings"`
	WaitlistAvailable bool            `json:"waitlistAvailable"`
	PricingOptions    []PricingOption `json:"pricingOptions"`
}

// PricingOption describes one purchase option for a session. Retail/Online
// are null when the upstream price string is absent or non-numeric.
type PricingOption struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Retail          *float64 `json:"retail"`
	Online          *float64 `json:"online"`
	IsPackage       bool     `json:"isPackage"`
	IsIntroOffer    bool     `json:"isIntroOffer"`
	IsSingleSession bool     `json:"isSingleSession"`
}

// ScheduleClass is class/course metadata keyed by session ClassID.
type ScheduleClass struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Description string `json:"description,omitempty"`
}

// ScheduleCoach is coach/staff metadata keyed by session CoachID.
type ScheduleCoach struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ScheduleLocation is gym/studio metadata keyed by session LocationID.
type ScheduleLocation struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	AddressLine1 string   `json:"addressLine1,omitempty"`
	AddressLine2 string   `json:"addressLine2,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Phone        string   `json:"phone,omitempty"`
}
