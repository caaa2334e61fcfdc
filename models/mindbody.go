package models

// Types mirroring the Mindbody marketplace gateway search response
// ({data: [...], included: [...]}).

// MindbodyListResponse is the top-level upstream search response.
type MindbodyListResponse struct {
	Data     []MindbodyClassTime `json:"data"`
	Included []MindbodyIncluded  `json:"included"`
}

// MindbodyClassTime is one raw time-slot record.
type MindbodyClassTime struct {
	ID            string                     `json:"id"`
	Type          string                     `json:"type"`
	Attributes    MindbodyClassTimeAttrs     `json:"attributes"`
	Relationships MindbodyClassTimeRelations `json:"relationships"`
}

type MindbodyClassTimeAttrs struct {
	Category        string                   `json:"category"`
	Subcategory     string                   `json:"subcategory"`
	Waitlistable    int                      `json:"waitlistable"`
	Duration        int                      `json:"duration"`
	Openings        int                      `json:"openings"`
	WebOpenings     *int                     `json:"webOpenings"`
	Capacity        int                      `json:"capacity"`
	StartTime       string                   `json:"startTime"`
	EndTime         string                   `json:"endTime"`
	PurchaseOptions []MindbodyPurchaseOption `json:"purchaseOptions"`
}

type MindbodyClassTimeRelations struct {
	Course   *MindbodyRelation `json:"course"`
	Location *MindbodyRelation `json:"location"`
	Staff    *MindbodyRelation `json:"staff"`
}

// MindbodyRelation wraps the JSON:API style {data: {id}} relationship shape;
// Data is nil when the relation is present but empty.
type MindbodyRelation struct {
	Data *MindbodyRelationData `json:"data"`
}

type MindbodyRelationData struct {
	ID string `json:"id"`
}

// MindbodyPurchaseOption is a raw pricing option; prices arrive as strings.
type MindbodyPurchaseOption struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	IsPackage       bool             `json:"isPackage"`
	IsIntroOffer    bool             `json:"isIntroOffer"`
	IsSingleSession bool             `json:"isSingleSession"`
	Pricing         *MindbodyPricing `json:"pricing"`
}

type MindbodyPricing struct {
	Retail *string `json:"retail"`
	Online *string `json:"online"`
}

// MindbodyIncluded is one heterogeneous related entity. Type is one of
// "course", "staff" or "location"; unrecognized kinds are skipped by the
// normalizer. Attributes carries the superset of fields across kinds.
type MindbodyIncluded struct {
	ID         string                `json:"id"`
	Type       string                `json:"type"`
	Attributes MindbodyIncludedAttrs `json:"attributes"`
}

type MindbodyIncludedAttrs struct {
	// course
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
	Slug        *string `json:"slug"`

	// staff
	IdentitySlug *string `json:"identitySlug"`

	// location
	Address    *string `json:"address"`
	Address2   *string `json:"address2"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postalCode"`
	Phone      *string `json:"phone"`
	LatLon     *string `json:"latLon"`
}

// MindbodySearchRequest is the fixed-shape filter body sent to the upstream
// search endpoint.
type MindbodySearchRequest struct {
	Sort    string               `json:"sort"`
	Page    MindbodyPage         `json:"page"`
	Filter  MindbodySearchFilter `json:"filter"`
	Include []string             `json:"include"`
}

type MindbodyPage struct {
	Size   int `json:"size"`
	Number int `json:"number"`
}

type MindbodySearchFilter struct {
	Radius                int                 `json:"radius"`
	StartTimeRanges       []MindbodyTimeRange `json:"startTimeRanges"`
	LocationSlugs         []string            `json:"locationSlugs"`
	IncludeDynamicPricing bool                `json:"include_dynamic_pricing"`
	InventorySource       []string            `json:"inventory_source"`
}

type MindbodyTimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}
