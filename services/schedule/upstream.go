package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"dbsa/models"
)

// upstreamPageSize is a hard cap; the client never pages past the first 100
// rows. The studio is small enough that a two-week window fits, but very
// dense schedules would silently truncate here.
const upstreamPageSize = 100

const inventorySource = "MB"

// UpstreamClient issues the booking-provider search for a sanitized window.
type UpstreamClient interface {
	FetchClassTimes(ctx context.Context, params models.ScheduleQueryParams) (*models.MindbodyListResponse, error)
}

// MindbodyClient posts the fixed-shape class_times search to the Mindbody
// marketplace gateway. Timeout and retry budget are explicit; a retry
// budget of zero means exactly one attempt per request.
type MindbodyClient struct {
	client       *retryablehttp.Client
	apiURL       string
	locationSlug string
}

func NewMindbodyClient(apiURL, locationSlug string, timeout time.Duration, retryMax int) *MindbodyClient {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = log.New(io.Discard, "", 0)
	retryClient.RetryMax = retryMax
	retryClient.HTTPClient.Timeout = timeout
	// Only transport failures are retryable. A non-2xx status is a provider
	// answer, not a failed attempt; it must reach the classification below
	// with its status intact.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}
		return false, nil
	}
	return &MindbodyClient{
		client:       retryClient,
		apiURL:       apiURL,
		locationSlug: locationSlug,
	}
}

func (c *MindbodyClient) buildSearchRequest(params models.ScheduleQueryParams) models.MindbodySearchRequest {
	return models.MindbodySearchRequest{
		Sort: "start_time",
		Page: models.MindbodyPage{Size: upstreamPageSize, Number: 1},
		Filter: models.MindbodySearchFilter{
			Radius: 0,
			StartTimeRanges: []models.MindbodyTimeRange{
				{From: params.From, To: params.To},
			},
			LocationSlugs:         []string{c.locationSlug},
			IncludeDynamicPricing: true,
			InventorySource:       []string{inventorySource},
		},
		Include: []string{"course", "staff", "location"},
	}
}

// FetchClassTimes performs exactly one search POST per inbound request.
// Non-2xx statuses and transport failures both surface as typed upstream
// errors so the caller can serve the fallback envelope.
func (c *MindbodyClient) FetchClassTimes(ctx context.Context, params models.ScheduleQueryParams) (*models.MindbodyListResponse, error) {
	body, err := json.Marshal(c.buildSearchRequest(params))
	if err != nil {
		return nil, NewUpstreamUnreachableError(err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, NewUpstreamUnreachableError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, NewUpstreamUnreachableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, NewUpstreamUnavailableError(resp.StatusCode)
	}

	var listResponse models.MindbodyListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResponse); err != nil {
		return nil, NewUpstreamUnreachableError(err)
	}
	return &listResponse, nil
}
