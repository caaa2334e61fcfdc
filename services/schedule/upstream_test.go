package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbsa/models"
)

var testParams = models.ScheduleQueryParams{
	From: "2025-10-19T04:00:00.000Z",
	To:   "2025-10-19T08:00:00.000Z",
}

func TestMindbodyClient_FetchClassTimes(t *testing.T) {
	var captured models.MindbodySearchRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(mindbodyFixture))
	}))
	defer server.Close()

	client := NewMindbodyClient(server.URL, "different-breed-sports-academy", 5*time.Second, 0)
	response, err := client.FetchClassTimes(context.Background(), testParams)
	require.NoError(t, err)

	require.Len(t, response.Data, 1)
	assert.Equal(t, "340788312", response.Data[0].ID)
	assert.Len(t, response.Included, 3)

	// Fixed-shape filter body.
	assert.Equal(t, "start_time", captured.Sort)
	assert.Equal(t, models.MindbodyPage{Size: 100, Number: 1}, captured.Page)
	assert.Equal(t, []string{"different-breed-sports-academy"}, captured.Filter.LocationSlugs)
	assert.Equal(t, []string{"MB"}, captured.Filter.InventorySource)
	assert.True(t, captured.Filter.IncludeDynamicPricing)
	assert.Equal(t, []string{"course", "staff", "location"}, captured.Include)
	require.Len(t, captured.Filter.StartTimeRanges, 1)
	assert.Equal(t, models.MindbodyTimeRange{From: testParams.From, To: testParams.To}, captured.Filter.StartTimeRanges[0])
}

func TestMindbodyClient_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewMindbodyClient(server.URL, "different-breed-sports-academy", 5*time.Second, 0)
	_, err := client.FetchClassTimes(context.Background(), testParams)
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, CodeUpstreamUnavailable, upstreamErr.Code)
	assert.Equal(t, http.StatusBadGateway, upstreamErr.Status)
}

func TestMindbodyClient_DoesNotRetryServerErrors(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	// Even with a retry budget, a non-2xx answer is classified, not retried.
	client := NewMindbodyClient(server.URL, "different-breed-sports-academy", 5*time.Second, 2)
	_, err := client.FetchClassTimes(context.Background(), testParams)
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, CodeUpstreamUnavailable, upstreamErr.Code)
	assert.Equal(t, http.StatusBadGateway, upstreamErr.Status)
	assert.Equal(t, 1, attempts)
}

func TestMindbodyClient_TransportFailure(t *testing.T) {
	// Closed server: the request never completes.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewMindbodyClient(server.URL, "different-breed-sports-academy", time.Second, 0)
	_, err := client.FetchClassTimes(context.Background(), testParams)
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, CodeUpstreamUnreachable, upstreamErr.Code)
	assert.Error(t, upstreamErr.Cause)
}

func TestMindbodyClient_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewMindbodyClient(server.URL, "different-breed-sports-academy", 5*time.Second, 0)
	_, err := client.FetchClassTimes(context.Background(), testParams)
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, CodeUpstreamUnreachable, upstreamErr.Code)
}
