package contact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbsa/models"
)

var relayForm = models.ContactForm{
	Name:    "Jordan Smith",
	Email:   "jordan@example.com",
	Phone:   "+1 973-555-0142",
	Message: "I'd like to book a trial class.",
}

func TestSubmit_RelaysFormFields(t *testing.T) {
	var received map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		received = r.MultipartForm.Value
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	service := NewContactService(server.URL)
	require.NoError(t, service.Submit(context.Background(), relayForm))

	assert.Equal(t, []string{"Jordan Smith"}, received["name"])
	assert.Equal(t, []string{"jordan@example.com"}, received["email"])
	assert.Equal(t, []string{"+1 973-555-0142"}, received["phone"])
	assert.Equal(t, []string{"contact-page"}, received["source"])
}

func TestSubmit_OmitsEmptyPhone(t *testing.T) {
	var received map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		received = r.MultipartForm.Value
	}))
	defer server.Close()

	form := relayForm
	form.Phone = ""
	require.NoError(t, NewContactService(server.URL).Submit(context.Background(), form))
	assert.NotContains(t, received, "phone")
}

func TestSubmit_NotConfigured(t *testing.T) {
	err := NewContactService("").Submit(context.Background(), relayForm)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSubmit_UpstreamRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	err := NewContactService(server.URL).Submit(context.Background(), relayForm)
	var relayErr *RelayError
	require.True(t, errors.As(err, &relayErr))
	assert.Equal(t, ReasonUpstream, relayErr.Reason)
}

func TestSubmit_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	err := NewContactService(server.URL).Submit(context.Background(), relayForm)
	var relayErr *RelayError
	require.True(t, errors.As(err, &relayErr))
	assert.Equal(t, ReasonNetwork, relayErr.Reason)
	assert.Error(t, relayErr.Cause)
}
