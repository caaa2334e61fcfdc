package contact

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"time"

	"dbsa/models"
)

// ContactService relays a validated contact form to the third-party form
// submission service.
type ContactService interface {
	Submit(ctx context.Context, form models.ContactForm) error
}

// DefaultContactService implements ContactService against a Formspree-style
// endpoint.
type DefaultContactService struct {
	Endpoint string
	Client   *http.Client
}

func NewContactService(endpoint string) *DefaultContactService {
	return &DefaultContactService{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit posts the form fields upstream as multipart form data. The caller
// is expected to have validated the form already.
func (s *DefaultContactService) Submit(ctx context.Context, form models.ContactForm) error {
	if s.Endpoint == "" {
		return ErrNotConfigured
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("name", form.Name)
	writer.WriteField("email", form.Email)
	writer.WriteField("message", form.Message)
	if form.Phone != "" {
		writer.WriteField("phone", form.Phone)
	}
	writer.WriteField("source", "contact-page")
	if err := writer.Close(); err != nil {
		return &RelayError{Reason: ReasonNetwork, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, &body)
	if err != nil {
		return &RelayError{Reason: ReasonNetwork, Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return &RelayError{Reason: ReasonNetwork, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &RelayError{Reason: ReasonUpstream}
	}
	return nil
}
