package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-faster/errors"
)

// Relay delivers a validated contact message.
type Relay interface {
	Send(ctx context.Context, m Message) error
}

// EmailJSRelay sends messages through the EmailJS REST API, the same
// provider the public site templates are registered with.
type EmailJSRelay struct {
	endpoint   string
	serviceID  string
	templateID string
	publicKey  string
	client     *http.Client
}

var _ Relay = (*EmailJSRelay)(nil)

// DefaultEndpoint is the hosted EmailJS send API.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// NewEmailJSRelay creates a relay for the given EmailJS account. endpoint
// may be empty to use DefaultEndpoint; client may be nil to use
// http.DefaultClient.
func NewEmailJSRelay(endpoint, serviceID, templateID, publicKey string, client *http.Client) *EmailJSRelay {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &EmailJSRelay{
		endpoint:   endpoint,
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		client:     client,
	}
}

type emailJSPayload struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Send posts the message to the template registered for the contact form.
// An empty phone number is replaced with PhoneFallback.
func (r *EmailJSRelay) Send(ctx context.Context, m Message) error {
	phone := m.Phone
	if phone == "" {
		phone = PhoneFallback
	}

	body, err := json.Marshal(emailJSPayload{
		ServiceID:  r.serviceID,
		TemplateID: r.templateID,
		UserID:     r.publicKey,
		TemplateParams: templateParams{
			FromName:  m.Name,
			FromEmail: m.Email,
			Phone:     phone,
			Subject:   m.Subject,
			Message:   m.Body,
		},
	})
	if err != nil {
		return errors.Wrap(err, "encode payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send mail")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("mail provider replied %d: %s", resp.StatusCode, msg)
	}
	return nil
}
