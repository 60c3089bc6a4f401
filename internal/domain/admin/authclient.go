package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-faster/errors"
)

// HTTPAuthenticator signs operators in against a GoTrue-style auth endpoint
// (the hosted backend's password grant). Only the user identity is kept;
// tokens issued by the backend are not reused.
type HTTPAuthenticator struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPAuthenticator creates an authenticator for the given auth base URL
// and publishable API key. client may be nil to use http.DefaultClient.
func NewHTTPAuthenticator(baseURL, apiKey string, client *http.Client) *HTTPAuthenticator {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPAuthenticator{baseURL: baseURL, apiKey: apiKey, client: client}
}

type passwordGrantRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type passwordGrantResponse struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// SignIn exchanges credentials for the operator identity. Any non-200
// answer maps to ErrUnauthorized; transport failures are wrapped.
func (a *HTTPAuthenticator) SignIn(ctx context.Context, email, password string) (Operator, error) {
	body, err := json.Marshal(passwordGrantRequest{Email: email, Password: password})
	if err != nil {
		return Operator{}, errors.Wrap(err, "encode credentials")
	}

	url := a.baseURL + "/auth/v1/token?grant_type=password"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Operator{}, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return Operator{}, errors.Wrap(err, "auth request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return Operator{}, ErrUnauthorized
	}

	var grant passwordGrantResponse
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return Operator{}, errors.Wrap(err, "decode auth response")
	}
	if grant.User.ID == "" {
		return Operator{}, ErrUnauthorized
	}

	return Operator{ID: grant.User.ID, Email: grant.User.Email}, nil
}
