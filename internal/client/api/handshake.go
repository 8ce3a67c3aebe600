package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/tasknotes/internal/common"
)

// Handshaker obtains the CSRF token the backend expects on every request.
type Handshaker interface {
	Handshake(ctx context.Context) (string, error)
}

// HTTPHandshaker fetches <root>/settings/ with the client's cookie jar,
// i.e. as a credentialed request against the API origin.
type HTTPHandshaker struct {
	client *http.Client
	url    string
}

func NewHTTPHandshaker(client *http.Client, settingsURL string) *HTTPHandshaker {
	return &HTTPHandshaker{client: client, url: settingsURL}
}

type settingsResponse struct {
	CSRFToken *string `json:"csrftoken"`
}

// Handshake returns a *NetworkError when the request cannot be made and a
// *ProtocolError when the response is not a settings document.
func (h *HTTPHandshaker) Handshake(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return "", &NetworkError{URL: h.url, Err: err}
	}
	req.Header.Set("Accept", common.JSONContentType)

	resp, err := h.client.Do(req)
	if err != nil {
		return "", &NetworkError{URL: h.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &ProtocolError{URL: h.url, Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	var body settingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &ProtocolError{URL: h.url, Reason: "malformed settings document", Err: err}
	}
	if body.CSRFToken == nil {
		return "", &ProtocolError{URL: h.url, Reason: "csrftoken missing"}
	}
	return *body.CSRFToken, nil
}

// StubHandshaker performs no request and yields an empty token. It matches
// backends that do not enforce CSRF.
type StubHandshaker struct{}

func (StubHandshaker) Handshake(ctx context.Context) (string, error) {
	return "", nil
}
