package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/tasknotes/internal/client/payload"
	"github.com/dmitrijs2005/tasknotes/internal/common"
)

// Backend is what a resource handle may use from the facade.
type Backend interface {
	// ToJSON encodes data and pairs it with the shared headers.
	ToJSON(data any) (*payload.Bundle, error)
	// Headers returns the shared header mapping. Handles only read it.
	Headers() (*payload.Headers, error)
	// URL joins parts under the API root, with a trailing slash.
	URL(parts ...string) string
	HTTPClient() *http.Client
}

const maxErrorBody = 512

// send issues one request. in is JSON-encoded through the backend when not
// nil; out receives the decoded response body when not nil.
func send(ctx context.Context, b Backend, method, url string, in, out any) error {
	req, err := newRequest(ctx, b, method, url, in)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", common.JSONContentType)

	resp, err := b.HTTPClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, url, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(method, url, resp); err != nil {
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, url, err)
	}
	return nil
}

func newRequest(ctx context.Context, b Backend, method, url string, in any) (*http.Request, error) {
	if in != nil {
		bundle, err := b.ToJSON(in)
		if err != nil {
			return nil, err
		}
		return bundle.NewRequest(ctx, method, url)
	}

	headers, err := b.Headers()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	headers.ApplyTo(req.Header)
	return req, nil
}

func checkStatus(method, url string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", method, url, ErrUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, url, ErrNotFound)
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{Method: method, URL: url, Code: resp.StatusCode, Body: string(b)}
}
