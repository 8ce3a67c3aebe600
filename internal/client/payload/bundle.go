package payload

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dmitrijs2005/tasknotes/internal/common"
)

// Bundle is a ready-to-send request body paired with the shared headers.
//
// Headers is the facade's live mapping, not a copy; callers must not
// mutate it.
type Bundle struct {
	Body        []byte
	ContentType string
	Headers     *Headers
}

// NewJSONBundle encodes data as JSON and pairs it with headers.
func NewJSONBundle(data any, headers *Headers) (*Bundle, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Bundle{Body: body, ContentType: common.JSONContentType, Headers: headers}, nil
}

// Reader returns a fresh reader over the body.
func (b *Bundle) Reader() io.Reader {
	return bytes.NewReader(b.Body)
}

// NewRequest builds an HTTP request carrying the body, its content type and
// a snapshot of the headers taken at call time.
func (b *Bundle) NewRequest(ctx context.Context, method, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, b.Reader())
	if err != nil {
		return nil, err
	}
	if b.Headers != nil {
		b.Headers.ApplyTo(req.Header)
	}
	req.Header.Set("Content-Type", b.ContentType)
	return req, nil
}
