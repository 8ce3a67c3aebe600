// Package transport builds the HTTP client shared by the API facade and
// its resource handles.
package transport

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/publicsuffix"
)

// Options configure BuildHTTPClient. The zero value is usable.
type Options struct {
	// Timeout bounds every request, zero means none.
	Timeout time.Duration
	// CAPath optionally points to a PEM bundle trusted in addition to
	// the system roots.
	CAPath string
}

// BuildHTTPClient returns a client with a cookie jar, so session cookies
// set by the backend are sent back like a browser's same-origin
// credentials, and with HTTP/2 negotiated over TLS.
func BuildHTTPClient(opts Options) (*http.Client, error) {
	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
	if opts.CAPath != "" {
		pool, err := loadCAPool(opts.CAPath)
		if err != nil {
			return nil, err
		}
		tlsConfig.RootCAs = pool
	}

	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		TLSClientConfig:       tlsConfig,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
	if err := http2.ConfigureTransport(tr); err != nil {
		return nil, fmt.Errorf("failed to enable HTTP/2: %w", err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &http.Client{
		Transport: tr,
		Jar:       jar,
		Timeout:   opts.Timeout,
	}, nil
}

func loadCAPool(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("failed to parse CA certificate %s", path)
	}
	return pool, nil
}
