// Package fetch performs the single HTTP GET of the fallback extraction
// path: browser-like headers, a Chrome TLS fingerprint, and transparent
// response decompression.
package fetch

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	tls "github.com/refraction-networking/utls"
)

// DefaultUserAgent mimics a common desktop Chrome. Many recipe sites block
// clients that do not look like a browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// maxBody caps the response body at 10 MB to prevent unbounded memory use.
const maxBody = 10 << 20

// chromeH1Spec is a Chrome-like TLS ClientHello with ALPN forced to
// http/1.1 only. Computed once at init time and reused for every
// connection.
var chromeH1Spec tls.ClientHelloSpec

func init() {
	spec, err := tls.UTLSIdToSpec(tls.HelloChrome_Auto)
	if err != nil {
		return
	}
	// Replace h2 with http/1.1 only in the ALPN extension so the server
	// never negotiates HTTP/2 (which Go's http.Transport cannot handle
	// over a utls connection).
	for i, ext := range spec.Extensions {
		if alpn, ok := ext.(*tls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
			spec.Extensions[i] = alpn
			break
		}
	}
	chromeH1Spec = spec
}

// Client fetches pages with a Chrome TLS fingerprint. Safe for concurrent
// use; one Client is shared across all invocations.
type Client struct {
	hc        *http.Client
	userAgent string
}

// NewClient creates a Client. timeout bounds the whole request including
// body read; userAgent overrides DefaultUserAgent when non-empty.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	transport := &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			dialer := &net.Dialer{Timeout: 10 * time.Second}
			conn, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			host, _, _ := net.SplitHostPort(addr)
			tlsConn := tls.UClient(conn, &tls.Config{ServerName: host}, tls.HelloCustom)
			if err := tlsConn.ApplyPreset(&chromeH1Spec); err != nil {
				conn.Close()
				return nil, fmt.Errorf("fetch: apply tls spec: %w", err)
			}
			if err := tlsConn.HandshakeContext(ctx); err != nil {
				conn.Close()
				return nil, err
			}
			return tlsConn, nil
		},
		ForceAttemptHTTP2: false,
	}
	return &Client{
		hc: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		userAgent: userAgent,
	}
}

// Fetch issues one GET for targetURL and returns the decoded HTML text.
// Single attempt: no retries. Transport faults, non-2xx statuses and
// decompression failures all surface as errors.
func (c *Client) Fetch(ctx context.Context, targetURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", fmt.Errorf("fetch: build request: %w", err)
	}

	// Simulate browser-like headers. Setting Accept-Encoding explicitly
	// disables net/http's transparent gzip, so decompression below is on us.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("fetch: HTTP %d for %s", resp.StatusCode, targetURL)
	}

	reader, err := decompressor(resp.Body, resp.Header.Get("Content-Encoding"))
	if err != nil {
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(reader, maxBody))
	if err != nil {
		return "", fmt.Errorf("fetch: read body: %w", err)
	}

	return string(body), nil
}

// decompressor wraps the body according to Content-Encoding.
func decompressor(body io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		return body, nil
	case "gzip":
		gr, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("fetch: gzip reader: %w", err)
		}
		return gr, nil
	case "deflate":
		return flate.NewReader(body), nil
	case "br":
		return brotli.NewReader(body), nil
	default:
		return nil, fmt.Errorf("fetch: unsupported content-encoding %q", encoding)
	}
}
