package requests

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client executes built Request descriptors. The zero-value-ish DefaultClient
// is ready to use; NewClient exists for callers that want default headers or
// per-request IDs applied on top of every descriptor.
//
// A Client is safe for concurrent use.
type Client struct {
	defaultHeaders []HeaderValue
	requestID      bool
}

// DefaultClient is the Client used by the Builder convenience terminals
// when none is supplied.
var DefaultClient = NewClient()

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a Client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithDefaultHeader adds a header applied to every executed request, before
// the descriptor's own headers.
func WithDefaultHeader(name, value string) ClientOption {
	return func(c *Client) {
		c.defaultHeaders = append(c.defaultHeaders, HeaderValue{Name: name, Value: value})
	}
}

// WithRequestID stamps every executed request with a fresh X-Request-ID.
func WithRequestID() ClientOption {
	return func(c *Client) {
		c.requestID = true
	}
}

// Do executes the descriptor and returns the raw response. Transport-level
// failures (connection refused, timeout, TLS) are returned unmodified; the
// only errors this layer adds are from reading the response body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpClient := c.httpClient(req)

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), req.URL, body)
	if err != nil {
		return nil, err
	}

	for _, h := range c.defaultHeaders {
		httpReq.Header.Set(h.Name, h.Value)
	}
	if c.requestID {
		httpReq.Header.Set("X-Request-ID", uuid.New().String())
	}
	// Descriptor headers are applied in insertion order, so for repeated
	// names the last one wins.
	for _, h := range req.Headers {
		httpReq.Header.Set(h.Name, h.Value)
	}
	if req.Credentials != nil && httpReq.URL.Scheme == "http" {
		// Plain-HTTP requests are sent to the proxy directly, so the
		// credentials ride on the request itself. Tunneled (https) requests
		// carry them on the CONNECT instead; see httpClient.
		httpReq.Header.Set("Proxy-Authorization", basicAuth(req.Credentials))
	}

	start := time.Now()
	httpResp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(httpResp.Header))
	for k := range httpResp.Header {
		headers[k] = httpResp.Header.Get(k)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    headers,
		Body:       respBody,
		Duration:   time.Since(start),
	}, nil
}

// httpClient builds an http.Client from the descriptor's execution
// configuration. The connect timeout bounds dialing, the read timeout
// bounds the wait for response headers; redirects are not followed.
func (c *Client) httpClient(req *Request) *http.Client {
	cfg := req.Config

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
		ResponseHeaderTimeout: cfg.ReadTimeout,
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		// When gzip is requested the transport asks for it and inflates the
		// body transparently; otherwise compression is not negotiated.
		DisableCompression: !req.Gzip,
	}

	if !req.VerifyTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	if cfg.ProxyURL != nil {
		transport.Proxy = http.ProxyURL(cfg.ProxyURL)
		if req.Credentials != nil {
			// CONNECT tunnels need the credentials on the CONNECT itself.
			transport.ProxyConnectHeader = http.Header{
				"Proxy-Authorization": []string{basicAuth(req.Credentials)},
			}
		}
	}

	return &http.Client{
		Transport: transport,
		CheckRedirect: func(r *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func basicAuth(c *Credentials) string {
	raw := c.Username + ":" + c.Password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
}
