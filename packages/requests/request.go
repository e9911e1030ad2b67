package requests

import (
	"net/url"
	"strings"
	"time"
)

// Default timeouts applied when the builder does not set them explicitly.
const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultReadTimeout    = 10 * time.Second
)

// ExecConfig is the merged execution configuration consumed by the
// transport: timeouts and, when configured, the proxy endpoint. The builder
// only carries these values through; enforcing them is the transport's job.
type ExecConfig struct {
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration

	// ProxyURL is nil when no proxy is configured. Its user-info is always
	// stripped; credentials travel separately on the Request.
	ProxyURL  *url.URL
	ProxyHost string
	ProxyPort int
}

// HeaderValue is one already-coerced header entry on a built Request.
type HeaderValue struct {
	Name  string
	Value string
}

// Request is the immutable descriptor produced by Build: the wire-level
// request plus everything the transport needs to execute it. It is a
// snapshot; mutating the builder afterwards does not affect it.
type Request struct {
	Method  Method
	URL     string
	Body    []byte // nil when the request has no entity
	Headers []HeaderValue

	Config      ExecConfig
	Transformer Transformer
	Credentials *Credentials
	Gzip        bool
	VerifyTLS   bool
}

// HasBody reports whether the request carries an entity.
func (r *Request) HasBody() bool { return r.Body != nil }

// Header returns the last value set for the named header, matching
// case-insensitively, or "" when absent.
func (r *Request) Header(name string) string {
	v := ""
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			v = h.Value
		}
	}
	return v
}
