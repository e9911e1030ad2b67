package requests

import (
	"encoding/json"
	"strings"
	"time"
)

// Response is the raw result of executing a Request: status, headers and
// the fully-read byte body, plus how long the round trip took.
type Response struct {
	StatusCode int
	Status     string
	Headers    map[string]string
	Body       []byte
	Duration   time.Duration
}

// BodyString returns the response body as text.
func (r *Response) BodyString() string {
	return string(r.Body)
}

// BodyJSON unmarshals the response body into v.
func (r *Response) BodyJSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Header returns the named response header, matching case-insensitively.
func (r *Response) Header(key string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// ContentType returns the Content-Type response header.
func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsClientError reports whether the status code is in the 4xx range.
func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError reports whether the status code is 5xx.
func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500
}

// Transformer converts a raw response into a caller-defined result. It runs
// after a successful transport round trip; transport errors never reach it.
type Transformer func(*Response) (any, error)

// StringTransformer returns the response body as text. It is the default
// when a Builder sets no transformer.
func StringTransformer(resp *Response) (any, error) {
	return resp.BodyString(), nil
}

// JSONTransformer decodes the response body as arbitrary JSON.
func JSONTransformer(resp *Response) (any, error) {
	var v any
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Transform applies the request's transformer to resp, falling back to
// StringTransformer when none was configured.
func (r *Request) Transform(resp *Response) (any, error) {
	if r.Transformer != nil {
		return r.Transformer(resp)
	}
	return StringTransformer(resp)
}
