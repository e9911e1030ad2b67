package requests

import (
	"fmt"
	"net/url"
	"strings"
)

// buildURL assembles the final request URI from a base URL and an ordered
// parameter list. Query parameters already present in the base URL are kept
// in place; new parameters are appended after them in insertion order.
//
// Encoding convention: keys and values go through url.QueryEscape, so
// reserved characters are percent-encoded and a space becomes "+". This is
// the same convention used for form-encoded POST bodies, so a produced URI
// always round-trips through url.ParseQuery.
func buildURL(base string, params []Param) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", &MalformedURLError{URL: base, Err: err}
	}
	if err := checkURL(u); err != nil {
		return "", &MalformedURLError{URL: base, Err: err}
	}
	if len(params) == 0 {
		return u.String(), nil
	}

	var q strings.Builder
	q.WriteString(u.RawQuery)
	for _, p := range params {
		if q.Len() > 0 {
			q.WriteByte('&')
		}
		q.WriteString(url.QueryEscape(p.Name))
		q.WriteByte('=')
		q.WriteString(url.QueryEscape(p.ValueString()))
	}
	u.RawQuery = q.String()
	return u.String(), nil
}

// checkURL rejects URLs that url.Parse tolerates but no transport can use.
func checkURL(u *url.URL) error {
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q (http and https only)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

// encodeForm produces an application/x-www-form-urlencoded body from the
// parameter list, preserving insertion order.
func encodeForm(params []Param) []byte {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.ValueString()))
	}
	return []byte(b.String())
}
