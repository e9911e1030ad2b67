package requests

import "fmt"

// MalformedURLError indicates the base URL (or the URL computed from it and
// the query parameters) is not syntactically valid. It is a configuration
// error raised by Build, never a network error.
type MalformedURLError struct {
	URL string
	Err error
}

func (e *MalformedURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed URL %q: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("malformed URL %q", e.URL)
}

func (e *MalformedURLError) Unwrap() error { return e.Err }

// MalformedProxyURLError indicates the proxy URI passed to Builder.Proxy
// could not be parsed, or carried user-info that is not in name:password
// form.
type MalformedProxyURLError struct {
	URL string
	Err error
}

func (e *MalformedProxyURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed proxy URL %q: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("malformed proxy URL %q", e.URL)
}

func (e *MalformedProxyURLError) Unwrap() error { return e.Err }

// UnsupportedMethodError indicates the configured method is outside the
// closed set {GET, HEAD, POST, PUT, DELETE}.
type UnsupportedMethodError struct {
	Method Method
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported method %q", string(e.Method))
}
