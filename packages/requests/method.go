package requests

import "strings"

// Method is an HTTP method supported by the builder. The set is closed:
// anything outside it fails Build with an UnsupportedMethodError.
type Method string

const (
	GET    Method = "GET"
	HEAD   Method = "HEAD"
	POST   Method = "POST"
	PUT    Method = "PUT"
	DELETE Method = "DELETE"
)

// Supported reports whether m is one of the methods the builder can encode.
func (m Method) Supported() bool {
	switch m {
	case GET, HEAD, POST, PUT, DELETE:
		return true
	}
	return false
}

// ParseMethod normalizes a method string (case-insensitive). It does not
// validate membership; Build does that so the error surfaces in one place.
func ParseMethod(s string) Method {
	return Method(strings.ToUpper(strings.TrimSpace(s)))
}
