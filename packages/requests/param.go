package requests

import (
	"fmt"
	"strconv"
)

// Param is a single query parameter or form field. Values are kept as-is
// until encoding time, when they are coerced to their string form.
// Insertion order is preserved because it determines the final query-string
// order.
type Param struct {
	Name  string
	Value any
}

// Header is a request header entry. It has the same shape and coercion rule
// as Param but is routed into the request's header table instead of the URL
// or body.
type Header struct {
	Name  string
	Value any
}

// ValueString returns the encoded string form of the parameter value.
func (p Param) ValueString() string { return coerceValue(p.Value) }

// ValueString returns the encoded string form of the header value.
func (h Header) ValueString() string { return coerceValue(h.Value) }

// coerceValue turns an arbitrary value into its wire string form.
// Booleans become "true"/"false", integers and floats their minimal decimal
// form, []byte is used verbatim, fmt.Stringer is honored, and everything
// else falls back to fmt.Sprintf("%v"). nil encodes as the empty string.
func coerceValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
