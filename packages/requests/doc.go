// Package requests provides a fluent builder for outbound HTTP requests.
//
// A Builder accumulates method, URL, query parameters, headers, body and
// execution settings through chained calls, and Build produces an immutable
// Request descriptor that a Client can execute:
//
//	req, err := requests.New().
//	    URL("https://api.example.com/search").
//	    Param("q", "golang").
//	    Header("Accept", "application/json").
//	    Method(requests.GET).
//	    Build()
//
// Each HTTP method has its own rule for how parameters and body interact;
// see Builder.Build for the decision table. Build never performs network
// I/O: all configuration errors (malformed URL, malformed proxy URL,
// unsupported method) surface eagerly from Build, while transport errors
// only occur later, inside Client.Do.
package requests
