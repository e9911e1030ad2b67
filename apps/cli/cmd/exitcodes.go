package cmd

// Exit codes for the req CLI
const (
	// ExitSuccess indicates the request completed with a non-error status
	ExitSuccess = 0

	// ExitHTTPFailure indicates the server answered with a 4xx/5xx status,
	// or a response check (--schema) failed
	ExitHTTPFailure = 1

	// ExitConfigError indicates a configuration error: malformed URL or
	// proxy URI, unsupported method, or an invalid request file
	ExitConfigError = 3

	// ExitNetworkError indicates a transport-level failure (connection,
	// timeout, TLS)
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
