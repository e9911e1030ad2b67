// Package cmd implements the req CLI commands using Cobra.
//
// Available commands:
//   - get/post/put/delete/head: Build and send a single request
//   - send: Run a YAML request definition file, optionally watching it
//   - bench: Send a request repeatedly and report latency percentiles
//   - history: List, show or clear recorded executions
//   - version: Show req version information
//
// Every sending command shares the same request-shaping flags (params,
// headers, body, proxy, timeouts, gzip, TLS policy) plus response
// post-processing (--extract, --schema) and recording (--record).
package cmd
