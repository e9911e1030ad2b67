package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/requests/packages/requests"
)

// newMethodCommand builds one of the method commands; they differ only in
// the method they fix and their help text.
func newMethodCommand(method requests.Method, short, long string) *cobra.Command {
	flags := &sendFlags{}
	cmd := &cobra.Command{
		Use:   strings.ToLower(string(method)) + " URL",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := flags.builder(args[0])
			if err != nil {
				return err
			}
			return runRequest(cmd, b.Method(method), flags)
		},
	}
	registerSendFlags(cmd, flags)
	return cmd
}

var getCmd = newMethodCommand(requests.GET,
	"Send a GET request",
	`Send a GET request. Parameters are appended to the URL's query string in
the order given; any body flags are ignored.

Examples:
  req get https://api.example.com/users -p page=2 -p limit=10
  req get https://api.example.com/users/1 --extract name`)

var headCmd = newMethodCommand(requests.HEAD,
	"Send a HEAD request",
	`Send a HEAD request. Parameters are appended to the URL's query string;
the response has no body.

Examples:
  req head https://example.com/large-file -i`)

var postCmd = newMethodCommand(requests.POST,
	"Send a POST request",
	`Send a POST request. Without --data/--data-file, parameters are
form-encoded into the body and Content-Type is set to
application/x-www-form-urlencoded. With an explicit body, the body is sent
verbatim and parameters are dropped.

Examples:
  req post https://api.example.com/login -p user=alice -p pass=secret
  req post https://api.example.com/users -d '{"name":"alice"}' -H 'Content-Type: application/json'`)

var putCmd = newMethodCommand(requests.PUT,
	"Send a PUT request",
	`Send a PUT request. Parameters go into the URL's query string and may
coexist with a raw body.

Examples:
  req put https://api.example.com/users/1 -p version=3 --data-file user.json`)

var deleteCmd = newMethodCommand(requests.DELETE,
	"Send a DELETE request",
	`Send a DELETE request. Parameters are appended to the URL's query
string; any body flags are ignored.

Examples:
  req delete https://api.example.com/users/1`)
