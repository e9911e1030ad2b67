package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "req",
	Short: "Build and send HTTP requests from the command line.",
	Long: `req assembles HTTP requests from declarative flags or YAML request files
and executes them. Each method has its own encoding rules: GET, HEAD and
DELETE put parameters in the URL; PUT combines URL parameters with a raw
body; POST form-encodes parameters unless an explicit body is given, in
which case the body wins and parameters are dropped.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a process exit code alongside the error. Commands wrap
// their failures in it so Execute can map error classes to exit codes.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitWith(code int, err error) error {
	return &exitError{code: code, err: err}
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		code := ExitUsageError
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(code)
	}
}

var configPathFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "config file (default: .req.yaml, then ~/.req/config.yaml)")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(headCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
