package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/requests/packages/reqfile"
)

// WatchDebounceDelay coalesces rapid editor write events into one re-send.
const WatchDebounceDelay = 300 * time.Millisecond

var sendCmd = &cobra.Command{
	Use:   "send FILE",
	Short: "Run a YAML request definition file",
	Long: `Run a request defined in a YAML file.

Examples:
  req send login.req.yaml
  req send login.req.yaml --watch
  req send login.req.yaml --extract token --record`,
	Args: cobra.ExactArgs(1),
	RunE: sendCommand,
}

var (
	sendCmdFlags sendFlags
	watchFlag    bool
)

func init() {
	registerSendFlags(sendCmd, &sendCmdFlags)
	sendCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "re-send whenever the file changes")
}

func sendCommand(cmd *cobra.Command, args []string) error {
	file := args[0]

	runOnce := func() error {
		def, err := reqfile.Load(file)
		if err != nil {
			return exitWith(ExitConfigError, err)
		}
		b, err := def.Builder()
		if err != nil {
			return exitWith(ExitConfigError, err)
		}
		return runRequest(cmd, b, &sendCmdFlags)
	}

	err := runOnce()
	if !watchFlag {
		return err
	}
	if err != nil {
		// In watch mode a failing first run is reported but not fatal; the
		// next file change gets another chance.
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return exitWith(ExitConfigError, fmt.Errorf("failed to create file watcher: %w", err))
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors that rename-on-save
	// would otherwise drop the watch.
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return exitWith(ExitConfigError, fmt.Errorf("failed to watch %s: %w", file, err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes... (press Ctrl+C to stop)\n", file)

	var debounceTimer *time.Timer
	target := filepath.Clean(file)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "\nFile changed, re-sending...\n\n")
				if err := runOnce(); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				}
			})

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", watchErr)

		case <-cmd.Context().Done():
			return nil
		}
	}
}
