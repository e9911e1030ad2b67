package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/requests/packages/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded request executions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent executions, newest first",
	RunE:  historyListCommand,
}

var historyShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one recorded execution",
	Args:  cobra.ExactArgs(1),
	RunE:  historyShowCommand,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded executions",
	RunE:  historyClearCommand,
}

var (
	historyDBFlag    string
	historyLimitFlag int
)

func init() {
	historyCmd.PersistentFlags().StringVar(&historyDBFlag, "history-db", "", "history database path (default ~/.req/history.db)")
	historyListCmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", 50, "maximum number of entries to list")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func openHistory() (*history.Store, error) {
	path := historyDBFlag
	if path == "" {
		if cfg, _ := loadDefaults(); cfg != nil {
			path = cfg.HistoryDB
		}
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, exitWith(ExitConfigError, err)
		}
		path = filepath.Join(home, ".req", "history.db")
	}
	store, err := history.Open(path)
	if err != nil {
		return nil, exitWith(ExitConfigError, err)
	}
	return store, nil
}

func historyListCommand(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(historyLimitFlag)
	if err != nil {
		return exitWith(ExitConfigError, err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recorded executions.")
		return nil
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for _, e := range entries {
		status := green(fmt.Sprintf("%d", e.StatusCode))
		if e.Error != "" {
			status = red("ERR")
		} else if e.StatusCode >= 400 {
			status = red(fmt.Sprintf("%d", e.StatusCode))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-6s %s  (%dms)\n",
			e.ID[:8], e.ExecutedAt.Format("2006-01-02 15:04:05"), e.Method, e.URL, e.DurationMS)
		fmt.Fprintf(cmd.OutOrStdout(), "          status: %s\n", status)
	}
	return nil
}

func historyShowCommand(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Get(args[0])
	if errors.Is(err, sql.ErrNoRows) {
		return exitWith(ExitUsageError, fmt.Errorf("no history entry with id %q", args[0]))
	}
	if err != nil {
		return exitWith(ExitConfigError, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:        %s\n", entry.ID)
	fmt.Fprintf(out, "Executed:  %s\n", entry.ExecutedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(out, "Request:   %s %s\n", entry.Method, entry.URL)
	if entry.Error != "" {
		fmt.Fprintf(out, "Error:     %s\n", entry.Error)
	} else {
		fmt.Fprintf(out, "Status:    %d\n", entry.StatusCode)
		fmt.Fprintf(out, "Duration:  %dms\n", entry.DurationMS)
	}
	return nil
}

func historyClearCommand(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Clear()
	if err != nil {
		return exitWith(ExitConfigError, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries.\n", n)
	return nil
}
