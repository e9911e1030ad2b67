package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/requests/packages/bench"
	"github.com/abdul-hamid-achik/requests/packages/requests"
)

var benchCmd = &cobra.Command{
	Use:   "bench URL",
	Short: "Send a request repeatedly and report latency percentiles",
	Long: `Send the same request repeatedly and report throughput and latency
percentiles (p50/p90/p95/p99).

Examples:
  req bench https://api.example.com/health -n 200 -c 8
  req bench https://api.example.com/search -p q=go -n 100 --rate 50
  req bench https://api.example.com/health --for 10s`,
	Args: cobra.ExactArgs(1),
	RunE: benchCommand,
}

var (
	benchCmdFlags sendFlags
	benchRequests int
	benchDuration time.Duration
	benchWorkers  int
	benchRate     float64
	benchMethod   string
)

func init() {
	registerSendFlags(benchCmd, &benchCmdFlags)
	benchCmd.Flags().IntVarP(&benchRequests, "requests", "n", 0, "total number of requests to send")
	benchCmd.Flags().DurationVar(&benchDuration, "for", 0, "run for this long instead of a fixed count")
	benchCmd.Flags().IntVarP(&benchWorkers, "concurrency", "c", 1, "number of concurrent workers")
	benchCmd.Flags().Float64Var(&benchRate, "rate", 0, "request rate limit per second (0 = unlimited)")
	benchCmd.Flags().StringVarP(&benchMethod, "method", "X", "GET", "HTTP method to benchmark")
}

func benchCommand(cmd *cobra.Command, args []string) error {
	b, err := benchCmdFlags.builder(args[0])
	if err != nil {
		return err
	}

	req, err := b.Method(requests.ParseMethod(benchMethod)).Build()
	if err != nil {
		return classifyBuildError(err)
	}

	report, err := bench.Run(cmd.Context(), requests.NewClient(), req, bench.Config{
		Requests:    benchRequests,
		Duration:    benchDuration,
		Concurrency: benchWorkers,
		Rate:        benchRate,
	})
	if err != nil {
		return exitWith(ExitUsageError, err)
	}

	printBenchReport(cmd, report)

	if report.Errors > 0 {
		return exitWith(ExitHTTPFailure, fmt.Errorf("%d of %d requests failed", report.Errors, report.Total))
	}
	return nil
}

func printBenchReport(cmd *cobra.Command, r *bench.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nRequests:  %d (%d failed)\n", r.Total, r.Errors)
	fmt.Fprintf(out, "Elapsed:   %v\n", r.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "Rate:      %.1f req/s\n\n", r.RPS)
	fmt.Fprintf(out, "Latency:   min %v, mean %v, max %v\n",
		r.Min.Round(time.Microsecond), r.Mean.Round(time.Microsecond), r.Max.Round(time.Microsecond))
	fmt.Fprintf(out, "           p50 %v, p90 %v, p95 %v, p99 %v\n",
		r.P50.Round(time.Microsecond), r.P90.Round(time.Microsecond),
		r.P95.Round(time.Microsecond), r.P99.Round(time.Microsecond))
}
