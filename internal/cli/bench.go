package cli

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/spf13/cobra"

	"github.com/gistkit/gistkit/gists"
)

var benchCmd = &cobra.Command{
	Use:   "bench [ID]",
	Short: "Measure API latency with repeated requests",
	Long: `Bench issues the same request repeatedly and reports latency
percentiles. Without an ID it fetches the public gists listing;
with an ID it fetches that gist.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		iterations, _ := cmd.Flags().GetInt("iterations")
		if iterations <= 0 {
			fail(fmt.Errorf("iterations must be positive, got %d", iterations))
		}

		svc, _, err := newService(cmd)
		if err != nil {
			fail(err)
		}

		var id gists.ID
		if len(args) == 1 {
			if id, err = gists.NewID(args[0]); err != nil {
				fail(err)
			}
		}

		// Range 1 microsecond to 1 minute, 3 significant figures
		hist := hdrhistogram.New(1, time.Minute.Microseconds(), 3)
		failures := 0

		for i := 0; i < iterations; i++ {
			ctx, cancel := requestContext(cmd)
			start := time.Now()

			if id != "" {
				_, err = svc.Get(ctx, id, nil)
			} else {
				it := svc.Public(gists.Options{"per_page": 1})
				_, err = collect(ctx, it, 1)
			}
			elapsed := time.Since(start)
			cancel()

			if err != nil {
				failures++
				continue
			}
			hist.RecordValue(elapsed.Microseconds())
		}

		if hist.TotalCount() == 0 {
			fail(fmt.Errorf("all %d requests failed, last error: %v", iterations, err))
		}

		fmt.Printf("requests: %d  failures: %d\n", iterations, failures)
		fmt.Printf("min:  %s\n", microseconds(hist.Min()))
		fmt.Printf("p50:  %s\n", microseconds(hist.ValueAtQuantile(50)))
		fmt.Printf("p90:  %s\n", microseconds(hist.ValueAtQuantile(90)))
		fmt.Printf("p99:  %s\n", microseconds(hist.ValueAtQuantile(99)))
		fmt.Printf("max:  %s\n", microseconds(hist.Max()))
	},
}

func microseconds(us int64) time.Duration {
	return time.Duration(us) * time.Microsecond
}

func init() {
	benchCmd.Flags().IntP("iterations", "i", 10, "Number of requests to issue")
}
