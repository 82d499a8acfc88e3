package main

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flashwire/flashcodec/internal/telemetry/logger"
	"github.com/flashwire/flashcodec/internal/telemetry/metrics"
	"github.com/flashwire/flashcodec/pkg/codec"
	"github.com/flashwire/flashcodec/pkg/wirecol"
)

// newBenchCmd demonstrates the concurrency model spec.md §5 describes:
// the codec is single-threaded and synchronous per call, but a caller
// may safely fan a column conversion out across disjoint slices on
// separate goroutines, each writing into its own wire buffer.
func newBenchCmd() *cobra.Command {
	var fixturePath string
	var workers int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Convert a fixture across concurrent disjoint slices and report timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFixture(fixturePath)
			if err != nil {
				return err
			}
			field, err := f.field()
			if err != nil {
				return err
			}

			mem := memory.NewGoAllocator()
			col, err := buildEngineColumn(mem, f)
			if err != nil {
				return err
			}

			if workers < 1 {
				workers = runtime.NumCPU()
			}
			rows := col.Len()
			if workers > rows {
				workers = rows
			}
			if workers < 1 {
				workers = 1
			}
			chunk := (rows + workers - 1) / workers

			log := logger.WithContext(cmd.Context()).With(zap.String("column", f.Name))

			var wg sync.WaitGroup
			errs := make([]error, workers)
			durations := make([]time.Duration, workers)

			start := time.Now()
			for w := 0; w < workers; w++ {
				lo := w * chunk
				hi := lo + chunk
				if hi > rows {
					hi = rows
				}
				if lo >= hi {
					continue
				}
				wg.Add(1)
				go func(idx, lo, hi int) {
					defer wg.Done()
					dst := wirecol.NewBuffer()
					t0 := time.Now()
					errs[idx] = codec.EncodeColumn(col, field, dst, lo, hi)
					durations[idx] = time.Since(t0)
				}(w, lo, hi)
			}
			wg.Wait()
			total := time.Since(start)

			for _, err := range errs {
				if err != nil {
					log.Error("worker failed", zap.Error(err))
					metrics.ConversionErrors.WithLabelValues("encode", string(kindOf(err))).Inc()
					return err
				}
			}
			metrics.RowsConverted.WithLabelValues("encode", f.ElementType).Add(float64(rows))

			fmt.Printf("rows=%d workers=%d total=%s\n", rows, workers, total)
			for i, d := range durations {
				fmt.Printf("  worker %d: %s\n", i, d)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fixturePath, "fixture", "", "path to a column fixture JSON file (required)")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of goroutines to split the column across (default: NumCPU)")
	_ = cmd.MarkFlagRequired("fixture")
	return cmd
}
