// Package batch runs the solver across many instance files and
// aggregates the results, the same shape as the teacher's
// internal/corpus aggregates per-word scores across a wordlist:
// collect one record per input, then fold them into summary
// statistics a CLI can print as a single table.
package batch

import (
	"fmt"
	"sort"

	"github.com/rbscholtus/brp-idbb/internal/brp"
	"github.com/rbscholtus/brp-idbb/internal/instance"
)

// Result is one instance's outcome within a batch run.
type Result struct {
	Path     string
	Instance *instance.Instance
	Report   *brp.Report
	Err      error
}

// Summary aggregates a completed batch: counts, timing, and the
// relocation-count histogram a report's "solved how many in how many
// moves" table is built from.
type Summary struct {
	Results []Result

	Solved     int
	Infeasible int
	Failed     int
	Optimal    int
	TimedOut   int

	TotalElapsed float64
}

// Run solves every path in files sequentially, in the order given,
// each under its own timeLimitSeconds budget, and returns the
// aggregated Summary. A read or parse failure for one file is
// recorded in its Result.Err and does not stop the batch.
func Run(files []string, timeLimitSeconds float64, logger brp.Logger) *Summary {
	sum := &Summary{Results: make([]Result, 0, len(files))}

	for _, path := range files {
		inst, err := instance.ReadFile(path)
		if err != nil {
			sum.Results = append(sum.Results, Result{Path: path, Err: err})
			sum.Failed++
			continue
		}

		report := brp.Solve(inst, timeLimitSeconds, logger)
		res := Result{Path: path, Instance: inst, Report: report}
		sum.Results = append(sum.Results, res)

		if report == nil {
			sum.Infeasible++
			continue
		}
		sum.Solved++
		sum.TotalElapsed += report.Elapsed
		if report.Optimal {
			sum.Optimal++
		}
		if report.TimedOut {
			sum.TimedOut++
		}
	}
	return sum
}

// RelocationHistogram buckets solved instances by their relocation
// count, sorted ascending, for a compact "N instances needed K moves"
// summary.
func (s *Summary) RelocationHistogram() []CountPair {
	counts := map[int]int{}
	for _, r := range s.Results {
		if r.Report != nil {
			counts[r.Report.BestUB]++
		}
	}
	pairs := make([]CountPair, 0, len(counts))
	for k, v := range counts {
		pairs = append(pairs, CountPair{Relocations: k, Count: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Relocations < pairs[j].Relocations })
	return pairs
}

// CountPair is one bucket of RelocationHistogram.
type CountPair struct {
	Relocations int
	Count       int
}

// String renders a one-line summary suitable for a CLI's final status
// line.
func (s *Summary) String() string {
	return fmt.Sprintf("solved=%d optimal=%d timed_out=%d infeasible=%d failed=%d total_elapsed=%.2fs",
		s.Solved, s.Optimal, s.TimedOut, s.Infeasible, s.Failed, s.TotalElapsed)
}
