package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rbscholtus/brp-idbb/internal/batch"
)

// BatchTable renders a batch.Summary as a per-instance go-pretty
// table: one row per input file, its outcome, and its relocation
// count.
func BatchTable(sum *batch.Summary) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"instance", "status", "LB", "UB", "nodes", "elapsed (s)"})

	for _, r := range sum.Results {
		switch {
		case r.Err != nil:
			t.AppendRow(table.Row{r.Path, "error: " + r.Err.Error(), "-", "-", "-", "-"})
		case r.Report == nil:
			t.AppendRow(table.Row{r.Path, "infeasible", "-", "-", "-", "-"})
		default:
			status := "optimal"
			if r.Report.TimedOut {
				status = "timed out"
			}
			t.AppendRow(table.Row{r.Path, status, r.Report.BestLB, r.Report.BestUB, r.Report.NNodes,
				fmt.Sprintf("%.3f", r.Report.Elapsed)})
		}
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{"total", sum.String()})
	return t.Render()
}
