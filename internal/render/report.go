package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rbscholtus/brp-idbb/internal/brp"
	"github.com/rbscholtus/brp-idbb/internal/instance"
)

// InstanceGrid renders inst as a go-pretty table, one column per
// stack and one row per tier from top to bottom, styled the way the
// teacher renders fixed-width tabular state with go-pretty rather than
// hand-built string concatenation.
func InstanceGrid(inst *instance.Instance) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	header := table.Row{"tier"}
	for s := 0; s < inst.Stacks; s++ {
		header = append(header, fmt.Sprintf("S%d", s))
	}
	t.AppendHeader(header)

	for tier := inst.Tiers; tier >= 1; tier-- {
		row := table.Row{tier}
		for s := 0; s < inst.Stacks; s++ {
			if tier > inst.Heights[s] {
				row = append(row, "")
			} else {
				row = append(row, inst.Priorities[s][tier])
			}
		}
		t.AppendRow(row)
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	return t.Render()
}

// PathTable renders a relocation sequence as a go-pretty table: one
// row per move, in order.
func PathTable(path []brp.Relocation) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "priority", "from", "to"})
	for i, r := range path {
		t.AppendRow(table.Row{i + 1, r.Pri, r.Src, r.Dst})
	}
	if len(path) == 0 {
		t.AppendRow(table.Row{"-", "-", "-", "-"})
	}
	return t.Render()
}

// ReportTable renders a solver Report's summary statistics.
func ReportTable(r *brp.Report) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"field", "value"})
	t.AppendRow(table.Row{"stacks x tiers", fmt.Sprintf("%d x %d", r.Instance.Stacks, r.Instance.Tiers)})
	t.AppendRow(table.Row{"blocks", r.Instance.Blocks})
	t.AppendRow(table.Row{"optimal", r.Optimal})
	t.AppendRow(table.Row{"timed out", r.TimedOut})
	t.AppendRow(table.Row{"lower bound", r.BestLB})
	t.AppendRow(table.Row{"relocations", r.BestUB})
	t.AppendRow(table.Row{"nodes explored", r.NNodes})
	t.AppendRow(table.Row{"LB probes", r.NProbe})
	t.AppendRow(table.Row{"time to best LB (s)", fmt.Sprintf("%.3f", r.TimeToBestLB)})
	t.AppendRow(table.Row{"time to best UB (s)", fmt.Sprintf("%.3f", r.TimeToBestUB)})
	t.AppendRow(table.Row{"total elapsed (s)", fmt.Sprintf("%.3f", r.Elapsed)})
	return t.Render()
}
