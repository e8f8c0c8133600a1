// Package render turns internal/brp's domain types into the two
// outputs the CLIs show a user: live progress lines and go-pretty
// tables summarising an instance, a report, or a solution path.
// Grounded on the teacher's internal/keycraft/bls_logger.go (dual
// console+JSONL structured logging) and internal/tui (go-pretty
// rendering), adapted from an interactive keyboard-layout optimiser to
// a batch/CLI solver: no TUI here, only the same underlying library
// choices.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rbscholtus/brp-idbb/internal/brp"
)

// SearchLogger writes brp.ProgressEvents to a human-readable console
// stream and, optionally, one JSON object per line to a machine-
// readable stream - the same dual-sink shape as the teacher's
// BLSLogger, generalised from keyboard-layout scoring events to
// solver search events.
type SearchLogger struct {
	console io.Writer
	jsonl   io.Writer
}

// NewSearchLogger builds a SearchLogger. Either writer may be nil to
// disable that sink.
func NewSearchLogger(console, jsonl io.Writer) *SearchLogger {
	return &SearchLogger{console: console, jsonl: jsonl}
}

var _ brp.Logger = (*SearchLogger)(nil)

// Log implements brp.Logger.
func (l *SearchLogger) Log(ev brp.ProgressEvent) {
	if l == nil {
		return
	}
	if l.console != nil {
		fmt.Fprintf(l.console, "[%-8s] t=%7.2fs lb=%-4d ub=%-4d nodes=%-10d probes=%d\n",
			ev.Status, ev.Elapsed, ev.BestLB, ev.BestUB, ev.NNodes, ev.NProbe)
	}
	if l.jsonl != nil {
		enc := json.NewEncoder(l.jsonl)
		_ = enc.Encode(ev)
	}
}
