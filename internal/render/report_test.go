package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rbscholtus/brp-idbb/internal/brp"
	"github.com/rbscholtus/brp-idbb/internal/instance"
)

func TestInstanceGridRendersStackColumns(t *testing.T) {
	inst := instance.New(2, 2)
	inst.Heights[0] = 1
	inst.Priorities[0][1] = 5
	inst.Finalize()

	out := InstanceGrid(inst)
	if !strings.Contains(out, "S0") || !strings.Contains(out, "S1") {
		t.Fatalf("expected a column per stack, got:\n%s", out)
	}
	if !strings.Contains(out, "5") {
		t.Fatalf("expected the placed block's priority to appear, got:\n%s", out)
	}
}

func TestPathTableRendersEmptyPath(t *testing.T) {
	out := PathTable(nil)
	if !strings.Contains(out, "-") {
		t.Fatalf("expected a placeholder row for an empty path, got:\n%s", out)
	}
}

func TestReportTableRendersSummary(t *testing.T) {
	inst := instance.New(2, 2)
	inst.Finalize()
	report := &brp.Report{Instance: inst, Optimal: true, BestLB: 1, BestUB: 1}

	out := ReportTable(report)
	if !strings.Contains(out, "relocations") {
		t.Fatalf("expected a relocations row, got:\n%s", out)
	}
}

func TestSearchLoggerWritesConsoleAndJSONL(t *testing.T) {
	var console, jsonl bytes.Buffer
	logger := NewSearchLogger(&console, &jsonl)

	logger.Log(brp.ProgressEvent{Status: "start", BestLB: 0, BestUB: 5})

	if !strings.Contains(console.String(), "start") {
		t.Fatalf("expected the console sink to mention the status, got %q", console.String())
	}
	if !strings.Contains(jsonl.String(), `"Status":"start"`) {
		t.Fatalf("expected the jsonl sink to encode the event, got %q", jsonl.String())
	}
}
