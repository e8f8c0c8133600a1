package instance

import (
	"strings"
	"testing"
)

func TestReadBasic(t *testing.T) {
	text := `
# a comment line
3 3 3
1 3
1 2
1 1
`
	inst, err := Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if inst.Stacks != 3 || inst.Tiers != 3 || inst.Blocks != 3 {
		t.Fatalf("got S=%d T=%d N=%d", inst.Stacks, inst.Tiers, inst.Blocks)
	}
	if inst.MaxPrio != 3 {
		t.Fatalf("MaxPrio = %d, want 3", inst.MaxPrio)
	}
	if inst.Priorities[0][1] != 3 || inst.Priorities[1][1] != 2 || inst.Priorities[2][1] != 1 {
		t.Fatalf("unexpected priorities: %v", inst.Priorities)
	}
}

func TestReadBlankLinesAndComments(t *testing.T) {
	text := "\n# header\n2 3 3\n\n2 1 2\n# mid comment\n1 3\n"
	inst, err := Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if inst.Heights[0] != 2 || inst.Heights[1] != 1 {
		t.Fatalf("unexpected heights: %v", inst.Heights)
	}
}

func TestReadRejectsBadHeader(t *testing.T) {
	if _, err := Read(strings.NewReader("3 3\n")); err == nil {
		t.Fatalf("expected error for malformed header")
	}
}

func TestReadRejectsHeightMismatch(t *testing.T) {
	text := "2 3 2\n1 1\n1 2 3\n"
	if _, err := Read(strings.NewReader(text)); err == nil {
		t.Fatalf("expected error for height/priority count mismatch")
	}
}

func TestReadRejectsBlockCountMismatch(t *testing.T) {
	text := "2 3 5\n1 1\n1 2\n"
	if _, err := Read(strings.NewReader(text)); err == nil {
		t.Fatalf("expected error when N disagrees with actual block count")
	}
}

func TestGrid(t *testing.T) {
	inst := New(2, 2)
	inst.Heights[0] = 2
	inst.Priorities[0][1] = 1
	inst.Priorities[0][2] = 2
	inst.Heights[1] = 0
	inst.Finalize()

	grid := inst.Grid()
	if grid == "" {
		t.Fatalf("expected non-empty grid")
	}
}
