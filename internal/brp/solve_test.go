package brp

import "testing"

func TestSolveTrivialAlreadySorted(t *testing.T) {
	inst := mustInstance(t, 3, 3, [][]int{{3, 2, 1}, {6, 5, 4}, {9, 8, 7}})

	report := Solve(inst, 0, nil)
	if report == nil {
		t.Fatalf("Solve returned nil for a trivially feasible instance")
	}
	if !report.Optimal {
		t.Fatalf("expected an already-sorted yard to be solved optimally")
	}
	if report.BestUB != 0 || len(report.Path) != 0 {
		t.Fatalf("expected zero relocations, got BestUB=%d path=%v", report.BestUB, report.Path)
	}
}

func TestSolveOneBlockingBlock(t *testing.T) {
	inst := mustInstance(t, 3, 2, [][]int{{1, 2}, {}, {4}})

	report := Solve(inst, 0, nil)
	if report == nil {
		t.Fatalf("Solve returned nil for a feasible instance")
	}
	if !report.Optimal {
		t.Fatalf("expected the search to prove optimality, got LB=%d UB=%d", report.BestLB, report.BestUB)
	}
	if report.BestUB != 1 {
		t.Fatalf("BestUB = %d, want 1", report.BestUB)
	}
	if len(report.Path) != 1 {
		t.Fatalf("path length = %d, want 1: %v", len(report.Path), report.Path)
	}
	if report.Path[0].Src != 0 || report.Path[0].Pri != 2 {
		t.Fatalf("unexpected relocation recorded: %+v", report.Path[0])
	}
}

// TestSolveRootHasRetrievableBlock covers the case that corrupted the
// goal test before Solve drained the root: a globally retrievable
// block (stack 0's only block, the yard's lowest priority) sits
// alongside a stack that still needs relocating. If the root is
// searched undrained, List[0] picks the already-retrievable block as
// the search's first move and the goal test fires one ply too early
// on a "solution" that never touches the real blocker.
func TestSolveRootHasRetrievableBlock(t *testing.T) {
	inst := mustInstance(t, 3, 2, [][]int{{1}, {2, 3}, {}})

	report := Solve(inst, 0, nil)
	if report == nil {
		t.Fatalf("Solve returned nil for a feasible instance")
	}
	if !report.Optimal {
		t.Fatalf("expected the search to prove optimality, got LB=%d UB=%d", report.BestLB, report.BestUB)
	}
	if report.BestUB != 1 {
		t.Fatalf("BestUB = %d, want 1", report.BestUB)
	}
	if len(report.Path) != 1 || report.Path[0].Src != 1 || report.Path[0].Pri != 3 {
		t.Fatalf("unexpected relocation sequence: %+v", report.Path)
	}

	st := NewState(inst.Stacks, inst.Tiers)
	st.InitState(inst)
	for st.IsRetrievable() {
		st.Retrieve(0)
	}
	for i, r := range report.Path {
		st.Relocate(r.Src, r.Dst, i+1)
		for st.IsRetrievable() {
			st.Retrieve(i + 1)
		}
	}
	if st.NBlocks != 0 {
		t.Fatalf("replaying the reported path left %d blocks unretrieved", st.NBlocks)
	}
}

func TestSolveInfeasible(t *testing.T) {
	inst := mustInstance(t, 2, 2, [][]int{{1, 2}, {3, 4}})

	if report := Solve(inst, 0, nil); report != nil {
		t.Fatalf("expected nil Report for a deadlocked instance, got %+v", report)
	}
}

func TestSolveWithSpareStacksIsConsistent(t *testing.T) {
	inst := mustInstance(t, 5, 3, [][]int{
		{2, 1, 3},
		{5, 4},
		{},
		{7, 6},
		{},
	})

	report := Solve(inst, 0, nil)
	if report == nil {
		t.Fatalf("Solve returned nil for a feasible instance")
	}
	if report.BestLB != report.BestUB {
		t.Fatalf("search finished without proving optimality: LB=%d UB=%d", report.BestLB, report.BestUB)
	}
	if len(report.Path) != report.BestUB {
		t.Fatalf("recorded path length %d does not match BestUB %d", len(report.Path), report.BestUB)
	}
}
