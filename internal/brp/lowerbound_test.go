package brp

import "testing"

func TestLB4Basics(t *testing.T) {
	inst := mustInstance(t, 3, 2, [][]int{{1, 2}, {}, {4}})
	st := NewState(inst.Stacks, inst.Tiers)
	st.InitState(inst)

	if lb := LB4(st, st.NBlocks+1); lb != st.NBad {
		t.Fatalf("LB4 = %d, want exactly NBad = %d for a single bad block", lb, st.NBad)
	}

	if lb := LB4(st, 0); lb != st.NBad {
		t.Fatalf("LB4 with maxK<=0 should return NBad unchanged, got %d want %d", lb, st.NBad)
	}

	sorted := mustInstance(t, 3, 3, [][]int{{3, 2, 1}, {6, 5, 4}, {9, 8, 7}})
	sst := NewState(sorted.Stacks, sorted.Tiers)
	sst.InitState(sorted)
	if lb := LB4(sst, sst.NBlocks+1); lb != 0 {
		t.Fatalf("LB4 on an already-sorted yard = %d, want 0", lb)
	}
}

func TestLB4NeverBelowNBad(t *testing.T) {
	inst := mustInstance(t, 4, 3, [][]int{
		{1, 3, 2},
		{4, 6, 5},
		{},
		{7},
	})
	st := NewState(inst.Stacks, inst.Tiers)
	st.InitState(inst)

	lb := LB4(st, st.NBlocks+1)
	if lb < st.NBad {
		t.Fatalf("LB4 = %d must never be below NBad = %d", lb, st.NBad)
	}
}
