package oracle

import "github.com/rbscholtus/brp-idbb/internal/instance"

// Relocation mirrors brp.Relocation; oracle is intentionally
// self-contained so it can disagree with internal/brp without sharing
// a bug.
type Relocation struct {
	Pri, Src, Dst int
}

// Result is oracle's answer: the optimal relocation count and one
// witnessing sequence, or ok=false if inst is infeasible.
type Result struct {
	BestUB int
	Path   []Relocation
}

// Options controls the one behavioural fork spec.md's Open Questions
// left unresolved: whether the retrieval-block dominance rule uses the
// plain form (internal/brp's, and this package's default) or the
// stricter form from Tanaka's formulation, which also treats a
// candidate destination as dominated when a lower-indexed stack with
// room has a target quality exactly one below the moved block's
// priority (see dominated). Kept here
// rather than in internal/brp so the production solver never has to
// carry a branch it doesn't use; see SPEC_FULL.md and DESIGN.md.
type Options struct {
	RulesByTanaka bool
	// MaxDepth bounds the iterative-deepening threshold oracle will
	// try before giving up and reporting infeasible; callers solving
	// real (feasible) instances should size it generously, e.g.
	// inst.Blocks*inst.Tiers.
	MaxDepth int
}

// Solve runs an exhaustive iterative-deepening search for the optimal
// relocation count, exactly like internal/brp.Solve in outline but
// with none of its incremental bookkeeping or branch pooling. It
// exists to be read alongside internal/brp.Solve and to be compared
// against it by a fuzzer, not to be fast.
func Solve(inst *instance.Instance, opts Options) (*Result, bool) {
	root := NewState(inst.Stacks, inst.Tiers)
	root.InitState(inst)

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = inst.Blocks * inst.Tiers
	}

	for threshold := 0; threshold <= maxDepth; threshold++ {
		path := make([]Relocation, 0, threshold)
		st := root.Clone()
		ok, feasible := dfs(st, 0, threshold, &path, opts.RulesByTanaka)
		if !feasible {
			return nil, false
		}
		if ok {
			return &Result{BestUB: len(path), Path: path}, true
		}
	}
	return nil, false
}

// dfs returns (found, feasible). feasible is false only when the yard
// is permanently deadlocked (no relocation can ever free the blocking
// block, at any depth) - the search can stop trying deeper thresholds
// entirely in that case.
func dfs(st *State, level, threshold int, path *[]Relocation, tanaka bool) (bool, bool) {
	for st.IsRetrievable() {
		st.Retrieve()
	}
	if st.NBad == 0 {
		return true, true
	}
	if level >= threshold {
		return false, true
	}

	sn := st.sMin()
	pri := st.top(sn).P

	emptySeen := false
	anyRoom := false
	for dn := 0; dn < st.Stacks; dn++ {
		if dn == sn || st.H[dn] == st.Tiers {
			continue
		}
		if st.H[dn] == 0 {
			if emptySeen {
				continue
			}
			emptySeen = true
		}
		anyRoom = true

		if dominated(st, sn, dn, pri, tanaka) {
			continue
		}

		child := st.Clone()
		child.Relocate(sn, dn)

		*path = append(*path, Relocation{Pri: pri, Src: sn, Dst: dn})
		found, _ := dfs(child, level+1, threshold, path, tanaka)
		if found {
			return true, true
		}
		*path = (*path)[:len(*path)-1]
	}
	if !anyRoom {
		return false, false
	}
	return false, true
}

// dominated reports whether the move of pri from sn onto dn is skipped:
// it is when some lower-indexed stack other than sn, with room, could
// take the block without it becoming bad (pri <= that stack's target
// quality). Stacks are not checked for having been touched before. The
// Tanaka variant additionally skips the move when such a lower-indexed
// stack's target quality is exactly pri-1.
func dominated(before *State, sn, dn, pri int, tanaka bool) bool {
	for d := 0; d < dn; d++ {
		if d == sn || before.H[d] == before.Tiers {
			continue
		}
		q := before.top(d).Q
		if pri <= q {
			return true
		}
		if tanaka && pri == q+1 {
			return true
		}
	}
	return false
}
