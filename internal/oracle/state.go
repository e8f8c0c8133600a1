// Package oracle is a deliberately simple, deliberately slow second
// implementation of the same Block Relocation Problem solved by
// internal/brp, built to disagree with it loudly in a test rather than
// silently in production. Where internal/brp maintains q/b/l and the
// List/Rank ordering incrementally and skips work whenever the
// incremental invariant proves it is safe to, oracle recomputes a
// stack's quality/badness from scratch after every mutation and scans
// linearly for the globally most urgent stack. It is never used to
// actually solve an instance for a user - see internal/brp for that -
// only to cross-check internal/brp's answer on the same instance in
// internal/oracle/differential_test.go.
package oracle

import "github.com/rbscholtus/brp-idbb/internal/instance"

type slot struct {
	P, Q, B int
}

// State mirrors internal/brp.State's role but without its pooling or
// incremental bookkeeping: every mutation recomputes exactly the one
// stack it touched from the bottom up.
type State struct {
	Stacks, Tiers int
	NBlocks, NBad int
	H             []int
	Conf          [][]slot
}

func NewState(stacks, tiers int) *State {
	conf := make([][]slot, stacks)
	for s := range conf {
		conf[s] = make([]slot, tiers+1)
	}
	return &State{
		Stacks: stacks,
		Tiers:  tiers,
		H:      make([]int, stacks),
		Conf:   conf,
	}
}

func (st *State) Copy(src *State) *State {
	dst := st
	if dst == nil {
		dst = NewState(src.Stacks, src.Tiers)
	}
	dst.NBlocks, dst.NBad = src.NBlocks, src.NBad
	copy(dst.H, src.H)
	for s := range dst.Conf {
		copy(dst.Conf[s], src.Conf[s])
	}
	return dst
}

func (st *State) Clone() *State {
	return NewState(st.Stacks, st.Tiers).Copy(st)
}

// InitState loads inst and recomputes every stack's quality/badness
// column from the bottom up.
func (st *State) InitState(inst *instance.Instance) {
	st.NBlocks = inst.Blocks
	sentinel := inst.MaxPrio + 1
	for s := 0; s < st.Stacks; s++ {
		st.H[s] = inst.Heights[s]
		for t := 1; t <= inst.Heights[s]; t++ {
			st.Conf[s][t].P = inst.Priorities[s][t]
		}
		st.Conf[s][0] = slot{P: sentinel, Q: sentinel, B: 0}
		st.rescan(s)
	}
	st.NBad = 0
	for s := 0; s < st.Stacks; s++ {
		for t := 1; t <= st.H[s]; t++ {
			if st.Conf[s][t].B > 0 {
				st.NBad++
			}
		}
	}
}

// rescan recomputes Q and B for every occupied tier of stack s, always
// from tier 1 up, regardless of what changed - the "always correct,
// never cheap" counterpart to internal/brp's incremental update.
func (st *State) rescan(s int) {
	below := st.Conf[s][0]
	for t := 1; t <= st.H[s]; t++ {
		p := st.Conf[s][t].P
		var item slot
		item.P = p
		if p <= below.Q {
			item.Q, item.B = p, 0
		} else {
			item.Q, item.B = below.Q, below.B+1
		}
		st.Conf[s][t] = item
		below = item
	}
}

func (st *State) top(s int) slot {
	return st.Conf[s][st.H[s]]
}

// sMin scans every stack and returns the one with the lowest current
// target quality, breaking ties toward the lowest index - the literal
// linear search the reference "src" variant performs every time,
// rather than reading List[0] off a maintained order.
func (st *State) sMin() int {
	best := 0
	bestQ := st.top(0).Q
	for s := 1; s < st.Stacks; s++ {
		if q := st.top(s).Q; q < bestQ {
			best, bestQ = s, q
		}
	}
	return best
}

func (st *State) IsRetrievable() bool {
	if st.NBlocks == 0 {
		return false
	}
	s := st.sMin()
	return st.top(s).B == 0
}

// Retrieve removes the current sMin's top block from the yard.
func (st *State) Retrieve() {
	s := st.sMin()
	st.NBlocks--
	st.H[s]--
	st.rescan(s)
}

// Relocate moves the top block of s onto d, unconditionally rescanning
// both stacks' badness afterward - the reference implementation's
// "always call adjust" form, in contrast to internal/brp's optimised
// skip-when-unchanged form.
func (st *State) Relocate(s, d int) {
	wasBad := st.H[s] > 0 && st.top(s).B > 0
	p := st.top(s).P
	st.H[s]--
	st.rescan(s)
	if wasBad {
		st.NBad--
	}

	st.H[d]++
	st.Conf[d][st.H[d]].P = p
	st.rescan(d)
	if st.top(d).B > 0 {
		st.NBad++
	}
}
