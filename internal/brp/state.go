package brp

import "github.com/rbscholtus/brp-idbb/internal/instance"

// State is the mutable search state derived from an instance.Instance:
// the current configuration of every stack plus the incrementally
// maintained indices the search and lower bound need on every node.
//
// The fields split into a "head" (H, List, Rank, LastChange, NBlocks,
// NBad: small, one int per stack) and a "body" (Conf: one slot per
// occupied-or-not position, S*(T+1) ints wide). Branch-and-bound nodes
// along a single level of the search tree differ only in their head —
// the body they relocate out of is shared until one of them is chosen
// to recurse into. ReuseHead/ReuseBody alias a State's arrays onto
// another State's backing arrays instead of copying them, the same
// pooling trick the reference solver's reuse_state_head/body perform
// via raw pointer assignment; Go slice headers make the aliasing safe
// without unsafe code. See spec.md §3 and Design Notes §9.
type State struct {
	Stacks, Tiers int

	NBlocks int
	NBad    int

	H          []int
	List       []int
	Rank       []int
	LastChange []int

	Conf [][]slot
}

// NewState allocates a State with its own head and body storage.
func NewState(stacks, tiers int) *State {
	st := newHeadOnlyState(stacks, tiers)
	st.allocBody()
	return st
}

func newHeadOnlyState(stacks, tiers int) *State {
	return &State{
		Stacks:     stacks,
		Tiers:      tiers,
		H:          make([]int, stacks),
		List:       make([]int, stacks),
		Rank:       make([]int, stacks),
		LastChange: make([]int, stacks),
	}
}

func (st *State) allocBody() {
	conf := make([][]slot, st.Stacks)
	for s := range conf {
		conf[s] = make([]slot, st.Tiers+1)
	}
	st.Conf = conf
}

// CopyHead deep-copies src's head arrays into st's own (already
// allocated) head storage.
func (st *State) CopyHead(src *State) {
	st.NBlocks = src.NBlocks
	st.NBad = src.NBad
	copy(st.H, src.H)
	copy(st.List, src.List)
	copy(st.Rank, src.Rank)
	copy(st.LastChange, src.LastChange)
}

// CopyBody deep-copies src's slot grid into st's own (already
// allocated) body storage.
func (st *State) CopyBody(src *State) {
	for s := range st.Conf {
		copy(st.Conf[s], src.Conf[s])
	}
}

// Copy deep-copies both head and body from src.
func (st *State) Copy(src *State) {
	st.CopyHead(src)
	st.CopyBody(src)
}

// ReuseHead aliases st's head arrays onto src's, so mutations through
// either State's head are visible through the other. Used to install
// the chosen branch's head into the search history without copying.
func (st *State) ReuseHead(src *State) {
	st.NBlocks = src.NBlocks
	st.NBad = src.NBad
	st.H = src.H
	st.List = src.List
	st.Rank = src.Rank
	st.LastChange = src.LastChange
}

// ReuseBody aliases st's slot grid onto src's.
func (st *State) ReuseBody(src *State) {
	st.Conf = src.Conf
}

// InitState populates st (already allocated at the instance's
// dimensions) from inst: tier-0 sentinels, per-slot Q/B/L, and the
// List/Rank permutation sorted by ascending target-stack quality.
func (st *State) InitState(inst *instance.Instance) {
	st.NBlocks = inst.Blocks
	st.NBad = 0
	sentinel := inst.MaxPrio + 1

	for s := 0; s < st.Stacks; s++ {
		st.H[s] = inst.Heights[s]
		st.Conf[s][0] = slot{P: sentinel, Q: sentinel, B: 0, L: 0}
		for t := 1; t <= inst.Heights[s]; t++ {
			st.setItem(s, t, inst.Priorities[s][t], 0)
			if st.Conf[s][t].B > 0 {
				st.NBad++
			}
		}
		st.List[s] = s
		st.Rank[s] = s
		st.LastChange[s] = 0
	}
	for s := 0; s < st.Stacks; s++ {
		st.adjustLeft(s)
	}
}

// compare orders two stacks by the quality of their current target
// slot: the stack with the lower quality sorts first.
func (st *State) compare(s1, s2 int) int {
	return st.Conf[s1][st.H[s1]].Q - st.Conf[s2][st.H[s2]].Q
}

// adjustLeft moves stack s leftward through List/Rank until the
// ordering-by-quality invariant holds again, after s's own quality
// has decreased (e.g. a block was pushed on top of it).
func (st *State) adjustLeft(s int) {
	i := st.Rank[s]
	for i > 0 && st.compare(s, st.List[i-1]) < 0 {
		st.List[i] = st.List[i-1]
		st.Rank[st.List[i]] = i
		i--
	}
	st.List[i] = s
	st.Rank[s] = i
}

// adjustRight moves stack s rightward through List/Rank until the
// ordering invariant holds again, after s's own quality has increased
// (e.g. its top block was popped off).
func (st *State) adjustRight(s int) {
	i := st.Rank[s]
	for i < st.Stacks-1 && st.compare(s, st.List[i+1]) > 0 {
		st.List[i] = st.List[i+1]
		st.Rank[st.List[i]] = i
		i++
	}
	st.List[i] = s
	st.Rank[s] = i
}

// IsRetrievable reports whether the globally lowest-quality stack's
// top block is not blocking (B == 0), i.e. it can leave the yard.
func (st *State) IsRetrievable() bool {
	if st.NBlocks == 0 {
		return false
	}
	s := st.List[0]
	return st.Conf[s][st.H[s]].B == 0
}

// moveOut pops the top block off stack s at move/sequence number l,
// mirroring the reference implementation's optimisation: the sort key
// for s only changes if the popped slot was itself non-blocking, so
// the adjustRight shift is skipped on the already-bad branch.
func (st *State) moveOut(s, l int) {
	top := st.H[s]
	st.H[s]--
	if st.Conf[s][top].B > 0 {
		st.NBad--
	} else {
		st.adjustRight(s)
	}
	st.LastChange[s] = l
}

// moveIn pushes a block of priority p onto stack d at move/sequence
// number l, with the mirrored optimisation on the push side: only
// adjustLeft when the new top slot turns out non-blocking.
func (st *State) moveIn(d, p, l int) {
	st.H[d]++
	st.setItem(d, st.H[d], p, l)
	if st.Conf[d][st.H[d]].B > 0 {
		st.NBad++
	} else {
		st.adjustLeft(d)
	}
	st.LastChange[d] = l
}

// Relocate moves the top block of stack s onto stack d, recorded at
// move/sequence number l.
func (st *State) Relocate(s, d, l int) {
	p := st.Conf[s][st.H[s]].P
	st.moveOut(s, l)
	st.moveIn(d, p, l)
}

// Retrieve removes the globally lowest-quality stack's top block from
// the yard entirely. Caller must have checked IsRetrievable.
func (st *State) Retrieve(l int) {
	s := st.List[0]
	st.NBlocks--
	st.H[s]--
	st.adjustRight(s)
	st.LastChange[s] = l
}
