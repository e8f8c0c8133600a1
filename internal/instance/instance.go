// Package instance holds the immutable problem description for the
// Block Relocation Problem: stack count, tier capacity, block count,
// the initial height of each stack and the priority of every block
// already placed. It is read once and never mutated again; the
// mutable side (internal/brp.State) derives from it but never writes
// back.
package instance

import "fmt"

// Instance is the immutable input to the solver: S stacks indexed
// 0..S-1, T tiers indexed 1..T (tier 0 is a sentinel ground slot), N
// blocks distributed across the stacks per Heights, and priorities at
// every occupied slot.
type Instance struct {
	Stacks int
	Tiers  int
	Blocks int
	// Heights[s] is the initial number of blocks on stack s, 0..Tiers.
	Heights []int
	// Priorities[s][t] is the priority of the block at tier t of stack
	// s, for 1 <= t <= Heights[s]. Priorities[s][0] is unused.
	Priorities [][]int
	// MaxPrio is the maximum priority value appearing in Priorities.
	MaxPrio int
}

// New allocates an Instance with S stacks and tier capacity T, all
// heights zero and no priorities set. Callers populate Heights and
// Priorities (e.g. via a reader) and then call Finalize.
func New(stacks, tiers int) *Instance {
	p := make([][]int, stacks)
	for s := range p {
		p[s] = make([]int, tiers+1)
	}
	return &Instance{
		Stacks:     stacks,
		Tiers:      tiers,
		Heights:    make([]int, stacks),
		Priorities: p,
	}
}

// Finalize recomputes Blocks and MaxPrio from Heights/Priorities. It
// must be called after populating the instance by hand (readers call
// it for you).
func (inst *Instance) Finalize() {
	blocks := 0
	maxPrio := 0
	for s := 0; s < inst.Stacks; s++ {
		blocks += inst.Heights[s]
		for t := 1; t <= inst.Heights[s]; t++ {
			if p := inst.Priorities[s][t]; p > maxPrio {
				maxPrio = p
			}
		}
	}
	inst.Blocks = blocks
	inst.MaxPrio = maxPrio
}

// Validate checks the structural constants from spec.md §6: S >= 2,
// T >= 1, 0 <= h[s] <= T, and positive priorities.
func (inst *Instance) Validate() error {
	if inst.Stacks < 2 {
		return fmt.Errorf("instance: need at least 2 stacks, got %d", inst.Stacks)
	}
	if inst.Tiers < 1 {
		return fmt.Errorf("instance: need at least 1 tier, got %d", inst.Tiers)
	}
	if len(inst.Heights) != inst.Stacks || len(inst.Priorities) != inst.Stacks {
		return fmt.Errorf("instance: height/priority arrays do not match stack count %d", inst.Stacks)
	}
	for s := 0; s < inst.Stacks; s++ {
		h := inst.Heights[s]
		if h < 0 || h > inst.Tiers {
			return fmt.Errorf("instance: stack %d has height %d outside [0, %d]", s, h, inst.Tiers)
		}
		if len(inst.Priorities[s]) < inst.Tiers+1 {
			return fmt.Errorf("instance: stack %d priority row too short", s)
		}
		for t := 1; t <= h; t++ {
			if inst.Priorities[s][t] <= 0 {
				return fmt.Errorf("instance: stack %d tier %d has non-positive priority %d", s, t, inst.Priorities[s][t])
			}
		}
	}
	return nil
}

// Grid renders the instance as the tier-by-tier text grid used by the
// original solver's print_instance: one row per tier from T down to
// 1, blocks shown right-aligned in 3-wide fields, blank slots shown
// as spaces, followed by a separator row and a stack-index row.
func (inst *Instance) Grid() string {
	out := ""
	for t := inst.Tiers; t >= 1; t-- {
		for s := 0; s < inst.Stacks; s++ {
			if t > inst.Heights[s] {
				out += "[   ]"
			} else {
				out += fmt.Sprintf("[%3d]", inst.Priorities[s][t])
			}
		}
		out += "\n"
	}
	for s := 0; s < inst.Stacks; s++ {
		out += "-----"
	}
	out += "\n"
	for s := 0; s < inst.Stacks; s++ {
		out += fmt.Sprintf(" %3d ", s)
	}
	return out
}
