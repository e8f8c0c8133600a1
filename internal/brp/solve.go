package brp

import (
	"math"

	"github.com/rbscholtus/brp-idbb/internal/instance"
	"github.com/rbscholtus/brp-idbb/internal/timer"
)

// noBudget disables MinMax's "fits within maxLen" cutoff for calls
// that only care whether the instance is feasible at all, not whether
// a particular depth budget suffices.
const noBudget = math.MaxInt32 / 2

// Report is the outcome of a Solve call: the proven-optimal (or best
// found, if TimedOut) relocation count and sequence, plus the search
// statistics spec.md §6 asks the CLI to print.
type Report struct {
	Instance *instance.Instance

	Optimal  bool
	TimedOut bool

	BestLB int
	BestUB int
	Path   []Relocation

	NNodes int64
	NProbe int64

	Elapsed      float64
	TimeToBestLB float64
	TimeToBestUB float64
}

// Solve runs the exact iterative-deepening branch-and-bound search
// for inst, polling timeLimitSeconds as a wall-clock budget (<= 0
// means unbounded). It returns nil if inst is infeasible - no
// relocation sequence, however long, can retrieve every block - and
// otherwise a Report whose Optimal flag says whether BestLB reached
// BestUB before the time budget ran out. logger may be nil.
func Solve(inst *instance.Instance, timeLimitSeconds float64, logger Logger) *Report {
	if logger == nil {
		logger = noopLogger{}
	}

	root := NewState(inst.Stacks, inst.Tiers)
	root.InitState(inst)

	for root.IsRetrievable() {
		root.Retrieve(0)
	}
	if root.NBlocks == 0 {
		return &Report{
			Instance: inst,
			Optimal:  true,
			BestLB:   0,
			BestUB:   0,
		}
	}

	incumbent := NewState(inst.Stacks, inst.Tiers)
	incumbent.Copy(root)
	incumbentPath := make([]Relocation, 0, inst.Blocks*inst.Tiers)
	bestUB, ok := MinMax(incumbent, &incumbentPath, 0, noBudget)
	if !ok {
		return nil
	}

	rootLB := LB4(root, root.NBlocks+1)

	maxDepth := bestUB + 1
	sc := &ctx{
		stacks: inst.Stacks,
		tiers:  inst.Tiers,

		hist:       make([]node, maxDepth+1),
		tempState:  NewState(inst.Stacks, inst.Tiers),
		probeState: NewState(inst.Stacks, inst.Tiers),
		pool:       make([]branch, maxDepth*(inst.Stacks-1)),
		path:       make([]Relocation, maxDepth),

		bestLB:  rootLB,
		bestUB:  bestUB,
		bestSol: append([]Relocation(nil), incumbentPath...),

		logger: logger,
		start:  timer.Start(),
	}
	if timeLimitSeconds > 0 {
		sc.deadline = sc.start.Deadline(timeLimitSeconds)
	} else {
		sc.deadline = sc.start.Deadline(math.Inf(1))
	}

	sc.hist[0] = node{state: root, lb: rootLB}
	for i := 1; i <= maxDepth; i++ {
		sc.hist[i] = node{state: NewState(inst.Stacks, inst.Tiers)}
	}
	for i := range sc.pool {
		sc.pool[i] = branch{state: newHeadOnlyState(inst.Stacks, inst.Tiers)}
	}

	sc.logger.Log(sc.event("start"))
	sc.timeToBestLB = sc.start.Elapsed()

	for sc.bestLB < sc.bestUB {
		sc.logger.Log(sc.event("deepen"))
		if sc.search(0, sc.pool) {
			break
		}
		if sc.timedOut {
			break
		}
		sc.bestLB++
		sc.timeToBestLB = sc.start.Elapsed()
	}

	sc.logger.Log(sc.event("end"))

	return &Report{
		Instance:     inst,
		Optimal:      sc.bestLB == sc.bestUB,
		TimedOut:     sc.timedOut,
		BestLB:       sc.bestLB,
		BestUB:       sc.bestUB,
		Path:         sc.bestSol,
		NNodes:       sc.nNodes,
		NProbe:       sc.nProbe,
		Elapsed:      sc.start.Elapsed(),
		TimeToBestLB: sc.timeToBestLB,
		TimeToBestUB: sc.timeToBestUB,
	}
}
