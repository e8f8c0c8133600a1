package brp

import (
	"sort"

	"github.com/rbscholtus/brp-idbb/internal/timer"
)

// node is one level of the search history: the state at that depth
// and the lower bound LB4 computed for it when it was created.
type node struct {
	state *State
	lb    int
}

// branch is a candidate child considered at one node: the destination
// stack, its pre-move target quality (used only to break LB4 ties in
// branch ordering), the child's own LB4 value, and the child state
// itself (aliased from the shared branch pool).
type branch struct {
	dst, qDst, lb int
	state         *State
}

// nodeCheckInterval is how many nodes the search visits between
// deadline checks and "running" progress ticks; checking every node
// would make time.Now() a hot-loop cost.
const nodeCheckInterval = 1 << 14

// ctx holds everything one Solve call's search needs: the depth-
// indexed history, scratch states, the branch-candidate pool reused
// across recursion via the classic offset-slicing trick (see search),
// the running incumbent, and bookkeeping for the Report and Logger.
type ctx struct {
	stacks, tiers int

	hist       []node
	tempState  *State
	probeState *State
	pool       []branch
	path       []Relocation

	bestLB, bestUB int
	bestSol        []Relocation

	nNodes, nProbe int64

	deadline timer.Deadline
	timedOut bool

	logger       Logger
	start        timer.Timer
	timeToBestLB float64
	timeToBestUB float64
}

// search explores the subtree rooted at sc.hist[level] under the
// current threshold sc.bestLB, using branches as scratch storage for
// this node's candidate children (and, by re-slicing past however
// many it uses, for every node below it too - the same arena-via-
// pointer-arithmetic the reference implementation uses, safe here
// because Go slice headers already carry a length and capacity).
//
// It returns true the moment the search can stop entirely: either a
// complete solution matching the current threshold was found, or an
// LB-probe pulled the incumbent down to meet the threshold, or the
// deadline expired (sc.timedOut distinguishes the two).
func (sc *ctx) search(level int, branches []branch) bool {
	sc.nNodes++
	if sc.nNodes%nodeCheckInterval == 0 {
		sc.logger.Log(sc.event("running"))
		if sc.deadline.Expired() {
			sc.timedOut = true
			return true
		}
	}

	currState := sc.hist[level].state
	currLB := sc.hist[level].lb

	sn := currState.List[0]
	pn := currState.Conf[sn][currState.H[sn]].P
	lv := currState.Conf[sn][currState.H[sn]].L

	var qMax int
	for i := sc.stacks - 1; ; i-- {
		s := currState.List[i]
		if currState.H[s] < sc.tiers {
			qMax = currState.Conf[s][currState.H[s]].Q
			break
		}
	}

	if level+currLB+boolToInt(pn > qMax)-boolToInt(currLB > currState.NBad && pn > qMax) > sc.bestLB {
		return false
	}

	size := 0
	firstDn := true
	firstEmpty := true

	for dn := 0; dn < sc.stacks; dn++ {
		if dn == sn || currState.H[dn] == sc.tiers {
			continue
		}

		sc.path[level] = Relocation{Pri: pn, Src: sn, Dst: dn}

		qDn := currState.Conf[dn][currState.H[dn]].Q
		if currState.NBad-1+boolToInt(pn > qDn) == 0 {
			sc.bestUB = level + 1
			sc.bestSol = append(sc.bestSol[:0], sc.path[:sc.bestUB]...)
			sc.timeToBestUB = sc.start.Elapsed()
			sc.logger.Log(sc.event("goal"))
			return true
		}

		if currState.H[dn] == 0 {
			if firstEmpty {
				firstEmpty = false
			} else {
				continue
			}
		}

		if currState.LastChange[dn] < lv {
			continue
		}

		if level+currLB+boolToInt(pn > qDn)-boolToInt(currLB > currState.NBad && pn > qDn) > sc.bestLB {
			continue
		}

		if firstDn {
			firstDn = false
			sc.hist[level+1].state.CopyBody(currState)
			sc.tempState.CopyHead(currState)
			sc.tempState.ReuseBody(sc.hist[level+1].state)
			sc.tempState.moveOut(sn, level+1)
		}

		child := branches[size].state
		child.CopyHead(sc.tempState)
		child.ReuseBody(sc.hist[level+1].state)
		child.moveIn(dn, pn, level+1)

		dominated := false
		for child.IsRetrievable() {
			sMin := child.List[0]
			lStar := child.Conf[sMin][child.H[sMin]].L
			if lStar > 0 {
				for d := 0; d < sMin; d++ {
					if child.H[d] <= child.H[sMin]-1 && child.LastChange[d] < lStar {
						dominated = true
						break
					}
				}
				if dominated {
					break
				}
			}
			child.Retrieve(level + 1)
		}
		if dominated {
			continue
		}

		childLB := LB4(child, sc.bestLB-level-child.NBad)
		if level+1+childLB > sc.bestLB {
			continue
		}

		if level+1+childLB == sc.bestLB-1 {
			sc.nProbe++
			sc.probeState.Copy(child)
			probePath := sc.path
			newLen, ok := MinMax(sc.probeState, &probePath, level+1, sc.bestUB-1)
			if ok {
				sc.bestUB = newLen
				sc.bestSol = append(sc.bestSol[:0], probePath[:sc.bestUB]...)
				sc.timeToBestUB = sc.start.Elapsed()
				sc.logger.Log(sc.event("update"))
				if sc.bestLB == sc.bestUB {
					return true
				}
			}
		}

		branches[size] = branch{dst: dn, qDst: qDn, lb: childLB, state: child}
		size++
	}

	if size == 0 {
		return false
	}

	sort.Slice(branches[:size], func(i, j int) bool {
		if branches[i].lb != branches[j].lb {
			return branches[i].lb < branches[j].lb
		}
		return branches[i].qDst > branches[j].qDst
	})

	for i := 0; i < size; i++ {
		dn := branches[i].dst
		sc.path[level] = Relocation{Pri: pn, Src: sn, Dst: dn}
		sc.hist[level+1].lb = branches[i].lb
		sc.hist[level+1].state.ReuseHead(branches[i].state)

		if sc.hist[level+1].state.H[dn] == currState.H[dn]+1 {
			sc.hist[level+1].state.setItem(dn, sc.hist[level+1].state.H[dn], pn, level+1)
		}

		if sc.search(level+1, branches[size:]) {
			return true
		}
	}
	return false
}

func (sc *ctx) event(status string) ProgressEvent {
	return ProgressEvent{
		Status:  status,
		BestLB:  sc.bestLB,
		BestUB:  sc.bestUB,
		NNodes:  sc.nNodes,
		NProbe:  sc.nProbe,
		Elapsed: sc.start.Elapsed(),
	}
}
