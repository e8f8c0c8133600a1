package brp

import "sort"

// LB4 computes the Zhu/Tanaka-style lower bound on the number of
// relocations still required from st: the current bad-block count
// plus, for each blocking suffix in turn, the minimum number of its
// blocks that cannot be matched one-to-one against a "slot" opened up
// by some other stack's current target quality (an assignment problem
// solved by backtracking in enumerate/insertionPoint).
//
// maxK caps the extra term: once it is clear the bound will reach
// maxK or more, LB4 returns early with NBad+maxK rather than finishing
// the exact count, since callers only ever compare the bound against a
// fixed budget. Passing a maxK <= 0 returns NBad immediately.
func LB4(st *State, maxK int) int {
	if st.NBad == 0 || maxK <= 0 {
		return st.NBad
	}

	stacks, tiers := st.Stacks, st.Tiers
	h := append([]int(nil), st.H...)
	list := append([]int(nil), st.List...)

	var qMax int
	for i := stacks - 1; ; i-- {
		s := list[i]
		if h[s] < tiers {
			qMax = st.Conf[s][h[s]].Q
			break
		}
	}

	priority := make([]int, 0, tiers)
	quality := make([]int, 0, stacks)

	k := 0
	remain := st.NBad
	for remain > 0 {
		sMin := list[0]
		badCnt := st.Conf[sMin][h[sMin]].B

		priority = priority[:0]
		for t := h[sMin]; t > h[sMin]-badCnt; t-- {
			if st.Conf[sMin][t].P > qMax {
				k++
				if k >= maxK {
					return st.NBad + k
				}
			} else {
				priority = append(priority, st.Conf[sMin][t].P)
			}
		}

		if len(priority) > 1 {
			quality = quality[:0]
			for i := 1; i < stacks; i++ {
				s := list[i]
				if h[s] < tiers {
					quality = append(quality, st.Conf[s][h[s]].Q)
				}
			}
			k += enumerate(priority, 0, quality, 0, len(priority))
			if k >= maxK {
				return st.NBad + maxK
			}
		}

		remain -= badCnt
		h[sMin] -= badCnt + 1
		adjustRightLocal(list, h, st.Conf, sMin, stacks)

		if newQ := st.Conf[sMin][h[sMin]].Q; newQ > qMax {
			qMax = newQ
		}
	}
	return st.NBad + k
}

// adjustRightLocal replays adjustRight against detached h/list copies,
// used so LB4 can simulate peeling off blocking suffixes without
// mutating the real state or its Rank array (LB4 never needs Rank).
func adjustRightLocal(list, h []int, conf [][]slot, s, stacks int) {
	q := func(x int) int { return conf[x][h[x]].Q }
	i := 0
	for i < stacks-1 && q(s) > q(list[i+1]) {
		list[i] = list[i+1]
		i++
	}
	list[i] = s
}

// insertionPoint returns the index of the first element of the sorted
// slice arr that is >= val, i.e. where val would be inserted to keep
// arr sorted; len(arr) if val is larger than every element.
func insertionPoint(arr []int, val int) int {
	return sort.SearchInts(arr, val)
}

// enumerate backtracks over an assignment of priority[next:] to the
// available quality "slots", each slot usable once, a priority
// assignable to a slot only if the slot's quality is >= the priority
// (insertionPoint finds the least such slot). It returns the minimum
// number of priorities that end up unassigned, capped from above by
// best.
func enumerate(priority []int, next int, quality []int, curr, best int) int {
	if next == len(priority) {
		if curr < best {
			return curr
		}
		return best
	}
	pos := insertionPoint(quality, priority[next])
	if pos < len(quality) {
		backup := quality[pos]
		quality[pos] = priority[next]
		best = enumerate(priority, next+1, quality, curr, best)
		quality[pos] = backup
	}
	if pos > 0 && curr+1 < best {
		best = enumerate(priority, next+1, quality, curr+1, best)
	}
	return best
}
