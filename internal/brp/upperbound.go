package brp

// MinMax greedily completes st into a fully retrieved yard, recording
// each relocation at path[length], path[length+1], ... (if path is
// non-nil) and returning the final move count. It reports ok=false,
// leaving st and path mutated but meaningless, the moment the
// remaining relocations provably cannot finish within maxLen moves
// total (used both for "is this instance feasible at all" and for LB-
// probing: "can this branch beat the incumbent").
//
// The heuristic always retrieves everything retrievable first, then
// relocates the globally worst stack's top block: onto the lowest-
// quality stack that can accept it without creating a new bad block if
// one exists, otherwise onto the highest-quality stack with room (or,
// when that stack would become full, the next-highest-quality one with
// room, if any). Grounded on
// the reference solver's greedy_minmax upper bound.
func MinMax(st *State, path *[]Relocation, length, maxLen int) (int, bool) {
	if length+st.NBad > maxLen {
		return 0, false
	}
	stacks, tiers := st.Stacks, st.Tiers

	for st.NBad > 0 {
		for st.IsRetrievable() {
			st.Retrieve(length)
		}

		src := st.List[0]
		nEmptySlots := (stacks-1)*tiers - (st.NBlocks - st.H[src])
		if st.Conf[src][st.H[src]].B > nEmptySlots {
			return 0, false
		}
		pri := st.Conf[src][st.H[src]].P

		iMax, qMax := 0, 0
		for i := stacks - 1; ; i-- {
			s := st.List[i]
			if st.H[s] < tiers {
				iMax, qMax = i, st.Conf[s][st.H[s]].Q
				break
			}
		}

		if pri > qMax && length+st.NBad == maxLen {
			return 0, false
		}

		var dst int
		if pri <= qMax {
			for i := 1; ; i++ {
				s := st.List[i]
				if st.H[s] < tiers && pri <= st.Conf[s][st.H[s]].Q {
					dst = s
					break
				}
			}
		} else {
			dst = st.List[iMax]
			if st.H[dst] == tiers-1 {
				for i := iMax - 1; i > 0; i-- {
					s := st.List[i]
					if st.H[s] < tiers {
						dst = s
						break
					}
				}
			}
		}

		if path != nil {
			*path = append((*path)[:length], Relocation{Pri: pri, Src: src, Dst: dst})
		}
		length++
		st.Relocate(src, dst, length)
	}

	for st.IsRetrievable() {
		st.Retrieve(length)
	}
	return length, true
}
