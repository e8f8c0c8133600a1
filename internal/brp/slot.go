package brp

// slot holds the four values maintained per (stack, tier) position:
// the block's priority P, the running minimum priority Q from tier 1
// through this tier, the length B of the contiguous blocking suffix
// ending here, and the move sequence number L at which this slot was
// last written. See spec.md §3 "Slot attributes".
type slot struct {
	P, Q, B, L int
}

// setItem writes slot (s, t) from priority p and sequence number l,
// deriving Q and B from the slot directly below it. Mirrors
// set_item/update_slot in the reference implementation.
func (st *State) setItem(s, t, p, l int) {
	below := st.Conf[s][t-1]
	item := slot{P: p, L: l}
	if p <= below.Q {
		item.Q = p
		item.B = 0
	} else {
		item.Q = below.Q
		item.B = below.B + 1
	}
	st.Conf[s][t] = item
}
