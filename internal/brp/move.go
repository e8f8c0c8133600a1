package brp

import (
	"fmt"
	"strings"
)

// Relocation records one block move: a block of priority Pri taken
// from the top of stack Src and placed on top of stack Dst.
type Relocation struct {
	Pri, Src, Dst int
}

// FormatPath renders a relocation sequence the way the reference
// solver's report prints a solution path: "(p: s -> d)" per move.
func FormatPath(path []Relocation) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, r := range path {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%d: %d -> %d)", r.Pri, r.Src, r.Dst)
	}
	sb.WriteByte(']')
	return sb.String()
}
