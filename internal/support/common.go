// Package support collects small generic helpers shared across the
// CLI and collaborator packages. The solver core in internal/brp does
// not depend on this package: Must/Must0 panic on error, which is fine
// for CLI glue but wrong inside the solver, where every failure is an
// explicit return value or an assertion (see internal/brp/assert.go).
package support

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
)

// Must unwraps val if err is nil, and panics otherwise. Useful for
// collapsing (value, error) returns at CLI-boundary call sites where a
// failure is truly unrecoverable (e.g. loading a bundled default).
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Must0 panics if err is non-nil.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// CloseFile closes f and logs any error, since a deferred Close error
// has nowhere else to go.
func CloseFile(f *os.File) {
	if err := f.Close(); err != nil {
		log.Printf("error closing file: %v", err)
	}
}

// MustFprintf writes a formatted string to w, logging and exiting the
// process if the write fails. Intended for console output where a
// failed write means the output stream itself is broken.
func MustFprintf(w io.Writer, format string, args ...interface{}) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		log.Fatalf("write failed: %v", err)
	}
}

// MustFprintln writes args followed by a newline to w, logging and
// exiting the process if the write fails.
func MustFprintln(w io.Writer, args ...interface{}) {
	if _, err := fmt.Fprintln(w, args...); err != nil {
		log.Fatalf("write failed: %v", err)
	}
}

// CountPair is a key/count pair extracted from a map[K]int, used for
// sorted frequency-table style summaries.
type CountPair[K comparable] struct {
	Key   K
	Count int
}

// SortedByCountDesc returns the entries of m sorted by Count descending,
// breaking ties in an unspecified but stable order.
func SortedByCountDesc[K comparable](m map[K]int) []CountPair[K] {
	pairs := make([]CountPair[K], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, CountPair[K]{k, v})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Count > pairs[j].Count
	})
	return pairs
}

// WithDefault returns m[key] if present, else defVal.
func WithDefault[K comparable, V any](m map[K]V, key K, defVal V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return defVal
}
