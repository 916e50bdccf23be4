// Package random provides the randomness abstraction shared by the question
// generator and the loot table, so tests can supply deterministic sequences.
package random

// Source is the randomness provider for question and loot generation.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int

	// Float64 returns a random float64 in [0, 1).
	Float64() float64
}

// Between returns a uniform random int in [min, max] inclusive.
//
// Precondition: src must be non-nil; min <= max.
func Between(src Source, min, max int) int {
	if min > max {
		panic("random: Between called with min > max")
	}
	if min == max {
		return min
	}
	return min + src.Intn(max-min+1)
}

// Pick returns a uniformly chosen element of items.
//
// Precondition: src must be non-nil; items must be non-empty.
func Pick[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic("random: Pick called with empty slice")
	}
	return items[src.Intn(len(items))]
}
