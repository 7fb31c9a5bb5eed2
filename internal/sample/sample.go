// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sample draws random elements from read-only slices.
//
// Unique samples without replacement using a Fisher-Yates shuffle of a copy;
// One picks a single element. Both take an optional *rand.Rand so callers
// can seed them; a nil source uses the math/rand/v2 global generator.
package sample

import "math/rand/v2"

// Unique returns min(count, len(list)) distinct elements of list in random
// order. A negative count is treated as zero. The input is never modified,
// and the result is never nil.
func Unique[T any](r *rand.Rand, list []T, count int) []T {
	if count < 0 {
		count = 0
	}
	n := min(count, len(list))

	shuffled := make([]T, len(list))
	copy(shuffled, list)
	Shuffle(r, shuffled)

	return shuffled[:n:n]
}

// One returns a uniformly random element of list. The boolean is false, and
// the element the zero value, when list is empty.
func One[T any](r *rand.Rand, list []T) (T, bool) {
	var zero T
	if len(list) == 0 {
		return zero, false
	}
	return list[intN(r, len(list))], true
}

// Shuffle permutes s in place. Each of the len(s)! orderings is equally likely.
func Shuffle[T any](r *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := intN(r, i+1)
		s[i], s[j] = s[j], s[i]
	}
}

func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}
