package x

import "iter"

// Filter2 keeps the pairs of a two-value sequence the predicate accepts.
func Filter2[K, V any](seq iter.Seq2[K, V], fn func(K, V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range seq {
			if fn(k, v) && !yield(k, v) {
				return
			}
		}
	}
}
