package mapreduce

import "cmp"

// MapFunc derives the intermediate key/value pair for a single record. It is
// called once per record and should be pure: the record is read-only, the
// result must depend on nothing but the record. A panic inside a MapFunc
// terminates the task running it (see Job.Exec).
type MapFunc[R any, K comparable, V any] func(rec R) (K, V)

// CombineFunc merges val into the accumulator cell acc in place. The
// operation must be associative. Combines on the same key coming from
// different tasks are serialized by the store's per-key lock but arrive in
// no particular order, so the final cell value is deterministic only when
// the operation is also commutative. Order-sensitive operations are
// accepted and not detected; their result depends on task interleaving.
type CombineFunc[V any] func(acc *V, val V)

// HashFunc spreads keys over store slots. Equal keys must hash equally;
// distribution quality directly controls how often independent keys contend
// for the same slot lock.
type HashFunc[K comparable] func(key K) uint64

// Sum is the default combiner: plain addition. For strings it concatenates,
// which is associative but not commutative.
func Sum[V cmp.Ordered](acc *V, val V) {
	*acc += val
}

// Max keeps the largest value combined into the cell. A fresh cell holds
// V's zero value, so the zero value must be the identity of the operation
// over the input domain (for Max, no input below zero).
func Max[V cmp.Ordered](acc *V, val V) {
	if val > *acc {
		*acc = val
	}
}

// Min keeps the smallest value combined into the cell, under the same
// zero-value caveat as Max (for Min, no input above zero).
func Min[V cmp.Ordered](acc *V, val V) {
	if val < *acc {
		*acc = val
	}
}

// Concat appends the incoming values to the cell's slice. Mapping each
// record to a one-element slice turns a job into grouping values by key.
func Concat[E any](acc *[]E, val []E) {
	*acc = append(*acc, val...)
}
