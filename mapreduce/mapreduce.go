// Package mapreduce runs generic map/combine jobs over an in-memory dataset.
//
// A job splits its records into contiguous slices, folds every slice in its
// own goroutine, and merges the mapped pairs into a shared store guarded by
// per-slot locks. Counting words looks like this:
//
//	store, err := mapreduce.Run(words,
//		func(w string) (string, int) { return strings.ToLower(w), 1 },
//		mapreduce.Sum[int],
//		mapreduce.HashString,
//		4)
//
// The map function runs once per record and must not touch shared state.
// The combiner must be associative, and commutative whenever the final
// value has to be independent of task interleaving.
package mapreduce

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

// Job binds a dataset to a store and the functions that fold the former
// into the latter. The zero value is not usable; construct with NewJob.
type Job[R any, K comparable, V any] struct {
	id      string
	store   Store[K, V]
	data    []R
	mapf    MapFunc[R, K, V]
	combine CombineFunc[V]
}

// NewJob will create a job folding data into store through mapf and
// combine. The job holds references only; the dataset is not copied.
func NewJob[R any, K comparable, V any](store Store[K, V], data []R, mapf MapFunc[R, K, V], combine CombineFunc[V]) *Job[R, K, V] {
	return &Job[R, K, V]{
		id:      uuid.NewString(),
		store:   store,
		data:    data,
		mapf:    mapf,
		combine: combine,
	}
}

type span struct {
	begin, end int
}

// splitRecords cuts n records into ntasks contiguous spans of n/ntasks
// records each, the last span absorbing the remainder. When ntasks exceeds
// n the leading spans are empty and the last one holds everything.
func splitRecords(n, ntasks int) []span {
	per := n / ntasks
	spans := make([]span, ntasks)
	for i := range spans {
		spans[i] = span{begin: i * per, end: (i + 1) * per}
	}
	spans[ntasks-1].end = n
	return spans
}

// Exec will run the job over ntasks parallel tasks and block until every
// task has finished. Each task folds its own slice of the dataset; all
// tasks are started before any is joined, so the whole dataset is in
// flight at once. The returned error joins the verdicts of the tasks that
// panicked: the records such a task had already folded stay in the store,
// the rest of its slice is abandoned. A job may be executed again, which
// folds the dataset into the same store on top of the previous results.
func (j *Job[R, K, V]) Exec(ntasks int) error {
	if j.store == nil {
		return errors.New("mapreduce: job has no store")
	}
	if j.mapf == nil {
		return errors.New("mapreduce: job has no map function")
	}
	if j.combine == nil {
		return errors.New("mapreduce: job has no combine function")
	}
	if ntasks < 1 {
		return fmt.Errorf("mapreduce: job needs at least one task, got %v", ntasks)
	}

	var (
		spans = splitRecords(len(j.data), ntasks)
		tasks = make([]*task[R, K, V], ntasks)
		errs  []error
	)

	glog.V(1).Infof("Job %v folding %v records over %v tasks", j.id, len(j.data), ntasks)

	for i, sp := range spans {
		tasks[i] = newTask(i, sp.begin, j.data[sp.begin:sp.end], j.store, j.mapf, j.combine)
	}

	// Every task must be running before the first join; joining as we
	// start would serialize the fold.
	for _, t := range tasks {
		t.start()
	}

	for _, t := range tasks {
		if err := t.join(); err != nil {
			glog.Errorf("Job %v: %v", j.id, err)
			errs = append(errs, err)
		}
	}

	glog.V(1).Infof("Job %v done", j.id)
	return errors.Join(errs...)
}

// Run is the one-call form: it builds a MapStore over hash, folds data
// into it with a job of ntasks tasks, and returns the store alongside
// Exec's verdict. The store comes back even on error, holding whatever
// the surviving tasks folded.
func Run[R any, K comparable, V any](data []R, mapf MapFunc[R, K, V], combine CombineFunc[V], hash HashFunc[K], ntasks int) (*MapStore[K, V], error) {
	if hash == nil {
		return nil, errors.New("mapreduce: Run requires a hash function")
	}
	store := NewMapStore[K, V](hash)
	return store, NewJob(store, data, mapf, combine).Exec(ntasks)
}
