package mapreduce

import (
	"fmt"
	"sync/atomic"

	"github.com/golang/glog"
)

type taskStatus int32

const (
	TASK_CREATED taskStatus = iota
	TASK_RUNNING
	TASK_FINISHED
)

// task folds one contiguous slice of the job's records into the shared
// store. begin is the slice's offset in the full dataset, kept so failures
// can name the absolute record that caused them.
type task[R any, K comparable, V any] struct {
	id      int
	begin   int
	recs    []R
	store   Store[K, V]
	mapf    MapFunc[R, K, V]
	combine CombineFunc[V]

	status atomic.Int32
	err    error
	done   chan struct{}
}

func newTask[R any, K comparable, V any](id, begin int, recs []R, store Store[K, V], mapf MapFunc[R, K, V], combine CombineFunc[V]) *task[R, K, V] {
	return &task[R, K, V]{
		id:      id,
		begin:   begin,
		recs:    recs,
		store:   store,
		mapf:    mapf,
		combine: combine,
		done:    make(chan struct{}),
	}
}

// start will launch the task's goroutine. Called exactly once per task.
func (t *task[R, K, V]) start() {
	t.status.Store(int32(TASK_RUNNING))
	go t.run()
}

func (t *task[R, K, V]) run() {
	rec := -1
	defer func() {
		if r := recover(); r != nil {
			t.err = fmt.Errorf("task %v: record %v: %v", t.id, t.begin+rec, r)
		}
		t.status.Store(int32(TASK_FINISHED))
		close(t.done)
	}()
	glog.V(2).Infof("Task %v processing records [%v, %v)", t.id, t.begin, t.begin+len(t.recs))
	for i := range t.recs {
		rec = i
		key, val := t.mapf(t.recs[i])
		t.combineOne(key, val)
	}
	glog.V(2).Infof("Task %v done", t.id)
}

// combineOne folds one mapped pair into the store under the key's slot
// lock. The unlock is deferred so a panicking combiner cannot strand the
// slot and hang the remaining tasks.
func (t *task[R, K, V]) combineOne(key K, val V) {
	t.store.Lock(key)
	defer t.store.Unlock(key)
	t.combine(t.store.Lookup(key), val)
}

// join will block until the task finishes and return its verdict: nil, or
// the panic that cut it short. Safe to call any number of times.
func (t *task[R, K, V]) join() error {
	<-t.done
	return t.err
}

func (t *task[R, K, V]) currentStatus() taskStatus {
	return taskStatus(t.status.Load())
}
