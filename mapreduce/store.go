package mapreduce

import "sync"

const DEFAULT_SHARDS = 256

// Store is the shared accumulator a job folds into. Tasks call Lock before
// touching the cell of a key and Unlock after, so combines on the same key
// never overlap. Keys that hash to different slots lock independently and
// proceed in parallel.
type Store[K comparable, V any] interface {
	// Lock will acquire the slot holding key.
	Lock(key K)
	// Unlock will release the slot holding key.
	Unlock(key K)
	// Lookup will return the accumulator cell of key, creating a zeroed
	// cell on first sight. The caller must hold the key's slot lock.
	Lookup(key K) *V
}

// MapStore is the in-memory Store used by jobs: a fixed power-of-two number
// of slots, each guarding its own map of cells with its own mutex.
type MapStore[K comparable, V any] struct {
	hash   HashFunc[K]
	shards []storeShard[K, V]
	mask   uint64
}

type storeShard[K comparable, V any] struct {
	mu    sync.Mutex
	cells map[K]*V
}

// NewMapStore will create a MapStore with DEFAULT_SHARDS slots.
func NewMapStore[K comparable, V any](hash HashFunc[K]) *MapStore[K, V] {
	return NewMapStoreShards[K, V](hash, DEFAULT_SHARDS)
}

// NewMapStoreShards will create a MapStore with at least nshards slots,
// rounded up to a power of two. Values below one fall back to the default.
func NewMapStoreShards[K comparable, V any](hash HashFunc[K], nshards int) *MapStore[K, V] {
	if hash == nil {
		panic("mapreduce: NewMapStore requires a hash function")
	}
	if nshards < 1 {
		nshards = DEFAULT_SHARDS
	}
	n := nextPow2(nshards)
	s := &MapStore[K, V]{
		hash:   hash,
		shards: make([]storeShard[K, V], n),
		mask:   uint64(n - 1),
	}
	for i := range s.shards {
		s.shards[i].cells = make(map[K]*V)
	}
	return s
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (s *MapStore[K, V]) shardFor(key K) *storeShard[K, V] {
	return &s.shards[s.hash(key)&s.mask]
}

func (s *MapStore[K, V]) Lock(key K)   { s.shardFor(key).mu.Lock() }
func (s *MapStore[K, V]) Unlock(key K) { s.shardFor(key).mu.Unlock() }

func (s *MapStore[K, V]) Lookup(key K) *V {
	sh := s.shardFor(key)
	cell, ok := sh.cells[key]
	if !ok {
		cell = new(V)
		sh.cells[key] = cell
	}
	return cell
}

// Get will return the current value of key, or V's zero value and false if
// no task has folded the key yet. Safe to call while tasks are running,
// though the value may be mid-fold.
func (s *MapStore[K, V]) Get(key K) (V, bool) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if cell, ok := sh.cells[key]; ok {
		return *cell, true
	}
	var zero V
	return zero, false
}

// Len will return the number of distinct keys folded so far.
func (s *MapStore[K, V]) Len() int {
	n := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		n += len(sh.cells)
		sh.mu.Unlock()
	}
	return n
}

// Range will call visit for every key/value pair until visit returns false.
// Each slot is copied under its lock and visited unlocked, so visit may call
// back into the store. Order is unspecified.
func (s *MapStore[K, V]) Range(visit func(key K, val V) bool) {
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		part := make(map[K]V, len(sh.cells))
		for k, cell := range sh.cells {
			part[k] = *cell
		}
		sh.mu.Unlock()
		for k, v := range part {
			if !visit(k, v) {
				return
			}
		}
	}
}

// Snapshot will copy the store's contents into a plain map.
func (s *MapStore[K, V]) Snapshot() map[K]V {
	out := make(map[K]V)
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		for k, cell := range sh.cells {
			out[k] = *cell
		}
		sh.mu.Unlock()
	}
	return out
}
