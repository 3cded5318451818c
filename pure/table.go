package pure

import (
	"sync"
	"sync/atomic"
)

// Table is a two-generation trie of memoized results keyed by argument tuples.
type Table[O any] struct {
	generations [2]atomic.Pointer[sync.Map]
	head        atomic.Uint32
	size        atomic.Uint32
	maxSize     uint32
	rotate      sync.Mutex
}

// NewTable returns a table holding at most maxSize entries per generation.
func NewTable[O any](maxSize uint32) *Table[O] {
	if maxSize == 0 {
		panic("pure: maxSize should be greater than 0")
	}
	t := &Table[O]{maxSize: maxSize}
	t.generations[0].Store(&sync.Map{})
	t.generations[1].Store(&sync.Map{})
	return t
}

// Load looks keys up in the head generation, then in the previous one.
func (t *Table[O]) Load(keys []Key) (O, bool) {
	head := t.head.Load()
	for _, gen := range [2]uint32{head, 1 - head} {
		if v, ok := lookup(t.generations[gen].Load(), keys); ok {
			o, _ := v.(O)
			return o, true
		}
	}
	var zero O
	return zero, false
}

// Store records value under keys in the head generation.
func (t *Table[O]) Store(keys []Key, value O) {
	if t.size.Load() >= t.maxSize {
		t.rotate.Lock()
		if t.size.Load() >= t.maxSize {
			next := 1 - t.head.Load()
			t.generations[next].Store(&sync.Map{})
			t.head.Store(next)
			t.size.Store(0)
		}
		t.rotate.Unlock()
	}
	m, k := descend(t.generations[t.head.Load()].Load(), keys)
	if _, loaded := m.Swap(k, value); !loaded {
		t.size.Add(1)
	}
}

// Len reports the number of entries in the head generation.
func (t *Table[O]) Len() int {
	return int(t.size.Load())
}

func lookup(root *sync.Map, keys []Key) (any, bool) {
	if len(keys) == 0 {
		panic("pure: empty keys")
	}
	m := root
	for _, k := range keys[:len(keys)-1] {
		next, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		m = next.(*sync.Map)
	}
	return m.Load(keys[len(keys)-1])
}

func descend(root *sync.Map, keys []Key) (*sync.Map, Key) {
	if len(keys) == 0 {
		panic("pure: empty keys")
	}
	m := root
	for _, k := range keys[:len(keys)-1] {
		next, _ := m.LoadOrStore(k, &sync.Map{})
		m = next.(*sync.Map)
	}
	return m, keys[len(keys)-1]
}
