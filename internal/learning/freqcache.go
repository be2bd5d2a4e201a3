package learning

import "container/heap"

// freqCache is a fixed-capacity frequency counter. When an insert pushes it
// over capacity, the least-frequent entry is evicted. Entries sit in a
// min-heap keyed by frequency so eviction is O(log n) and increments are
// in-place heap fix-ups, not a re-sort.
type freqCache[K comparable] struct {
	entries  map[K]*freqEntry[K]
	heap     entryHeap[K]
	capacity int
}

type freqEntry[K comparable] struct {
	key   K
	freq  int
	index int
}

func newFreqCache[K comparable](capacity int) *freqCache[K] {
	return &freqCache[K]{
		entries:  make(map[K]*freqEntry[K]),
		capacity: capacity,
	}
}

// Increment bumps the frequency for key, inserting it at 1 when absent and
// evicting the least-frequent entry if the cache is over capacity.
func (c *freqCache[K]) Increment(key K) {
	if e, ok := c.entries[key]; ok {
		e.freq++
		heap.Fix(&c.heap, e.index)
		return
	}

	e := &freqEntry[K]{key: key, freq: 1}
	c.entries[key] = e
	heap.Push(&c.heap, e)

	for len(c.entries) > c.capacity {
		evicted := heap.Pop(&c.heap).(*freqEntry[K])
		delete(c.entries, evicted.key)
	}
}

// Get returns the frequency for key, zero when absent.
func (c *freqCache[K]) Get(key K) int {
	if e, ok := c.entries[key]; ok {
		return e.freq
	}
	return 0
}

// Len returns the number of live entries.
func (c *freqCache[K]) Len() int {
	return len(c.entries)
}

// Items copies the cache contents into a plain map.
func (c *freqCache[K]) Items() map[K]int {
	items := make(map[K]int, len(c.entries))
	for key, e := range c.entries {
		items[key] = e.freq
	}
	return items
}

// Set forces a frequency, used when restoring a persisted snapshot. The
// same eviction rule applies.
func (c *freqCache[K]) Set(key K, freq int) {
	if freq <= 0 {
		return
	}
	if e, ok := c.entries[key]; ok {
		e.freq = freq
		heap.Fix(&c.heap, e.index)
		return
	}
	e := &freqEntry[K]{key: key, freq: freq}
	c.entries[key] = e
	heap.Push(&c.heap, e)
	for len(c.entries) > c.capacity {
		evicted := heap.Pop(&c.heap).(*freqEntry[K])
		delete(c.entries, evicted.key)
	}
}

// entryHeap implements heap.Interface as a min-heap on frequency.
type entryHeap[K comparable] []*freqEntry[K]

func (h entryHeap[K]) Len() int            { return len(h) }
func (h entryHeap[K]) Less(i, j int) bool  { return h[i].freq < h[j].freq }
func (h entryHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap[K]) Push(x any) {
	e := x.(*freqEntry[K])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap[K]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}
