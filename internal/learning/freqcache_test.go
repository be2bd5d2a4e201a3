package learning

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreqCacheIncrementAndGet(t *testing.T) {
	cache := newFreqCache[string](10)

	cache.Increment("a")
	cache.Increment("a")
	cache.Increment("b")

	assert.Equal(t, 2, cache.Get("a"))
	assert.Equal(t, 1, cache.Get("b"))
	assert.Equal(t, 0, cache.Get("missing"))
	assert.Equal(t, 2, cache.Len())
}

func TestFreqCacheEvictsLeastFrequent(t *testing.T) {
	cache := newFreqCache[string](3)

	for i := 0; i < 5; i++ {
		cache.Increment("hot")
	}
	cache.Increment("warm")
	cache.Increment("warm")
	cache.Increment("cold")
	cache.Increment("new") // over capacity: evicts the least frequent

	assert.Equal(t, 3, cache.Len())
	assert.Equal(t, 5, cache.Get("hot"))
	assert.Equal(t, 2, cache.Get("warm"))
	// Exactly one of the two frequency-1 entries survives.
	survivors := 0
	for _, key := range []string{"cold", "new"} {
		if cache.Get(key) > 0 {
			survivors++
		}
	}
	assert.Equal(t, 1, survivors)
}

func TestFreqCacheIncrementRescuesEntry(t *testing.T) {
	cache := newFreqCache[string](2)

	cache.Increment("a")
	cache.Increment("b")
	cache.Increment("b")
	// "a" has the lowest frequency; bumping it repeatedly keeps it ahead of
	// churn below.
	cache.Increment("a")
	cache.Increment("a")
	cache.Increment("c")

	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, 3, cache.Get("a"))
}

func TestFreqCacheNeverExceedsCapacity(t *testing.T) {
	cache := newFreqCache[int](50)

	for i := 0; i < 1000; i++ {
		cache.Increment(i % 137)
	}

	assert.LessOrEqual(t, cache.Len(), 50)
}

func TestFreqCacheItems(t *testing.T) {
	cache := newFreqCache[string](10)
	cache.Increment("a")
	cache.Increment("a")
	cache.Increment("b")

	items := cache.Items()
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, items)

	// Items is a copy: mutating it must not touch the cache.
	items["a"] = 99
	assert.Equal(t, 2, cache.Get("a"))
}

func TestFreqCacheSet(t *testing.T) {
	cache := newFreqCache[string](3)

	cache.Set("a", 10)
	cache.Set("b", 1)
	cache.Set("c", 5)
	cache.Set("d", 7)

	assert.Equal(t, 3, cache.Len())
	assert.Equal(t, 10, cache.Get("a"))
	assert.Equal(t, 0, cache.Get("b"), "lowest frequency is evicted on overflow")
	assert.Equal(t, 0, cache.Get("missing"))

	cache.Set("ignored", 0)
	assert.Equal(t, 3, cache.Len())
}

func TestFreqCacheManyKeys(t *testing.T) {
	type key struct {
		Hour int
		Name string
	}
	cache := newFreqCache[key](200)

	for i := 0; i < 500; i++ {
		cache.Increment(key{Hour: i % 24, Name: fmt.Sprintf("k%d", i)})
	}

	assert.Equal(t, 200, cache.Len())
}
