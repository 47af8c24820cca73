package strmetric

import (
	"container/list"
	"encoding/binary"
	"math"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/tamirms/strmetric/internal/bits"
	"github.com/tamirms/strmetric/internal/encoding"
)

const (
	// defaultCacheMinUnits is the combined input length below which results
	// are recomputed rather than cached; hashing short inputs costs about as
	// much as the metric itself.
	defaultCacheMinUnits = 64

	// cacheShards splits the cache to reduce lock contention.
	cacheShards = 8

	// hashChunkUnits bounds the scratch buffer used while hashing inputs.
	hashChunkUnits = 256
)

// Operation tags mixed into cache keys.
const (
	opLevenshtein byte = iota + 1
	opJaroWinkler
	opEntropy
	opJaro
)

type cacheEntry struct {
	key   xxh3.Uint128
	value uint64
}

type lruCache struct {
	mu    sync.Mutex
	cap   int
	ll    *list.List
	items map[xxh3.Uint128]*list.Element
}

func newLRU(size int) *lruCache {
	if size <= 0 {
		return nil
	}
	return &lruCache{
		cap:   size,
		ll:    list.New(),
		items: make(map[xxh3.Uint128]*list.Element, size),
	}
}

func (c *lruCache) Get(key xxh3.Uint128) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.ll.MoveToFront(elem)
		return elem.Value.(cacheEntry).value, true
	}
	return 0, false
}

func (c *lruCache) Add(key xxh3.Uint128, value uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value = cacheEntry{key: key, value: value}
		c.ll.MoveToFront(elem)
		return
	}

	elem := c.ll.PushFront(cacheEntry{key: key, value: value})
	c.items[key] = elem

	if c.ll.Len() > c.cap {
		back := c.ll.Back()
		if back != nil {
			c.ll.Remove(back)
			entry := back.Value.(cacheEntry)
			delete(c.items, entry.key)
		}
	}
}

func (c *lruCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// WithCache wraps m with an LRU cache of up to size results. Caching is
// opt-in; the package-level functions never cache.
//
// The size entries are split across up to eight shards, each evicting
// independently, so the cache never holds more than size results.
//
// Inputs are keyed by a 128-bit xxHash3 of their code points, so narrow and
// wide storage of the same text share an entry and no input slice is
// retained. Cardinality is never cached: its early exit already makes it
// cheaper than hashing. A size <= 0 returns m unchanged. The returned
// Metrics is safe for concurrent use if m is.
func WithCache(m Metrics, size int) Metrics {
	if m == nil {
		m = Default()
	}
	if size <= 0 {
		return m
	}
	n := min(size, cacheShards)
	c := &cachedMetrics{
		inner:    m,
		shards:   make([]*lruCache, n),
		minUnits: defaultCacheMinUnits,
	}
	for i := range c.shards {
		perShard := size / n
		if i < size%n {
			perShard++
		}
		c.shards[i] = newLRU(perShard)
	}
	return c
}

type cachedMetrics struct {
	inner    Metrics
	shards   []*lruCache
	minUnits int
}

func (c *cachedMetrics) shard(key xxh3.Uint128) *lruCache {
	return c.shards[bits.FastRange32(key.Hi, uint32(len(c.shards)))]
}

func (c *cachedMetrics) lookup(key xxh3.Uint128, compute func() uint64) uint64 {
	s := c.shard(key)
	if v, ok := s.Get(key); ok {
		return v
	}
	v := compute()
	s.Add(key, v)
	return v
}

func (c *cachedMetrics) Cardinality(text Text, opts ...CardinalityOption) (uint32, error) {
	return c.inner.Cardinality(text, opts...)
}

func (c *cachedMetrics) Levenshtein(a, b Text) int {
	if a.Len()+b.Len() < c.minUnits {
		return c.inner.Levenshtein(a, b)
	}
	v := c.lookup(cacheKey(opLevenshtein, a, b), func() uint64 {
		return uint64(c.inner.Levenshtein(a, b))
	})
	return int(v)
}

func (c *cachedMetrics) Jaro(a, b Text) float64 {
	if a.Len()+b.Len() < c.minUnits {
		return c.inner.Jaro(a, b)
	}
	v := c.lookup(cacheKey(opJaro, a, b), func() uint64 {
		return math.Float64bits(c.inner.Jaro(a, b))
	})
	return math.Float64frombits(v)
}

func (c *cachedMetrics) JaroWinkler(a, b Text) float64 {
	if a.Len()+b.Len() < c.minUnits {
		return c.inner.JaroWinkler(a, b)
	}
	v := c.lookup(cacheKey(opJaroWinkler, a, b), func() uint64 {
		return math.Float64bits(c.inner.JaroWinkler(a, b))
	})
	return math.Float64frombits(v)
}

func (c *cachedMetrics) ShannonEntropy(text Text) float64 {
	if text.Len() < c.minUnits {
		return c.inner.ShannonEntropy(text)
	}
	v := c.lookup(cacheKey(opEntropy, text), func() uint64 {
		return math.Float64bits(c.inner.ShannonEntropy(text))
	})
	return math.Float64frombits(v)
}

// cacheKey hashes an operation tag, the input lengths and the inputs' units
// widened to little-endian uint16. Lengths are hashed up front so that
// ("ab", "c") and ("a", "bc") differ.
func cacheKey(op byte, texts ...Text) xxh3.Uint128 {
	h := xxh3.New()
	var buf [2 * hashChunkUnits]byte

	hdr := append(buf[:0], op)
	for _, t := range texts {
		hdr = binary.LittleEndian.AppendUint64(hdr, uint64(t.Len()))
	}
	_, _ = h.Write(hdr)

	for _, t := range texts {
		if t.IsNarrow() {
			for rest := t.narrow; len(rest) > 0; {
				n := min(len(rest), hashChunkUnits)
				_, _ = h.Write(encoding.AppendLatin1LE(buf[:0], rest[:n]))
				rest = rest[n:]
			}
			continue
		}
		for rest := t.wide; len(rest) > 0; {
			n := min(len(rest), hashChunkUnits)
			_, _ = h.Write(encoding.AppendUnitsLE(buf[:0], rest[:n]))
			rest = rest[n:]
		}
	}
	return h.Sum128()
}
