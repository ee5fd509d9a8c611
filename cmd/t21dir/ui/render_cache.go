package ui

import (
	"hash/fnv"
	"strconv"
	"sync"
)

// RenderCache memoizes expensive renders such as glamour output of detail
// text. Once full it is dropped wholesale; entries are cheap to rebuild.
type RenderCache struct {
	mu      sync.Mutex
	entries map[uint64]string
	maxSize int
	hits    int
	misses  int
}

// NewRenderCache creates a cache holding at most maxSize entries.
func NewRenderCache(maxSize int) *RenderCache {
	return &RenderCache{
		entries: make(map[uint64]string),
		maxSize: max(maxSize, 1),
	}
}

// ComputeKey hashes a width and the text being rendered.
func ComputeKey(width int, text string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(strconv.Itoa(width)))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return h.Sum64()
}

// GetOrCompute returns the cached render for key, computing it on a miss.
// A nil cache always computes.
func (rc *RenderCache) GetOrCompute(key uint64, compute func() string) string {
	if rc == nil {
		return compute()
	}
	rc.mu.Lock()
	if out, ok := rc.entries[key]; ok {
		rc.hits++
		rc.mu.Unlock()
		return out
	}
	rc.misses++
	rc.mu.Unlock()

	out := compute()

	rc.mu.Lock()
	if len(rc.entries) >= rc.maxSize {
		rc.entries = make(map[uint64]string)
	}
	rc.entries[key] = out
	rc.mu.Unlock()
	return out
}

// Clear empties the cache, e.g. after the terminal width changed.
func (rc *RenderCache) Clear() {
	if rc == nil {
		return
	}
	rc.mu.Lock()
	rc.entries = make(map[uint64]string)
	rc.mu.Unlock()
}

// Stats reports hits and misses since creation.
func (rc *RenderCache) Stats() (hits, misses int) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.hits, rc.misses
}
