// Package histogram provides a generic multiset container with ordered key
// iteration, used as the frequency-count building block for the classifier.
package histogram

import (
	"cmp"
	"slices"
)

// Histogram counts occurrences of keys. The zero value is not usable; create
// instances with New. Keys iterate in their natural ascending order, which
// callers rely on for deterministic tie-breaking.
type Histogram[K cmp.Ordered] struct {
	counts map[K]int
	total  int
}

// New creates an empty Histogram.
func New[K cmp.Ordered]() *Histogram[K] {
	return &Histogram[K]{counts: make(map[K]int)}
}

// Bump increments the count for key by 1.
func (h *Histogram[K]) Bump(key K) {
	h.counts[key]++
	h.total++
}

// BumpBy increments the count for key by n. n must be non-negative; counts
// never decrease.
func (h *Histogram[K]) BumpBy(key K, n int) {
	if n < 0 {
		return
	}
	h.counts[key] += n
	h.total += n
}

// Count returns the number of occurrences recorded for key, or 0 if the key
// has never been bumped.
func (h *Histogram[K]) Count(key K) int {
	return h.counts[key]
}

// Total returns the sum of all counts.
func (h *Histogram[K]) Total() int {
	return h.total
}

// Len returns the number of distinct keys with at least one occurrence.
func (h *Histogram[K]) Len() int {
	return len(h.counts)
}

// Keys returns all keys with at least one occurrence in ascending order.
func (h *Histogram[K]) Keys() []K {
	keys := make([]K, 0, len(h.counts))
	for k := range h.counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Range calls fn for each key/count pair in ascending key order. Iteration
// stops early if fn returns false.
func (h *Histogram[K]) Range(fn func(key K, count int) bool) {
	for _, k := range h.Keys() {
		if !fn(k, h.counts[k]) {
			return
		}
	}
}

// Proportion returns Count(key) / Total(), or 0 when the histogram is empty.
func (h *Histogram[K]) Proportion(key K) float64 {
	if h.total == 0 {
		return 0
	}
	return float64(h.counts[key]) / float64(h.total)
}
