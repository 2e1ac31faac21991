package histogram

import (
	"math"
	"testing"
)

func TestHistogramBump(t *testing.T) {
	h := New[string]()

	if h.Total() != 0 || h.Len() != 0 {
		t.Errorf("empty histogram should have zero total and length, got total=%d len=%d", h.Total(), h.Len())
	}

	h.Bump("a")
	h.Bump("a")
	h.Bump("b")

	if got := h.Count("a"); got != 2 {
		t.Errorf("Count(a) = %d, want 2", got)
	}
	if got := h.Count("b"); got != 1 {
		t.Errorf("Count(b) = %d, want 1", got)
	}
	if got := h.Count("c"); got != 0 {
		t.Errorf("Count(c) = %d, want 0 for unseen key", got)
	}
	if got := h.Total(); got != 3 {
		t.Errorf("Total() = %d, want 3", got)
	}
	if got := h.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestHistogramBumpBy(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		wantCount int
		wantTotal int
	}{
		{name: "positive increment", n: 5, wantCount: 5, wantTotal: 5},
		{name: "zero increment", n: 0, wantCount: 0, wantTotal: 0},
		{name: "negative increment ignored", n: -3, wantCount: 0, wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New[int]()
			h.BumpBy(7, tt.n)
			if got := h.Count(7); got != tt.wantCount {
				t.Errorf("Count(7) = %d, want %d", got, tt.wantCount)
			}
			if got := h.Total(); got != tt.wantTotal {
				t.Errorf("Total() = %d, want %d", got, tt.wantTotal)
			}
		})
	}
}

func TestHistogramKeysOrdered(t *testing.T) {
	h := New[string]()
	for _, k := range []string{"pear", "apple", "mango", "apple"} {
		h.Bump(k)
	}

	want := []string{"apple", "mango", "pear"}
	got := h.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHistogramRange(t *testing.T) {
	h := New[int]()
	h.Bump(3)
	h.Bump(1)
	h.Bump(1)
	h.Bump(2)

	var keys []int
	var total int
	h.Range(func(k, c int) bool {
		keys = append(keys, k)
		total += c
		return true
	})

	if len(keys) != 3 || keys[0] != 1 || keys[1] != 2 || keys[2] != 3 {
		t.Errorf("Range visited keys %v, want [1 2 3]", keys)
	}
	if total != h.Total() {
		t.Errorf("sum of counts via Range = %d, want Total() = %d", total, h.Total())
	}

	// Early termination.
	var visited int
	h.Range(func(k, c int) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("Range with false return visited %d keys, want 1", visited)
	}
}

func TestHistogramProportion(t *testing.T) {
	h := New[string]()

	if got := h.Proportion("a"); got != 0 {
		t.Errorf("Proportion on empty histogram = %v, want 0", got)
	}

	h.Bump("a")
	h.Bump("a")
	h.Bump("b")

	if got := h.Proportion("a"); math.Abs(got-2.0/3.0) > 1e-12 {
		t.Errorf("Proportion(a) = %v, want 2/3", got)
	}
	if got := h.Proportion("missing"); got != 0 {
		t.Errorf("Proportion(missing) = %v, want 0", got)
	}
}

func TestHistogramTotalMatchesSum(t *testing.T) {
	h := New[int]()
	for i := 0; i < 100; i++ {
		h.Bump(i % 7)
	}

	var sum int
	h.Range(func(_, c int) bool {
		sum += c
		return true
	})
	if sum != h.Total() {
		t.Errorf("sum of per-key counts = %d, want %d", sum, h.Total())
	}
}
