package bayes

import (
	"cmp"

	"github.com/YuminosukeSato/bayeskit/histogram"
)

// frequencyStore accumulates the two count tables backing the classifier: a
// histogram of labels seen during training, and one lazily created label
// histogram per distinct feature recording co-occurrences. It is purely
// additive; entries are never deleted or decayed. Synchronization is the
// caller's responsibility.
type frequencyStore[L cmp.Ordered, F comparable] struct {
	labels   *histogram.Histogram[L]
	features map[F]*histogram.Histogram[L]
}

func newFrequencyStore[L cmp.Ordered, F comparable]() *frequencyStore[L, F] {
	return &frequencyStore[L, F]{
		labels:   histogram.New[L](),
		features: make(map[F]*histogram.Histogram[L]),
	}
}

// bumpLabel records one occurrence of label.
func (s *frequencyStore[L, F]) bumpLabel(label L) {
	s.labels.Bump(label)
}

// bumpFeatureLabel records one co-occurrence of feature and label, creating
// the feature's table on first use.
func (s *frequencyStore[L, F]) bumpFeatureLabel(feature F, label L) {
	h, ok := s.features[feature]
	if !ok {
		h = histogram.New[L]()
		s.features[feature] = h
	}
	h.Bump(label)
}

// labelProbability returns count(label) / total, or 0 for an empty store.
func (s *frequencyStore[L, F]) labelProbability(label L) float64 {
	return s.labels.Proportion(label)
}

// labelCount returns the number of training examples seen for label.
func (s *frequencyStore[L, F]) labelCount(label L) int {
	return s.labels.Count(label)
}

// featureLabelCount returns how many times feature co-occurred with label,
// or 0 if the pairing (or the feature itself) was never observed.
func (s *frequencyStore[L, F]) featureLabelCount(feature F, label L) int {
	h, ok := s.features[feature]
	if !ok {
		return 0
	}
	return h.Count(label)
}

// knownLabels returns every label with at least one occurrence, in the label
// type's natural ascending order. This ordering is what makes tie-breaking
// at prediction time deterministic.
func (s *frequencyStore[L, F]) knownLabels() []L {
	return s.labels.Keys()
}

// totalExamples returns the number of training examples recorded.
func (s *frequencyStore[L, F]) totalExamples() int {
	return s.labels.Total()
}

// distinctLabels returns the number of labels with at least one occurrence.
func (s *frequencyStore[L, F]) distinctLabels() int {
	return s.labels.Len()
}

// distinctFeatures returns the number of features observed so far.
func (s *frequencyStore[L, F]) distinctFeatures() int {
	return len(s.features)
}
