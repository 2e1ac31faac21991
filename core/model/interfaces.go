// Package model provides additional interfaces for machine learning models.
package model

import "cmp"

// Classifier is the interface for models that rank labels for opaque values.
type Classifier[L cmp.Ordered, V any] interface {
	// Predict returns the top-ranked label for value.
	Predict(value V) (L, error)

	// Classes returns the unique labels seen during fitting, in ascending order.
	Classes() []L
}

// SampleCounter is the interface for incremental models that track how many
// training examples they have consumed.
type SampleCounter interface {
	// NSamplesSeen returns the number of training examples consumed so far.
	NSamplesSeen() int
}

// Resetter is the interface for models that can return to their untrained state.
type Resetter interface {
	// Reset discards all learned state.
	Reset()
}
