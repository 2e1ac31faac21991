// Package model provides state management and interfaces for trainable models.
package model

import (
	"fmt"
	"sync"
)

// StateManager manages the fitted state of a model in a thread-safe manner.
// Models embed it by composition rather than inheritance.
type StateManager struct {
	Fitted bool // Public for gob encoding
	mu     sync.RWMutex

	// Optional metadata - Public for gob encoding
	NSamples  int // training examples consumed so far
	NFeatures int // distinct features observed so far
	NLabels   int // distinct labels observed so far
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{
		Fitted: false,
	}
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Fitted
}

// SetFitted marks the model as fitted.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = true
}

// Reset resets the fitted state and all counters.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = false
	s.NSamples = 0
	s.NFeatures = 0
	s.NLabels = 0
}

// AddSamples adds n to the number of training examples consumed.
func (s *StateManager) AddSamples(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.NSamples += n
}

// SetDimensions records the number of distinct features and labels observed.
func (s *StateManager) SetDimensions(nFeatures, nLabels int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.NFeatures = nFeatures
	s.NLabels = nLabels
}

// GetDimensions returns the number of distinct features and labels observed.
func (s *StateManager) GetDimensions() (nFeatures, nLabels int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.NFeatures, s.NLabels
}

// SamplesSeen returns the number of training examples consumed so far.
func (s *StateManager) SamplesSeen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.NSamples
}

// RequireFitted returns an error if the model has not been fitted.
func (s *StateManager) RequireFitted() error {
	if !s.IsFitted() {
		return fmt.Errorf("model has not been fitted yet. Call Fit() first")
	}
	return nil
}

// ModelState represents the complete state of a model, usable for
// debugging and inspection.
type ModelState struct {
	Fitted    bool `json:"fitted"`
	NSamples  int  `json:"n_samples,omitempty"`
	NFeatures int  `json:"n_features,omitempty"`
	NLabels   int  `json:"n_labels,omitempty"`
}

// GetState returns the current state as a ModelState struct.
func (s *StateManager) GetState() ModelState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ModelState{
		Fitted:    s.Fitted,
		NSamples:  s.NSamples,
		NFeatures: s.NFeatures,
		NLabels:   s.NLabels,
	}
}
