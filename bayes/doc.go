// Package bayes implements a generic, incrementally-trainable Naive Bayes
// classifier.
//
// The classifier estimates P(Label | Feature Set) under the assumption that
// features are conditionally independent given the label:
//
//	P(Label | F1 ∩ F2) = P(Label | F1) * P(Label | F2)
//
// By Bayes' rule, each per-feature term is
//
//	P(Label | Feature) = P(Feature | Label) * P(Label) / P(Feature)
//
// P(Feature) is identical for every label, so it is omitted: the resulting
// scores are not true probabilities, but ranking labels by them gives the
// same winner. Both the numerator and denominator of each likelihood carry
// add-one (Laplace) smoothing so that an unseen feature/label pairing never
// collapses the whole product to zero.
//
// Labels can be any totally-ordered comparable type, features any comparable
// type, and input values anything at all; features are produced by a
// caller-supplied Extractor. Training is additive and may be repeated;
// prediction is read-only and safe to call concurrently between training
// calls.
package bayes
