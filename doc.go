// Package bayeskit provides a generic, incrementally-trainable Naive Bayes
// classifier for Go, designed to slot into backend services that need cheap,
// explainable classification over caller-defined value types.
//
// BayesKit is type-parameterized over the label, feature, and input value
// types: any totally-ordered comparable type can serve as a label, any
// comparable type as a feature, and anything at all as the input value. The
// caller supplies a feature extractor; the library never inspects input
// values directly.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//	    "strings"
//
//	    "github.com/YuminosukeSato/bayeskit/bayes"
//	)
//
//	func main() {
//	    words := bayes.ExtractorFunc[string, string](func(doc string) ([]string, error) {
//	        return strings.Fields(strings.ToLower(doc)), nil
//	    })
//
//	    clf, err := bayes.New[string, string, string](words)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    err = clf.Fit([]bayes.Example[string, string]{
//	        {Label: "spam", Value: "cheap pills buy now"},
//	        {Label: "ham", Value: "lunch at noon tomorrow"},
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    label, err := clf.Predict("buy cheap pills")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(label) // spam
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - bayes: the Naive Bayes classifier engine
//   - histogram: generic ordered multiset container used for frequency counts
//   - metrics: evaluation metrics (accuracy, confusion matrix)
//   - core/model: fitted-state management and model interfaces
//   - core/parallel: parallel processing utilities for batch prediction
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: structured logging helpers
//
// # Training and Classification
//
// Training is purely additive: Fit may be called any number of times and each
// call simply adds evidence to the frequency tables. Classification is
// read-only and safe to call concurrently once training has quiesced; a
// single read-write lock serializes Fit against Predict on the same instance.
//
// # License
//
// BayesKit is released under the MIT License.
package bayeskit
