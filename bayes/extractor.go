package bayes

// Extractor turns an opaque input value into the features the classifier
// counts. Implementations must be deterministic: the same value always
// yields the same feature sequence. The classifier invokes the extractor on
// every training and prediction value and propagates its errors unchanged.
type Extractor[V any, F comparable] interface {
	Extract(value V) ([]F, error)
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc[V any, F comparable] func(value V) ([]F, error)

// Extract calls f(value).
func (f ExtractorFunc[V, F]) Extract(value V) ([]F, error) {
	return f(value)
}
