package bayes

import (
	"cmp"
	"slices"
	"sync"

	"github.com/YuminosukeSato/bayeskit/core/model"
	"github.com/YuminosukeSato/bayeskit/core/parallel"
	"github.com/YuminosukeSato/bayeskit/metrics"
	"github.com/YuminosukeSato/bayeskit/pkg/errors"
)

// Example pairs a class label with an opaque input value for training.
type Example[L cmp.Ordered, V any] struct {
	Label L
	Value V
}

// LabelScore is one entry of a prediction ranking.
type LabelScore[L cmp.Ordered] struct {
	Label L
	Score float64
}

// Batches of at least this many values are predicted in parallel.
const batchParallelThreshold = 256

// NaiveBayes is a generic Naive Bayes classifier over labels of type L,
// features of type F, and input values of type V. It learns label and
// feature co-occurrence frequencies from labeled examples and ranks labels
// for new values by an add-one-smoothed product of per-feature likelihoods.
//
// Training is incremental: every Fit call adds evidence to the existing
// counts. A single read-write lock makes Fit exclusive against all other
// calls while Predict and the read accessors may run concurrently.
type NaiveBayes[L cmp.Ordered, F comparable, V any] struct {
	state     *model.StateManager
	extractor Extractor[V, F]
	freq      *frequencyStore[L, F]

	uniformPrior bool

	mu sync.RWMutex
}

// New creates a NaiveBayes classifier using the given feature extractor.
// The extractor is retained for the classifier's lifetime and invoked on
// every training and prediction value.
func New[L cmp.Ordered, F comparable, V any](extractor Extractor[V, F], opts ...Option) (*NaiveBayes[L, F, V], error) {
	if extractor == nil {
		return nil, errors.NewValidationError("extractor", "must not be nil", nil)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &NaiveBayes[L, F, V]{
		state:        model.NewStateManager(),
		extractor:    extractor,
		freq:         newFrequencyStore[L, F](),
		uniformPrior: cfg.uniformPrior,
	}, nil
}

// Fit trains the classifier on a batch of labeled examples, in input order.
// Counts only ever increase, and the final counts do not depend on example
// order, so repeated or re-ordered batches are handled uniformly.
//
// Each example is recorded atomically: its features are extracted first and
// the frequency tables are touched only if extraction succeeds. If the
// extractor fails, examples earlier in the batch remain recorded and an
// ExtractionError identifying the failing index is returned.
func (nb *NaiveBayes[L, F, V]) Fit(examples []Example[L, V]) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	var recorded int
	defer func() {
		nb.state.AddSamples(recorded)
		nb.state.SetDimensions(nb.freq.distinctFeatures(), nb.freq.distinctLabels())
		if nb.freq.totalExamples() > 0 {
			nb.state.SetFitted()
		}
	}()

	for i, ex := range examples {
		features, err := nb.extract(ex.Value)
		if err != nil {
			return errors.NewExtractionError("Fit", i, err)
		}

		nb.freq.bumpLabel(ex.Label)
		for _, f := range features {
			nb.freq.bumpFeatureLabel(f, ex.Label)
		}
		recorded++
	}

	return nil
}

// PartialFit trains on one additional mini-batch. Fit is already
// incremental, so this is the same operation under the name incremental
// pipelines expect.
func (nb *NaiveBayes[L, F, V]) PartialFit(examples []Example[L, V]) error {
	return nb.Fit(examples)
}

// Predict returns the top-ranked label for value.
//
// Every known label starts with score 1.0 and, for each extracted feature,
// is multiplied by the add-one-smoothed likelihood (and, unless
// WithUniformPrior was set, the label's prior). The label with the highest
// score wins; exact floating-point ties go to the label that is largest in
// the natural order.
//
// Predicting on an untrained classifier returns a NotFittedError.
func (nb *NaiveBayes[L, F, V]) Predict(value V) (L, error) {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	var zero L
	ranking, err := nb.rank("Predict", value)
	if err != nil {
		return zero, err
	}
	return ranking[0].Label, nil
}

// PredictScores returns the full ranking for value, best label first. The
// scores are unnormalized posterior approximations, comparable only within
// a single ranking.
func (nb *NaiveBayes[L, F, V]) PredictScores(value V) ([]LabelScore[L], error) {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	return nb.rank("PredictScores", value)
}

// PredictProba returns the posterior approximation for every known label,
// normalized to sum to 1.
func (nb *NaiveBayes[L, F, V]) PredictProba(value V) (map[L]float64, error) {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	ranking, err := nb.rank("PredictProba", value)
	if err != nil {
		return nil, err
	}

	var sum float64
	for _, ls := range ranking {
		sum += ls.Score
	}
	if sum == 0 {
		// All scores underflowed to zero; normalization is undefined.
		return nil, errors.NewNumericalInstabilityError("PredictProba", []float64{sum})
	}

	probs := make(map[L]float64, len(ranking))
	values := make([]float64, 0, len(ranking))
	for _, ls := range ranking {
		p := ls.Score / sum
		probs[ls.Label] = p
		values = append(values, p)
	}
	if err := errors.CheckNumericalStability("PredictProba", values); err != nil {
		return nil, err
	}
	return probs, nil
}

// PredictBatch predicts a label for every value. Large batches are
// partitioned across CPU cores; prediction is read-only, so the concurrent
// workers share the frequency tables safely.
func (nb *NaiveBayes[L, F, V]) PredictBatch(values []V) ([]L, error) {
	predictions := make([]L, len(values))

	var errMu sync.Mutex
	var firstErr error

	parallel.ParallelizeWithThreshold(len(values), batchParallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			label, err := nb.Predict(values[i])
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				return
			}
			predictions[i] = label
		}
	})

	if firstErr != nil {
		return nil, firstErr
	}
	return predictions, nil
}

// Score returns the mean accuracy of Predict over a labeled evaluation set.
func (nb *NaiveBayes[L, F, V]) Score(examples []Example[L, V]) (float64, error) {
	if len(examples) == 0 {
		return 0, errors.NewValueError("NaiveBayes.Score", "empty evaluation set")
	}

	values := make([]V, len(examples))
	yTrue := make([]L, len(examples))
	for i, ex := range examples {
		values[i] = ex.Value
		yTrue[i] = ex.Label
	}

	yPred, err := nb.PredictBatch(values)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(yTrue, yPred)
}

// Classes returns the labels seen during training, in ascending order.
func (nb *NaiveBayes[L, F, V]) Classes() []L {
	nb.mu.RLock()
	defer nb.mu.RUnlock()
	return nb.freq.knownLabels()
}

// LabelProbability returns the fraction of training examples carrying label,
// or 0 before any training.
func (nb *NaiveBayes[L, F, V]) LabelProbability(label L) float64 {
	nb.mu.RLock()
	defer nb.mu.RUnlock()
	return nb.freq.labelProbability(label)
}

// LabelCount returns the number of training examples seen for label.
func (nb *NaiveBayes[L, F, V]) LabelCount(label L) int {
	nb.mu.RLock()
	defer nb.mu.RUnlock()
	return nb.freq.labelCount(label)
}

// FeatureLabelCount returns how many times feature co-occurred with label
// during training, or 0 if the pairing was never observed.
func (nb *NaiveBayes[L, F, V]) FeatureLabelCount(feature F, label L) int {
	nb.mu.RLock()
	defer nb.mu.RUnlock()
	return nb.freq.featureLabelCount(feature, label)
}

// NSamplesSeen returns the number of training examples consumed so far.
func (nb *NaiveBayes[L, F, V]) NSamplesSeen() int {
	return nb.state.SamplesSeen()
}

// IsFitted reports whether the classifier has seen any training data.
func (nb *NaiveBayes[L, F, V]) IsFitted() bool {
	return nb.state.IsFitted()
}

// Reset discards all learned counts and returns the classifier to its
// untrained state. The extractor and options are retained.
func (nb *NaiveBayes[L, F, V]) Reset() {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.freq = newFrequencyStore[L, F]()
	nb.state.Reset()
}

// rank computes the full label ranking for value, best first. Callers must
// hold at least the read lock.
func (nb *NaiveBayes[L, F, V]) rank(op string, value V) ([]LabelScore[L], error) {
	labels := nb.freq.knownLabels()
	if len(labels) == 0 {
		return nil, errors.NewNotFittedError("NaiveBayes", op)
	}

	features, err := nb.extract(value)
	if err != nil {
		return nil, errors.NewExtractionError(op, -1, err)
	}

	ranking := make([]LabelScore[L], len(labels))
	for i, label := range labels {
		ranking[i] = LabelScore[L]{Label: label, Score: 1.0}
	}

	for _, feature := range features {
		for i := range ranking {
			label := ranking[i].Label
			// Add-one smoothing on both sides of the ratio: a label with no
			// occurrences still has a defined denominator, and a feature
			// never seen with a label contributes 1/(count+1) instead of 0.
			labelTotal := float64(nb.freq.labelCount(label) + 1)
			jointCount := float64(nb.freq.featureLabelCount(feature, label) + 1)

			likelihood := jointCount / labelTotal
			if !nb.uniformPrior {
				likelihood *= nb.freq.labelProbability(label)
			}
			ranking[i].Score *= likelihood
		}
	}

	// Descending by score; exact ties go to the larger label so the result
	// is deterministic regardless of training order.
	slices.SortStableFunc(ranking, func(a, b LabelScore[L]) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(b.Label, a.Label)
	})
	return ranking, nil
}

// extract runs the caller-supplied extractor, converting panics into errors
// so a misbehaving extractor cannot corrupt the engine.
func (nb *NaiveBayes[L, F, V]) extract(value V) (features []F, err error) {
	defer errors.Recover(&err, "Extractor.Extract")
	return nb.extractor.Extract(value)
}
