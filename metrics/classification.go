// Package metrics provides evaluation metrics for classification models.
package metrics

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/bayeskit/pkg/errors"
)

// Accuracy computes the fraction of predictions matching the true labels.
func Accuracy[L comparable](yTrue, yPred []L) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("accuracy", "empty evaluation set", 0))
		return 0, errors.NewValueError("Accuracy", "empty evaluation set")
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("Accuracy", n, len(yPred))
	}

	var correct int
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// ErrorRate computes 1 - Accuracy.
func ErrorRate[L comparable](yTrue, yPred []L) (float64, error) {
	acc, err := Accuracy(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - acc, nil
}

// ConfusionMatrix computes the confusion matrix over yTrue and yPred.
// The returned classes slice holds the union of labels in ascending order;
// element (i, j) of the matrix counts examples whose true label is
// classes[i] and predicted label is classes[j].
func ConfusionMatrix[L cmp.Ordered](yTrue, yPred []L) (*mat.Dense, []L, error) {
	n := len(yTrue)
	if n == 0 {
		return nil, nil, errors.NewValueError("ConfusionMatrix", "empty evaluation set")
	}
	if len(yPred) != n {
		return nil, nil, errors.NewDimensionError("ConfusionMatrix", n, len(yPred))
	}

	seen := make(map[L]struct{}, n)
	for i := range yTrue {
		seen[yTrue[i]] = struct{}{}
		seen[yPred[i]] = struct{}{}
	}
	classes := make([]L, 0, len(seen))
	for label := range seen {
		classes = append(classes, label)
	}
	slices.Sort(classes)

	index := make(map[L]int, len(classes))
	for i, label := range classes {
		index[label] = i
	}

	k := len(classes)
	cm := mat.NewDense(k, k, nil)
	for i := range yTrue {
		r, c := index[yTrue[i]], index[yPred[i]]
		cm.Set(r, c, cm.At(r, c)+1)
	}
	return cm, classes, nil
}
