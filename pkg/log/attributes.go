package log

// Attribute keys for structured classifier logging. Using shared constants
// keeps field names consistent across packages and consumers.
const (
	// ModelNameKey identifies the model type emitting the record.
	ModelNameKey = "model"

	// OperationKey identifies the operation, e.g. "fit" or "predict".
	OperationKey = "operation"

	// SamplesKey is the number of training examples in a batch.
	SamplesKey = "samples"

	// FeaturesKey is the number of distinct features known to the model.
	FeaturesKey = "features"

	// LabelsKey is the number of distinct labels known to the model.
	LabelsKey = "labels"

	// AccuracyKey is a mean-accuracy metric value.
	AccuracyKey = "accuracy"

	// DurationMsKey is an elapsed time in milliseconds.
	DurationMsKey = "duration_ms"
)
