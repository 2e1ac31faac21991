package bayes

// Option configures a NaiveBayes classifier at construction time.
type Option func(*config)

type config struct {
	uniformPrior bool
}

// WithUniformPrior drops the label prior from the per-feature likelihood.
//
// By default each feature multiplies the label's score by
//
//	(count(feature, label) + 1) / (count(label) + 1) * P(label)
//
// which weights labels by how often they occurred in training. With a
// uniform prior the P(label) factor is omitted, so only the conditional
// feature evidence ranks the labels. The default is the variant that
// reproduces the reference ranking on mixed-evidence inputs; the uniform
// variant can be preferable when training-class balance does not reflect the
// population being classified.
func WithUniformPrior() Option {
	return func(c *config) {
		c.uniformPrior = true
	}
}
