package schemahint

// maxEncodeDepth bounds recursion through array/union/object nesting.
// Practical tool schemas are a handful of levels deep; anything beyond the
// guard encodes as "any".
const maxEncodeDepth = 50

type config struct {
	estimator Estimator
	maxDepth  int
}

func newConfig(opts []Option) config {
	cfg := config{
		estimator: EstimateTokens,
		maxDepth:  maxEncodeDepth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures an encoding or compression call (e.g. WithEstimator).
type Option func(*config)

// WithEstimator sets the token estimator used for metrics. A nil estimator
// is ignored.
func WithEstimator(e Estimator) Option {
	return func(c *config) {
		if e != nil {
			c.estimator = e
		}
	}
}

// WithMaxDepth overrides the recursion depth guard for callers compressing
// unusually deep generated schemas. Non-positive values are ignored.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}
