package searcher

import (
	"connect383/experiments/metrics"
	"connect383/game"
)

type config struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
}

type Option func(c *config)

// WithEvaluationFn replaces the static evaluator used at the depth limit.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		evaluate: game.EvaluateStreaks,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}
