package exploration

import "go.uber.org/zap"

// Option configures Explore.
type Option func(*config)

// Stats counts what happened during one exploration.
type Stats struct {
	Questions       int `json:"questions" yaml:"questions"`
	Confirmations   int `json:"confirmations" yaml:"confirmations"`
	Counterexamples int `json:"counterexamples" yaml:"counterexamples"`
}

type config struct {
	logger *zap.Logger
	max    int
	stats  *Stats
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop(), stats: &Stats{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger logs questions and answers to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxCounterexamples bounds the counterexamples accepted for a single
// premise; n ≤ 0 means unbounded.
func WithMaxCounterexamples(n int) Option {
	return func(c *config) {
		c.max = n
	}
}

// WithStats makes Explore record its counters into s. A nil s is ignored.
func WithStats(s *Stats) Option {
	return func(c *config) {
		if s != nil {
			c.stats = s
		}
	}
}
