package series

// FactorialSource supplies n! as float64 to series loops.
type FactorialSource interface {
	Float(n int) (float64, error)
}

// Config defines the settings shared by series evaluators.
type Config struct {
	// Terms bounds the number of series iterations. Evaluators document how
	// they count terms; non-positive values give a degenerate (empty) sum.
	Terms int

	// Factorials supplies m! inside series loops. Nil means the evaluator
	// computes factorials directly.
	Factorials FactorialSource

	// NarrowTolerance is the largest |imag| still classified as real.
	NarrowTolerance float64
}

// Option mutates a Config.
type Option func(*Config)

// WithTerms sets the iteration bound. Unlike most options it accepts
// non-positive values, which select the empty sum.
func WithTerms(terms int) Option {
	return func(cfg *Config) {
		cfg.Terms = terms
	}
}

// WithFactorials sets the factorial source, e.g. a shared cache.
func WithFactorials(src FactorialSource) Option {
	return func(cfg *Config) {
		if src != nil {
			cfg.Factorials = src
		}
	}
}

// WithNarrowTolerance sets the imaginary-part threshold used when narrowing
// complex results to real ones.
func WithNarrowTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol >= 0 {
			cfg.NarrowTolerance = tol
		}
	}
}

// ApplyOptions applies zero or more options to the given defaults.
func ApplyOptions(defaults Config, opts ...Option) Config {
	cfg := defaults
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
