package strmetric

import (
	"fmt"
	"math"

	strerrors "github.com/tamirms/strmetric/errors"
)

// Default cardinality weights: the size of each character class.
const (
	DefaultLowerWeight   = 26
	DefaultUpperWeight   = 26
	DefaultDigitWeight   = 10
	DefaultASCIIWeight   = 33
	DefaultUnicodeWeight = 100
)

// CardinalityOption is a functional option for configuring Cardinality.
type CardinalityOption func(*cardinalityConfig)

// CardinalityWeights holds one weight per character class.
type CardinalityWeights struct {
	Lower   int
	Upper   int
	Digit   int
	ASCII   int
	Unicode int
}

// DefaultCardinalityWeights returns the weights used when no option
// overrides them.
func DefaultCardinalityWeights() CardinalityWeights {
	return CardinalityWeights{
		Lower:   DefaultLowerWeight,
		Upper:   DefaultUpperWeight,
		Digit:   DefaultDigitWeight,
		ASCII:   DefaultASCIIWeight,
		Unicode: DefaultUnicodeWeight,
	}
}

type cardinalityConfig struct {
	weights   CardinalityWeights
	stopAtNUL bool // a NUL unit ends the scan, as for C strings
}

func defaultCardinalityConfig() *cardinalityConfig {
	return &cardinalityConfig{
		weights:   DefaultCardinalityWeights(),
		stopAtNUL: true,
	}
}

// WithLowerWeight sets the weight of lowercase ASCII letters.
func WithLowerWeight(n int) CardinalityOption {
	return func(c *cardinalityConfig) {
		c.weights.Lower = n
	}
}

// WithUpperWeight sets the weight of uppercase ASCII letters.
func WithUpperWeight(n int) CardinalityOption {
	return func(c *cardinalityConfig) {
		c.weights.Upper = n
	}
}

// WithDigitWeight sets the weight of ASCII digits.
func WithDigitWeight(n int) CardinalityOption {
	return func(c *cardinalityConfig) {
		c.weights.Digit = n
	}
}

// WithASCIIWeight sets the weight of every other ASCII unit (punctuation,
// whitespace, control characters).
func WithASCIIWeight(n int) CardinalityOption {
	return func(c *cardinalityConfig) {
		c.weights.ASCII = n
	}
}

// WithUnicodeWeight sets the weight of non-ASCII units.
func WithUnicodeWeight(n int) CardinalityOption {
	return func(c *cardinalityConfig) {
		c.weights.Unicode = n
	}
}

// WithWeights replaces all five weights at once.
func WithWeights(w CardinalityWeights) CardinalityOption {
	return func(c *cardinalityConfig) {
		c.weights = w
	}
}

// WithStopAtNUL controls whether a NUL unit terminates the scan.
//
// The default (true) treats the first NUL as the end of the input, matching
// the behavior of implementations that operate on NUL-terminated strings.
// Pass false to classify NUL as an ordinary ASCII unit and scan the whole
// text, which is the right choice for arbitrary binary content.
func WithStopAtNUL(stop bool) CardinalityOption {
	return func(c *cardinalityConfig) {
		c.stopAtNUL = stop
	}
}

// CardinalityConfig is the declarative form of the cardinality options, for
// loading from configuration files. A nil field keeps the default weight.
type CardinalityConfig struct {
	Lower   *int `yaml:"lower"`
	Upper   *int `yaml:"upper"`
	Digit   *int `yaml:"digit"`
	ASCII   *int `yaml:"ascii"`
	Unicode *int `yaml:"unicode"`

	// KeepNUL disables NUL termination (see WithStopAtNUL).
	KeepNUL bool `yaml:"keep_nul"`
}

// Options converts the configuration to functional options. Fields that are
// unset produce no option, so each weight defaults independently.
func (c CardinalityConfig) Options() []CardinalityOption {
	var opts []CardinalityOption
	if c.Lower != nil {
		opts = append(opts, WithLowerWeight(*c.Lower))
	}
	if c.Upper != nil {
		opts = append(opts, WithUpperWeight(*c.Upper))
	}
	if c.Digit != nil {
		opts = append(opts, WithDigitWeight(*c.Digit))
	}
	if c.ASCII != nil {
		opts = append(opts, WithASCIIWeight(*c.ASCII))
	}
	if c.Unicode != nil {
		opts = append(opts, WithUnicodeWeight(*c.Unicode))
	}
	if c.KeepNUL {
		opts = append(opts, WithStopAtNUL(false))
	}
	return opts
}

// Validate checks the weights before any text is scanned. Each weight must be
// non-negative and the total of all five must fit a uint32, so no score can
// wrap regardless of which classes the text contains.
func (w CardinalityWeights) Validate() error {
	fields := [...]struct {
		name  string
		value int
	}{
		{"lower", w.Lower},
		{"upper", w.Upper},
		{"digit", w.Digit},
		{"ascii", w.ASCII},
		{"unicode", w.Unicode},
	}
	var total uint64
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s=%d", strerrors.ErrNegativeWeight, f.name, f.value)
		}
		if uint64(f.value) > math.MaxUint32 {
			return fmt.Errorf("%w: %s=%d", strerrors.ErrWeightOverflow, f.name, f.value)
		}
		total += uint64(f.value)
	}
	if total > math.MaxUint32 {
		return fmt.Errorf("%w: total=%d", strerrors.ErrWeightOverflow, total)
	}
	return nil
}

func resolveCardinalityConfig(opts []CardinalityOption) (*cardinalityConfig, error) {
	cfg := defaultCardinalityConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.weights.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
