package strmetric

// Metrics is the set of string metrics as an interface, for optional
// wrapping (e.g., caching) and for substitution in consumers' tests.
type Metrics interface {
	Cardinality(text Text, opts ...CardinalityOption) (uint32, error)
	Levenshtein(a, b Text) int
	Jaro(a, b Text) float64
	JaroWinkler(a, b Text) float64
	ShannonEntropy(text Text) float64
}

type defaultMetrics struct{}

// Default returns the Metrics implementation backed by the package-level
// functions. It holds no state.
func Default() Metrics {
	return defaultMetrics{}
}

func (defaultMetrics) Cardinality(text Text, opts ...CardinalityOption) (uint32, error) {
	return Cardinality(text, opts...)
}

func (defaultMetrics) Levenshtein(a, b Text) int {
	return Levenshtein(a, b)
}

func (defaultMetrics) Jaro(a, b Text) float64 {
	return Jaro(a, b)
}

func (defaultMetrics) JaroWinkler(a, b Text) float64 {
	return JaroWinkler(a, b)
}

func (defaultMetrics) ShannonEntropy(text Text) float64 {
	return ShannonEntropy(text)
}
