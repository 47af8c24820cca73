// Package strmetric implements pure, allocation-conscious string metrics over
// Unicode text: character-class cardinality, Levenshtein edit distance,
// Jaro and Jaro-Winkler similarity, and Shannon entropy.
//
// Every metric is a stateless function of its inputs. Scratch space is
// allocated per call, so concurrent calls are safe. Myers pattern tables, the
// byte entropy table, and DP rows and Jaro bitmaps up to 256 entries live on
// the stack. Longer DP rows and bitmaps, the dense entropy table and the
// sparse entropy map are heap-allocated.
//
// # Basic Usage
//
//	a := strmetric.FromString("kitten")
//	b := strmetric.FromString("sitting")
//
//	strmetric.Levenshtein(a, b)            // 3
//	strmetric.JaroWinkler(a, b)            // 0.746...
//	strmetric.ShannonEntropy(a)            // 2.251...
//	score, err := strmetric.Cardinality(strmetric.FromString("Password1!"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(score) // 26 + 26 + 10 + 33
//
// Cardinality weights are overridable individually:
//
//	score, err := strmetric.Cardinality(text,
//	    strmetric.WithUnicodeWeight(200),
//	    strmetric.WithDigitWeight(12),
//	)
//
// # Text
//
// Inputs are [Text] values: read-only views over code units stored either
// narrow (one Latin-1 code point per byte) or wide (UTF-16). [FromString]
// picks narrow storage when every rune fits Latin-1. Narrow and wide storage
// of the same code points yield bit-identical results for every metric. The
// narrow form unlocks the 256-bucket entropy table and avoids widening.
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Public API: text.go (Text), cardinality.go, levenshtein.go,
//     similarity.go, entropy.go
//   - Configuration: cardinality_options.go (CardinalityOption, With* functions,
//     CardinalityConfig)
//   - Algorithm reporting: algorithm.go (EditAlgorithm, EntropyTable)
//   - Wrapping: metrics.go (Metrics, Default), cache.go (WithCache)
//   - Algorithms: internal/editdist, internal/jaro, internal/entropy,
//     internal/charclass
//   - Code units: internal/units, internal/encoding
package strmetric
