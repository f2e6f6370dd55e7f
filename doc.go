// Package fftvectors generates deterministic FFT test vectors.
//
// For every configured transform size it draws a pseudo-random complex
// input sequence from a seeded standard-normal source, computes its exact
// forward DFT with a direct-summation reference oracle, and writes the
// (input, output) pair to a per-size JSON fixture file. It also emits a
// registration source file with one test-case declaration per size,
// direction (forward/inverse) and precision (f32/f64), consumed by a
// macro-based test harness.
//
// Fixtures are meant to be committed as golden files: re-running with the
// same seed and size list reproduces them byte for byte.
package fftvectors
