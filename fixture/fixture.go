// Package fixture defines the on-disk test-vector format and helpers for
// consumers that load generated vectors back into Go code.
//
// A fixture file is a JSON object with exactly two keys:
//
//	{"x":[[re,im],...],"y":[[re,im],...]}
//
// where x is the generated input sequence and y its unnormalized forward
// DFT, both in index order with one [real, imaginary] pair per sample.
package fixture

import (
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"strconv"

	"github.com/sugawarayuuta/sonnet"
)

// Data is one persisted test vector.
type Data struct {
	X [][2]float64 `json:"x"`
	Y [][2]float64 `json:"y"`
}

// FromComplex packs an input sequence and its transform into fixture form.
// Both slices must have the same length.
func FromComplex(x, y []complex128) Data {
	d := Data{
		X: make([][2]float64, len(x)),
		Y: make([][2]float64, len(y)),
	}

	for i, v := range x {
		d.X[i] = [2]float64{real(v), imag(v)}
	}

	for i, v := range y {
		d.Y[i] = [2]float64{real(v), imag(v)}
	}

	return d
}

// Input returns the x array as complex samples.
func (d Data) Input() []complex128 {
	return toComplex(d.X)
}

// Output returns the y array as complex samples.
func (d Data) Output() []complex128 {
	return toComplex(d.Y)
}

// Len returns the transform size of the vector.
func (d Data) Len() int {
	return len(d.X)
}

func toComplex(pairs [][2]float64) []complex128 {
	out := make([]complex128, len(pairs))
	for i, p := range pairs {
		out[i] = complex(p[0], p[1])
	}

	return out
}

// FileName returns the fixture file name for a transform size.
func FileName(n int) string {
	return strconv.Itoa(n) + ".json"
}

// Encode serializes the vector to its canonical JSON form.
func Encode(d Data) ([]byte, error) {
	buf, err := sonnet.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fixture: %w", err)
	}

	return buf, nil
}

// Write serializes the vector and writes it to path, replacing any
// existing file.
func Write(path string, d Data) error {
	buf, err := Encode(d)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("failed to write fixture: %w", err)
	}

	return nil
}

// Load reads and decodes a fixture file.
func Load(path string) (Data, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read fixture: %w", err)
	}

	var d Data
	if err := sonnet.Unmarshal(buf, &d); err != nil {
		return Data{}, fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}

	if len(d.X) != len(d.Y) {
		return Data{}, fmt.Errorf("fixture %s: x has %d entries, y has %d", path, len(d.X), len(d.Y))
	}

	return d, nil
}

// Tolerance returns the relative comparison tolerance the consuming
// harness applies to length-n vectors: eps·log2(n)·15, where eps is the
// machine epsilon of the precision under test. At n=1 this is zero, so
// the one-point transform must match exactly.
func Tolerance(n int, eps float64) float64 {
	return eps * math.Log2(float64(n)) * 15
}

// Near compares two sequences element-wise using relative distance
// |a-e|/|e| and reports the first pair exceeding tol. Elements with zero
// expected magnitude are compared absolutely.
func Near(actual, expected []complex128, tol float64) error {
	if len(actual) != len(expected) {
		return fmt.Errorf("length mismatch: %d vs %d", len(actual), len(expected))
	}

	for i := range actual {
		diff := cmplx.Abs(actual[i] - expected[i])
		if scale := cmplx.Abs(expected[i]); scale > 0 {
			diff /= scale
		}

		if diff > tol {
			return fmt.Errorf("index %d: %v != %v (relative error %g, tolerance %g)",
				i, actual[i], expected[i], diff, tol)
		}
	}

	return nil
}
