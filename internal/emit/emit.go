// Package emit renders the test-registration source file as a pure
// function of the size list, with no file I/O of its own.
package emit

import (
	"fmt"

	"github.com/cwbudde/algo-fft-vectors/fixture"
)

// DefaultTemplate matches the generate_vector_test! macro of the
// consuming harness. The three substitution points are the
// direction/precision tag, the generated test name, and the fixture file
// name (quoted).
const DefaultTemplate = "generate_vector_test!{@%s %s, %q}"

// tags lists the direction/precision combinations in the fixed order they
// appear in the registration file for each size.
var tags = [4]string{"forward_f32", "inverse_f32", "forward_f64", "inverse_f64"}

// Lines renders the registration declarations for sizes: four lines per
// size in tag order, sizes in list order. The same size list always
// yields the same lines.
func Lines(tmpl string, sizes []int) []string {
	out := make([]string, 0, 4*len(sizes))

	for _, n := range sizes {
		file := fixture.FileName(n)
		for _, tag := range tags {
			name := fmt.Sprintf("%s_%d", tag, n)
			out = append(out, fmt.Sprintf(tmpl, tag, name, file))
		}
	}

	return out
}
