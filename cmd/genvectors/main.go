// Command genvectors generates the committed FFT test-vector corpus: one
// JSON fixture per transform size plus the registration source file
// consumed by the macro-based test harness.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	fftvectors "github.com/cwbudde/algo-fft-vectors"
)

func main() {
	var (
		sizeList = flag.String("sizes", "1-256", "comma-separated sizes, ranges allowed (e.g. 1-256 or 2,3,5,120)")
		seed     = flag.Uint64("seed", fftvectors.DefaultSeed, "rng seed")
		outDir   = flag.String("out", "vectors", "output directory (must exist)")
		regFile  = flag.String("registration", fftvectors.DefaultRegistrationFile, "registration file name inside the output directory")
	)
	flag.Parse()

	sizes, err := parseSizes(*sizeList)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := fftvectors.Config{
		Seed:             *seed,
		Sizes:            sizes,
		OutDir:           *outDir,
		RegistrationFile: *regFile,
	}

	if err := fftvectors.Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d fixtures and %s to %s\n", len(sizes), *regFile, *outDir)
}

// parseSizes expands a comma-separated list of sizes and inclusive ranges.
// Duplicate detection is left to Config.Validate.
func parseSizes(list string) ([]int, error) {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if first, second, ok := strings.Cut(part, "-"); ok {
			lo, errLo := strconv.Atoi(strings.TrimSpace(first))
			hi, errHi := strconv.Atoi(strings.TrimSpace(second))

			if errLo != nil || errHi != nil || lo < 1 || hi < lo {
				return nil, fmt.Errorf("invalid size range %q", part)
			}

			for n := lo; n <= hi; n++ {
				out = append(out, n)
			}

			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid size %q", part)
		}

		out = append(out, n)
	}

	return out, nil
}
