package fftvectors

import (
	"fmt"

	"github.com/cwbudde/algo-fft-vectors/internal/emit"
)

const (
	// DefaultSeed is the historical seed of the vector corpus. Changing it
	// invalidates every committed fixture, so it stays fixed.
	DefaultSeed = 1234

	// DefaultRegistrationFile is the registration file name inside the
	// output directory.
	DefaultRegistrationFile = "generate_tests.rs"

	// DefaultTemplate is the declaration line layout expected by the
	// consuming test harness.
	DefaultTemplate = emit.DefaultTemplate
)

// Config describes one generation run.
type Config struct {
	// Seed for the sequence generator. The generator is seeded exactly
	// once per run.
	Seed uint64

	// Sizes lists the transform sizes to generate, in output order.
	// Every size must be >= 1 and unique within the list.
	Sizes []int

	// OutDir is the directory fixtures and the registration file are
	// written to. It must already exist.
	OutDir string

	// RegistrationFile overrides DefaultRegistrationFile when non-empty.
	RegistrationFile string

	// Template overrides DefaultTemplate when non-empty. It must contain
	// three substitution points: tag, test name, quoted file name.
	Template string
}

// DefaultConfig returns a configuration matching the original corpus:
// seed 1234 and the dense size range 1..256.
func DefaultConfig(outDir string) Config {
	sizes := make([]int, 256)
	for i := range sizes {
		sizes[i] = i + 1
	}

	return Config{
		Seed:   DefaultSeed,
		Sizes:  sizes,
		OutDir: outDir,
	}
}

// Validate checks the configuration without touching the filesystem.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return ErrNoSizes
	}

	seen := make(map[int]bool, len(c.Sizes))

	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidSize, n)
		}

		if seen[n] {
			return fmt.Errorf("%w: %d", ErrDuplicateSize, n)
		}

		seen[n] = true
	}

	if c.OutDir == "" {
		return ErrNoOutputDir
	}

	return nil
}

func (c Config) registrationFile() string {
	if c.RegistrationFile != "" {
		return c.RegistrationFile
	}

	return DefaultRegistrationFile
}

func (c Config) template() string {
	if c.Template != "" {
		return c.Template
	}

	return DefaultTemplate
}
