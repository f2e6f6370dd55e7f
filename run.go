package fftvectors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-fft-vectors/fixture"
	"github.com/cwbudde/algo-fft-vectors/internal/dft"
	"github.com/cwbudde/algo-fft-vectors/internal/emit"
	"github.com/cwbudde/algo-fft-vectors/internal/randn"
)

// Run executes one generation pass: for every configured size it draws an
// input sequence, computes its forward DFT with the reference oracle, and
// writes the fixture file; afterwards it writes the registration file.
//
// The first write failure aborts the run. Fixtures already written stay on
// disk; there is no cross-size transaction.
func Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	smp := randn.New(cfg.Seed)

	for _, n := range cfg.Sizes {
		x := smp.Complex(n)
		y := dft.Transform(x)

		path := filepath.Join(cfg.OutDir, fixture.FileName(n))
		if err := fixture.Write(path, fixture.FromComplex(x, y)); err != nil {
			return fmt.Errorf("fftvectors: size %d (%s): %w", n, path, err)
		}
	}

	lines := emit.Lines(cfg.template(), cfg.Sizes)

	path := filepath.Join(cfg.OutDir, cfg.registrationFile())
	if err := writeLines(path, lines); err != nil {
		return fmt.Errorf("fftvectors: registration file %s: %w", path, err)
	}

	return nil
}

func writeLines(path string, lines []string) error {
	data := strings.Join(lines, "\n") + "\n"

	return os.WriteFile(path, []byte(data), 0o644)
}
