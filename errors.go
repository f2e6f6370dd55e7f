package fftvectors

import "errors"

// Sentinel errors returned during configuration validation. All of them
// are reported before any file is written.
var (
	// ErrNoSizes is returned when the configured size list is empty.
	ErrNoSizes = errors.New("fftvectors: empty size list")

	// ErrInvalidSize is returned for a size smaller than 1.
	ErrInvalidSize = errors.New("fftvectors: size must be at least 1")

	// ErrDuplicateSize is returned when a size appears more than once.
	// Duplicates would silently overwrite an earlier fixture in the same run.
	ErrDuplicateSize = errors.New("fftvectors: duplicate size")

	// ErrNoOutputDir is returned when no output directory is configured.
	ErrNoOutputDir = errors.New("fftvectors: no output directory")
)
