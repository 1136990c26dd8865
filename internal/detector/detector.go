// Package detector handles conversion direction detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrotype/internal/options"
)

// Direction of a conversion run.
type Direction int

// Conversion directions.
const (
	Tokenize Direction = iota
	Detokenize
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Detokenize {
		return "detokenize"
	}
	return "tokenize"
}

// Detector determines the conversion direction from options and file names.
type Detector struct {
	logger *log.Logger
}

// New creates a new direction detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect returns the conversion direction: an explicit option wins,
// otherwise the input file extension decides.
func (d *Detector) Detect(opts options.Program) Direction {
	if opts.Detokenize {
		return Detokenize
	}

	direction := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected direction",
		log.Stringer("direction", direction),
		log.String("file", opts.Input))
	return direction
}

// detectFromFile determines the direction based on the file extension.
func (d *Detector) detectFromFile(filename string) Direction {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".prg", ".bin":
		return Detokenize
	default:
		// listing text is the common case for unknown extensions
		return Tokenize
	}
}
